package filters

import (
	"net/url"
	"strings"
	"time"
)

// All is the sentinel meaning "no restriction" for a dimension.
const All = "all"

const dateLayout = "2006-01-02"

// Set is the dashboard's shareable filter state. Dimension fields hold
// the All sentinel when unrestricted; date bounds are empty when unset.
type Set struct {
	Seller    string `json:"seller"`
	Origin    string `json:"origin"`
	Tag       string `json:"tag"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// DefaultSet returns the unrestricted filter state.
func DefaultSet() Set {
	return Set{Seller: All, Origin: All, Tag: All}
}

// IsDefault reports whether the set equals the unrestricted state.
func (s Set) IsDefault() bool {
	return s == DefaultSet()
}

// SellerRestricted reports whether the seller dimension narrows results.
func (s Set) SellerRestricted() bool {
	return s.Seller != "" && s.Seller != All
}

// OriginRestricted reports whether the origin dimension narrows results.
func (s Set) OriginRestricted() bool {
	return s.Origin != "" && s.Origin != All
}

// TagRestricted reports whether the tag dimension narrows results.
func (s Set) TagRestricted() bool {
	return s.Tag != "" && s.Tag != All
}

// DateRange parses the bounds. Zero times mean the bound is unset.
func (s Set) DateRange() (start, end time.Time) {
	if s.StartDate != "" {
		if t, err := time.Parse(dateLayout, s.StartDate); err == nil {
			start = t
		}
	}
	if s.EndDate != "" {
		if t, err := time.Parse(dateLayout, s.EndDate); err == nil {
			end = t
		}
	}
	return start, end
}

// EncodeQuery serializes the set to URL query values. Sentinel and
// empty values are stripped so shared links carry only real filters.
func (s Set) EncodeQuery() url.Values {
	q := url.Values{}
	setIfRestricted(q, "seller", s.Seller)
	setIfRestricted(q, "origin", s.Origin)
	setIfRestricted(q, "tag", s.Tag)
	if s.StartDate != "" {
		q.Set("start_date", s.StartDate)
	}
	if s.EndDate != "" {
		q.Set("end_date", s.EndDate)
	}
	return q
}

// DecodeQuery reads filter state from URL query values, falling back to
// the provided base for absent keys.
func DecodeQuery(q url.Values, base Set) Set {
	out := base
	if v := cleanValue(q.Get("seller")); v != "" {
		out.Seller = v
	}
	if v := cleanValue(q.Get("origin")); v != "" {
		out.Origin = v
	}
	if v := cleanValue(q.Get("tag")); v != "" {
		out.Tag = v
	}
	if v := cleanDate(q.Get("start_date")); v != "" {
		out.StartDate = v
	}
	if v := cleanDate(q.Get("end_date")); v != "" {
		out.EndDate = v
	}
	return out
}

// HasQueryParams reports whether any filter key is present in the query.
func HasQueryParams(q url.Values) bool {
	for _, key := range []string{"seller", "origin", "tag", "start_date", "end_date"} {
		if q.Has(key) {
			return true
		}
	}
	return false
}

func setIfRestricted(q url.Values, key, value string) {
	if value != "" && value != All {
		q.Set(key, value)
	}
}

func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, All) {
		return All
	}
	return v
}

func cleanDate(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		return ""
	}
	return v
}
