package filters

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeQueryStripsSentinels(t *testing.T) {
	set := Set{Seller: "SABRINA", Origin: All, Tag: "", StartDate: "2024-03-01"}
	q := set.EncodeQuery()

	assert.Equal(t, "SABRINA", q.Get("seller"))
	assert.False(t, q.Has("origin"))
	assert.False(t, q.Has("tag"))
	assert.Equal(t, "2024-03-01", q.Get("start_date"))
	assert.False(t, q.Has("end_date"))
}

func TestDecodeQueryOverridesBase(t *testing.T) {
	base := Set{Seller: "SABRINA", Origin: "instagram", Tag: All}
	q := url.Values{}
	q.Set("seller", "JOAO")
	q.Set("origin", "ALL")

	got := DecodeQuery(q, base)
	assert.Equal(t, "JOAO", got.Seller)
	assert.Equal(t, All, got.Origin)
	assert.Equal(t, All, got.Tag)
}

func TestDecodeQueryRejectsMalformedDates(t *testing.T) {
	q := url.Values{}
	q.Set("start_date", "03/01/2024")

	got := DecodeQuery(q, DefaultSet())
	assert.Empty(t, got.StartDate)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	set := Set{Seller: "SABRINA", Origin: "facebook", Tag: "vip", StartDate: "2024-01-01", EndDate: "2024-01-31"}
	got := DecodeQuery(set.EncodeQuery(), DefaultSet())
	assert.Equal(t, set, got)
}

func TestDefaultSetIsUnrestricted(t *testing.T) {
	set := DefaultSet()
	assert.True(t, set.IsDefault())
	assert.False(t, set.SellerRestricted())
	assert.False(t, set.OriginRestricted())
	assert.False(t, set.TagRestricted())
	assert.Empty(t, set.EncodeQuery())
}

func TestSplitTags(t *testing.T) {
	got := SplitTags([]string{"vip, quente", "quente", " frio ", ""})
	assert.Equal(t, []string{"frio", "quente", "vip"}, got)
}
