package enums

import "fmt"

// SummaryType selects which precomputed snapshot variant a query reads.
type SummaryType string

const (
	SummaryTypeGeneral          SummaryType = "GENERAL"
	SummaryTypeBySeller         SummaryType = "BY_SELLER"
	SummaryTypeBySellerByOrigin SummaryType = "BY_SELLER_BY_ORIGIN"
)

// OwnerScopeGeneral is the sentinel owner value on rows aggregated
// across all sellers.
const OwnerScopeGeneral = "GENERAL"

var validSummaryTypes = []SummaryType{
	SummaryTypeGeneral,
	SummaryTypeBySeller,
	SummaryTypeBySellerByOrigin,
}

// String implements fmt.Stringer.
func (s SummaryType) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SummaryType.
func (s SummaryType) IsValid() bool {
	for _, candidate := range validSummaryTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSummaryType converts raw input into a SummaryType.
func ParseSummaryType(value string) (SummaryType, error) {
	for _, candidate := range validSummaryTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid summary type %q", value)
}
