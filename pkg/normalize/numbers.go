package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseBRNumber parses a numeric value that may arrive in Brazilian
// locale formatting ("1.234,56"), plain machine formatting ("1234.56"),
// or with currency junk around it. Malformed input yields zero, never
// an error: the upstream sheets are known to be inconsistently
// populated and a missing value must not poison a whole report.
func ParseBRNumber(raw string) decimal.Decimal {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return decimal.Zero
	}

	hasComma := strings.Contains(cleaned, ",")
	if hasComma {
		// "." is a thousands separator in pt-BR; "," is the decimal mark.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	var b strings.Builder
	for _, r := range cleaned {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NumberFromAny coerces the loosely typed values that tolerant JSON
// decoding produces (float64, string, nil) into a decimal, falling back
// to zero for anything unparseable.
func NumberFromAny(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		return ParseBRNumber(v)
	default:
		return decimal.Zero
	}
}

// InstallmentNumber extracts the leading number of an installment
// descriptor such as "3/12", returning 0 for blank or malformed input.
func InstallmentNumber(raw string) int {
	head, _, _ := strings.Cut(strings.TrimSpace(raw), "/")
	return atoiOrZero(head)
}
