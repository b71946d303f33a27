package enums

import "strings"

// PaymentPlatform classifies the free-text payment platform column on
// sale rows. Upstream spells it inconsistently (casing, accents on
// "cartão"), so classification is substring-based rather than equality.
type PaymentPlatform string

const (
	PaymentPlatformBoleto  PaymentPlatform = "boleto"
	PaymentPlatformCard    PaymentPlatform = "card"
	PaymentPlatformUnknown PaymentPlatform = "unknown"
)

// ClassifyPaymentPlatform maps a raw platform string to its payment family.
func ClassifyPaymentPlatform(raw string) PaymentPlatform {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(upper, "BOLETO"):
		return PaymentPlatformBoleto
	case strings.Contains(upper, "CARTÃO"), strings.Contains(upper, "CARTAO"), strings.Contains(upper, "CARD"):
		return PaymentPlatformCard
	default:
		return PaymentPlatformUnknown
	}
}

// String implements fmt.Stringer.
func (p PaymentPlatform) String() string {
	return string(p)
}
