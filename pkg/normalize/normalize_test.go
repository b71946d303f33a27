package normalize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSellerNameFirstTokenUpper(t *testing.T) {
	cases := map[string]string{
		"Bárbara Silva":     "BARBARA",
		"barbara oliveira":  "BARBARA",
		"  Sabrina   Lima ": "SABRINA",
		"SABRINA":           "SABRINA",
		"":                  "",
		"   ":               "",
		"José-Carlos":       "JOSE-CARLOS",
	}
	for in, want := range cases {
		if got := SellerName(in); got != want {
			t.Errorf("SellerName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSellerNameIdempotent(t *testing.T) {
	inputs := []string{"Bárbara Souza", "sabrina lima", "ÁGATHA", "wemille"}
	for _, in := range inputs {
		once := SellerName(in)
		if twice := SellerName(once); twice != once {
			t.Errorf("SellerName not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSellerNameFromEmail(t *testing.T) {
	if got := SellerNameFromEmail("sabrina.lima@tetra.com.br"); got != "SABRINA" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := SellerNameFromEmail("elton@tetra.com.br"); got != "ELTON" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestTitleCaseName(t *testing.T) {
	if got := TitleCaseName("sabrina lima"); got != "Sabrina Lima" {
		t.Fatalf("unexpected title case %q", got)
	}
	if got := TitleCaseName("BÁRBARA souza"); got != "Bárbara Souza" {
		t.Fatalf("unexpected title case %q", got)
	}
}

func TestConvertSalesDate(t *testing.T) {
	if got := ConvertSalesDate("2024-25-03"); got != "2024-03-25" {
		t.Fatalf("ConvertSalesDate swap failed: %q", got)
	}
	// Non-3-part input passes through untouched.
	if got := ConvertSalesDate("2024-03"); got != "2024-03" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := ConvertSalesDate(""); got != "" {
		t.Fatalf("expected empty passthrough, got %q", got)
	}
}

func TestAmbiguousSalesDate(t *testing.T) {
	if !AmbiguousSalesDate("2024-05-03") {
		t.Fatal("expected 2024-05-03 to be ambiguous")
	}
	if AmbiguousSalesDate("2024-25-03") {
		t.Fatal("day 25 cannot be a month; not ambiguous")
	}
	if AmbiguousSalesDate("2024-07-07") {
		t.Fatal("identical segments read the same either way")
	}
}

func TestSameLocalDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	ref := time.Date(2024, 1, 10, 23, 30, 0, 0, loc)
	if !SameLocalDay("2024-01-10", ref) {
		t.Fatal("expected same local day")
	}
	// 23:30 in São Paulo is already Jan 11 in UTC; local comparison
	// must not shift the day.
	if SameLocalDay("2024-01-11", ref) {
		t.Fatal("local comparison leaked into the next UTC day")
	}
}

func TestMonthOfDate(t *testing.T) {
	if got := MonthOfDate("2024-03-25"); got != "03" {
		t.Fatalf("unexpected month %q", got)
	}
	if got := MonthOfDate("junk"); got != "" {
		t.Fatalf("expected empty month for junk, got %q", got)
	}
}

func TestParseBRNumber(t *testing.T) {
	cases := map[string]string{
		"1.234,56":    "1234.56",
		"1234.56":     "1234.56",
		"R$ 2.500,00": "2500",
		"":            "0",
		"abc":         "0",
		"-12,5":       "-12.5",
	}
	for in, want := range cases {
		if got := ParseBRNumber(in); !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("ParseBRNumber(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNumberFromAny(t *testing.T) {
	if got := NumberFromAny(12.5); !got.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("float64 case failed: %s", got)
	}
	if got := NumberFromAny("1.000,10"); !got.Equal(decimal.RequireFromString("1000.1")) {
		t.Fatalf("string case failed: %s", got)
	}
	if got := NumberFromAny(nil); !got.IsZero() {
		t.Fatalf("nil case failed: %s", got)
	}
	if got := NumberFromAny(map[string]any{}); !got.IsZero() {
		t.Fatalf("unknown type case failed: %s", got)
	}
}

func TestInstallmentNumber(t *testing.T) {
	if got := InstallmentNumber("3/12"); got != 3 {
		t.Fatalf("unexpected installment %d", got)
	}
	if got := InstallmentNumber("1/1"); got != 1 {
		t.Fatalf("unexpected installment %d", got)
	}
	if got := InstallmentNumber(""); got != 0 {
		t.Fatalf("unexpected installment %d", got)
	}
	if got := InstallmentNumber("boleto"); got != 0 {
		t.Fatalf("unexpected installment %d", got)
	}
}
