package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = strings.NewReplacer(",", "", "$", "", "£", "", "€", "")

// Currency parses a human-formatted money value. Parenthesized values are
// negative, thousands separators and common currency symbols are stripped.
// Empty or unparseable input yields a null decimal rather than an error so a
// bad cell never aborts a report walk.
func Currency(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.TrimSpace(currencySymbols.Replace(s))
	if s == "" {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}

	if negative {
		d = d.Neg()
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
