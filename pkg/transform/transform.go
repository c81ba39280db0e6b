package transform

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var labelCodePattern = regexp.MustCompile(`^(.*?)\s*\(([^()]+)\)\s*$`)

// splitLabelCode pulls a trailing parenthesized account code off a row label.
// "Cash (090)" yields ("Cash", "090"); labels without a suffix pass through.
func splitLabelCode(label string) (string, string) {
	matches := labelCodePattern.FindStringSubmatch(label)
	if len(matches) != 3 {
		return label, ""
	}
	return strings.TrimSpace(matches[1]), strings.TrimSpace(matches[2])
}

func renderDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

func validDecimal(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// signSplit derives the debit/credit pair from a signed amount.
func signSplit(amount decimal.Decimal) (debit, credit decimal.Decimal) {
	if amount.IsPositive() {
		return amount, decimal.Zero
	}
	if amount.IsNegative() {
		return decimal.Zero, amount.Neg()
	}
	return decimal.Zero, decimal.Zero
}
