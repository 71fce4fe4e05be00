package models

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrencyPrefix is the fixed 2-character prefix carried by every displayed
// price, e.g. "RM12.50".
const CurrencyPrefix = "RM"

// Money is an amount in minor units (sen). Prices are stored and computed as
// Money; the prefixed display string exists only at the UI, import and ledger
// edges.
type Money int64

// ParseAmount parses a plain decimal like "5", "5.0" or "5.00".
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	whole, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, fmt.Errorf("invalid amount: %q", s)
	}
	cents := int64(0)
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount: %q", s)
		}
	}
	return Money(units*100 + cents), nil
}

// ParseDisplay parses a prefixed price like "RM5.00" by dropping the fixed
// 2-character currency prefix.
func ParseDisplay(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(CurrencyPrefix) || !strings.HasPrefix(s, CurrencyPrefix) {
		return 0, fmt.Errorf("price %q does not start with %s", s, CurrencyPrefix)
	}
	return ParseAmount(s[len(CurrencyPrefix):])
}

// Amount renders the bare decimal, e.g. "5.00".
func (m Money) Amount() string {
	return fmt.Sprintf("%d.%02d", m/100, m%100)
}

// Display renders the prefixed price, e.g. "RM5.00".
func (m Money) Display() string {
	return CurrencyPrefix + m.Amount()
}
