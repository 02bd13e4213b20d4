// Package money formats integer rupiah amounts for display.
package money

import "strconv"

// Rupiah formats an amount in whole rupiah with the "Rp " prefix and
// thousands grouped by dots, e.g. 275000 -> "Rp 275.000".
func Rupiah(amount int64) string {
	return "Rp " + group(amount)
}

func group(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	sign := ""
	if s[0] == '-' {
		sign = "-"
		s = s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	// Walk from the right, inserting a dot every three digits.
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	return sign + string(out)
}
