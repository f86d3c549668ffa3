package utils

import "strconv"

// FormatAmount renders a whole-unit Naira amount with thousand
// separators, e.g. 150000 -> "150,000".
func FormatAmount(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if n < 0 {
		s = "-" + s
	}
	return s
}
