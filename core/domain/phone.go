package domain

import "strings"

// FormatPhoneNumber formats a North American number as "(416) 555-0199",
// or "+1 (416) 555-0199" when the country code is present. Anything else is
// returned trimmed but otherwise unchanged.
func FormatPhoneNumber(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	switch {
	case len(d) == 10:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	case len(d) == 11 && d[0] == '1':
		return "+1 (" + d[1:4] + ") " + d[4:7] + "-" + d[7:]
	default:
		return strings.TrimSpace(phone)
	}
}
