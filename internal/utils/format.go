package utils

import (
	"strconv"
	"strings"
)

// FormatWithCommas formats an integer with comma separators.
func FormatWithCommas(n int) string {
	sign := ""
	mag := uint64(n)
	if n < 0 {
		sign = "-"
		mag = -mag
	}
	str := strconv.FormatUint(mag, 10)
	if len(str) <= 3 {
		return sign + str
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}

// FormatList renders words the way the console predictor prints them:
// "[a, b, c]".
func FormatList(words []string) string {
	return "[" + strings.Join(words, ", ") + "]"
}
