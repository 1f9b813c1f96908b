package strings

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// WrapString wraps v at maxLength, additionally hard-splitting words that
// exceed the limit on their own.
func WrapString(v string, maxLength int) string {
	var res []string
	for _, s := range strings.Split(wordwrap.WrapString(v, uint(maxLength)), "\n") {
		for len(s) > maxLength {
			res = append(res, s[:maxLength])
			s = s[maxLength:]
		}
		res = append(res, s)
	}
	return strings.Join(res, "\n")
}
