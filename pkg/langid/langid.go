package langid

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
)

// DefaultCode is returned whenever detection is skipped or fails.
const DefaultCode = "en"

// maxCodeLen is the longest input treated as an already-valid locale code.
const maxCodeLen = 5

// Detect resolves a caller-supplied language field to a locale code.
// Blank or "auto" (any case, any whitespace) means "use the default".
// A short purely-alphabetic token is passed through unchanged — it is
// already a code. Anything longer runs statistical detection; when the
// detector cannot name a language the default is returned.
func Detect(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" || t == "auto" {
		return DefaultCode
	}

	if len(t) <= maxCodeLen && isAlpha(t) {
		return t
	}

	info := whatlanggo.Detect(t)
	code := info.Lang.Iso6391()
	if code == "" {
		return DefaultCode
	}
	return code
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
