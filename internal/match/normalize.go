package match

import "strings"

// Normalize lowercases and whitespace-collapses text for matching and
// fingerprinting. Normalized text is never shown to users.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// ContainsWord reports whether phrase appears in text on word
// boundaries, so "meta" does not fire inside "metadata" and "amazon"
// does not fire inside "amazonia". Both arguments must already be
// normalized.
func ContainsWord(text, phrase string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
