package heuristic

import (
	"strings"
	"unicode"
)

// grammarQuality blends three independent checks into [0,1]: the
// fraction of sentences with a reasonable word count (10-30), the
// absence of common misspellings, and the fraction of sentences that
// start capitalized. Runs over the raw text; capitalization does not
// survive normalization.
func grammarQuality(raw string, misspellings []string) float64 {
	sentences := splitSentences(raw)
	if len(sentences) == 0 {
		return 0.5 // Nothing to judge either way
	}

	reasonable := 0
	capitalized := 0
	for _, s := range sentences {
		if n := len(strings.Fields(s)); n >= 10 && n <= 30 {
			reasonable++
		}
		for _, r := range s {
			if unicode.IsLetter(r) {
				if unicode.IsUpper(r) {
					capitalized++
				}
				break
			}
		}
	}

	lengthScore := float64(reasonable) / float64(len(sentences))
	capScore := float64(capitalized) / float64(len(sentences))

	lower := strings.ToLower(raw)
	misspelled := 0
	for _, w := range misspellings {
		if strings.Contains(lower, w) {
			misspelled++
		}
	}
	spellScore := 1.0 - float64(misspelled)/5.0
	if spellScore < 0 {
		spellScore = 0
	}

	return (lengthScore + spellScore + capScore) / 3.0
}

// splitSentences breaks raw text on terminators followed by whitespace,
// skipping fragments too short to be sentences.
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			if i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t') {
				sentence := strings.TrimSpace(current.String())
				if len(sentence) >= 15 {
					sentences = append(sentences, sentence)
				}
				current.Reset()
			}
		}
	}

	if current.Len() > 0 {
		sentence := strings.TrimSpace(current.String())
		if len(sentence) >= 15 {
			sentences = append(sentences, sentence)
		}
	}

	return sentences
}
