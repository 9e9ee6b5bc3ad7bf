// Package match implements the fuzzy word-window signal matcher.
package match

import (
	"strings"

	"github.com/nextstep-io/jobtrust/internal/model"
)

// Matcher scans normalized text for dictionary signals. It is a pure
// function over its inputs: identical text and dictionary always yield
// identical matches, which the scan cache depends on.
type Matcher struct {
	threshold    float64
	contextWords int
}

// New creates a matcher with the given tuning. The threshold is the
// system's core tolerance knob and is always taken from configuration.
func New(cfg model.MatcherConfig) *Matcher {
	threshold := cfg.Threshold
	if threshold <= 0 || threshold > 1 {
		threshold = 0.7
	}
	contextWords := cfg.ContextWords
	if contextWords <= 0 {
		contextWords = 10
	}
	return &Matcher{threshold: threshold, contextWords: contextWords}
}

// Match slides an n-word window over the text for each n-word pattern
// and scores per-position word containment (substring, not exact token
// match, so "fees" still matches "fee"). A window qualifies when its
// matched-word ratio reaches the threshold. All qualifying windows are
// returned; callers apply Dedupe for the one-per-(pattern, tier) rule.
func (m *Matcher) Match(text string, signals []model.Signal) []model.SignalMatch {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var matches []model.SignalMatch
	for _, sig := range signals {
		pattern := strings.Fields(strings.ToLower(sig.Pattern))
		n := len(pattern)
		if n == 0 || n > len(words) {
			continue
		}

		for i := 0; i+n <= len(words); i++ {
			matched := 0
			for j, pw := range pattern {
				if strings.Contains(words[i+j], pw) {
					matched++
				}
			}

			confidence := float64(matched) / float64(n)
			if confidence >= m.threshold {
				matches = append(matches, model.SignalMatch{
					Signal:     sig,
					Span:       strings.Join(words[i:i+n], " "),
					Confidence: confidence,
					Context:    m.context(words, i, n),
				})
			}
		}
	}

	return matches
}

// context returns the words around a match with the matched span marked,
// for audit output and user-facing evidence text.
func (m *Matcher) context(words []string, start, n int) string {
	lo := start - m.contextWords
	if lo < 0 {
		lo = 0
	}
	hi := start + n + m.contextWords
	if hi > len(words) {
		hi = len(words)
	}

	var b strings.Builder
	if lo > 0 {
		b.WriteString("... ")
	}
	if start > lo {
		b.WriteString(strings.Join(words[lo:start], " "))
		b.WriteString(" ")
	}
	b.WriteString("[")
	b.WriteString(strings.Join(words[start:start+n], " "))
	b.WriteString("]")
	if start+n < hi {
		b.WriteString(" ")
		b.WriteString(strings.Join(words[start+n:hi], " "))
	}
	if hi < len(words) {
		b.WriteString(" ...")
	}
	return b.String()
}

// Dedupe collapses matches so no two entries share (pattern, tier),
// keeping the first occurrence unless a later one is strictly more
// confident.
func Dedupe(matches []model.SignalMatch) []model.SignalMatch {
	type key struct {
		pattern string
		tier    model.SignalTier
	}

	index := make(map[key]int)
	var out []model.SignalMatch
	for _, m := range matches {
		k := key{pattern: m.Signal.Pattern, tier: m.Signal.Tier}
		if at, seen := index[k]; seen {
			if m.Confidence > out[at].Confidence {
				out[at] = m
			}
			continue
		}
		index[k] = len(out)
		out = append(out, m)
	}
	return out
}
