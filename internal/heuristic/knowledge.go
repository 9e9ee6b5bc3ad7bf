package heuristic

import (
	"github.com/nextstep-io/jobtrust/internal/match"
	"github.com/nextstep-io/jobtrust/internal/model"
)

// matchKnowledge scans the normalized text against the knowledge base:
// company names and aliases, scam phrase groups, and professional
// benefit language. All lookups are word-boundary matches so lookalike
// names never hit a knowledge entry. Returns nil when nothing matched.
func (a *Analyzer) matchKnowledge(norm string) *model.KnowledgeContext {
	k := &model.KnowledgeContext{}

	for _, c := range a.dict.Companies {
		if match.ContainsWord(norm, c.Name) {
			k.Companies = append(k.Companies, c)
			continue
		}
		for _, alias := range c.Aliases {
			if match.ContainsWord(norm, alias) {
				k.Companies = append(k.Companies, c)
				break
			}
		}
	}

	for _, p := range a.dict.ScamPatterns {
		for _, phrase := range p.Phrases {
			if match.ContainsWord(norm, phrase) {
				k.ScamPatterns = append(k.ScamPatterns, p)
				break
			}
		}
	}

	for _, m := range match.Dedupe(a.matcher.Match(norm, a.dict.ProfessionalSignals)) {
		k.ProfessionalSignals = append(k.ProfessionalSignals, m.Signal)
	}

	if k.Empty() {
		return nil
	}
	return k
}
