// Package heuristic implements the rule-based analyzer: dictionary
// signal matching plus secondary structural checks, composed into the
// same SubScore shape the AI adapter produces.
package heuristic

import (
	"fmt"

	"github.com/nextstep-io/jobtrust/internal/dictionary"
	"github.com/nextstep-io/jobtrust/internal/match"
	"github.com/nextstep-io/jobtrust/internal/model"
)

// Analyzer runs the heuristic path. Pure computation over strings; the
// only state is the loaded dictionary and tuning, both immutable.
type Analyzer struct {
	dict    *dictionary.Dictionary
	matcher *match.Matcher
	cfg     model.HeuristicConfig
	scoring model.ScoringConfig
}

// New creates an analyzer over the given dictionary and tuning
func New(dict *dictionary.Dictionary, cfg *model.Config) *Analyzer {
	return &Analyzer{
		dict:    dict,
		matcher: match.New(cfg.Matcher),
		cfg:     cfg.Heuristics,
		scoring: cfg.Scoring,
	}
}

// Analyze produces the heuristic SubScore for raw posting text. The raw
// text is kept for grammar checks (capitalization is meaningless after
// normalization); everything else runs over the normalized form.
//
// A panic in any sub-check is recovered and surfaced as an error so a
// bug in one heuristic never voids the whole scan; the engine
// substitutes the basic fallback SubScore in that case.
func (a *Analyzer) Analyze(raw string) (sub model.SubScore, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("heuristic analysis failed: %v", r)
		}
	}()

	norm := match.Normalize(raw)

	var flags []model.RiskFlag
	var evidence []model.Evidence

	// Dictionary signals: risk tiers become flags, positive tier
	// becomes evidence. One entry per (pattern, tier).
	riskMatches := match.Dedupe(a.matcher.Match(norm, a.dict.SignalsByTier(
		model.TierCritical, model.TierHigh, model.TierMedium, model.TierLow)))
	for _, m := range riskMatches {
		flags = append(flags, model.RiskFlag{
			Label:      fmt.Sprintf("signal: %s", m.Signal.Pattern),
			Severity:   m.Signal.Tier.Severity(),
			Context:    m.Context,
			Confidence: m.Confidence,
		})
	}

	positiveMatches := match.Dedupe(a.matcher.Match(norm, a.dict.SignalsByTier(model.TierPositive)))
	for _, m := range positiveMatches {
		evidence = append(evidence, model.Evidence{
			Kind:       model.EvidencePositive,
			Label:      fmt.Sprintf("signal: %s", m.Signal.Pattern),
			Context:    m.Context,
			Confidence: m.Confidence,
		})
	}

	// Secondary structural checks. Each is independent of the others.
	if g := grammarQuality(raw, a.dict.CommonMisspellings); g < a.cfg.GrammarFlagBelow {
		flags = append(flags, model.RiskFlag{
			Label:      "poor grammar",
			Severity:   model.SeverityMedium,
			Context:    fmt.Sprintf("grammar quality %.2f", g),
			Confidence: 0.8,
		})
	}

	if u := urgencyDensity(norm, a.dict.UrgencyPhrases); u > a.cfg.UrgencyFlagAbove {
		flags = append(flags, model.RiskFlag{
			Label:      "excessive urgency",
			Severity:   model.SeverityMedium,
			Context:    fmt.Sprintf("urgency density %.2f", u),
			Confidence: 0.8,
		})
	}

	if v := vaguenessRatio(norm, a.dict.VaguePhrases, a.dict.SpecificPhrases); v > a.cfg.VaguenessFlagAbove {
		flags = append(flags, model.RiskFlag{
			Label:      "vague job description",
			Severity:   model.SeverityMedium,
			Context:    fmt.Sprintf("vagueness ratio %.2f", v),
			Confidence: 0.7,
		})
	}

	contactFlag, contactEvidence := a.checkContacts(raw)
	if contactFlag != nil {
		flags = append(flags, *contactFlag)
	}
	evidence = append(evidence, contactEvidence...)

	salaryFlag, salaryEvidence := a.checkSalary(norm)
	if salaryFlag != nil {
		flags = append(flags, *salaryFlag)
	}
	evidence = append(evidence, salaryEvidence...)

	knowledge := a.matchKnowledge(norm)

	value := a.score(flags, evidence)

	return model.SubScore{
		Source:     model.SourceHeuristic,
		Value:      value,
		Confidence: a.confidence(riskMatches, positiveMatches, knowledge),
		Evidence:   evidence,
		RiskFlags:  flags,
		Knowledge:  knowledge,
	}, nil
}

// score starts at neutral 50 and applies per-severity deltas with the
// diminishing-returns dampener, then clamps to [0,100]. The dampener
// keeps a repetitive posting from scoring far from one with the same
// variety of issues.
func (a *Analyzer) score(flags []model.RiskFlag, evidence []model.Evidence) float64 {
	var high, medium, low int
	for _, f := range flags {
		switch f.Severity {
		case model.SeverityCritical, model.SeverityHigh:
			high++
		case model.SeverityMedium:
			medium++
		default:
			low++
		}
	}

	var positive, risk int
	for _, e := range evidence {
		switch e.Kind {
		case model.EvidencePositive:
			positive++
		case model.EvidenceRisk:
			risk++
		}
	}

	s := &a.scoring
	value := 50.0
	value += dampenedTotal(high, float64(-s.HighPenalty), s)
	value += dampenedTotal(medium, float64(-s.MediumPenalty), s)
	value += dampenedTotal(low, float64(-s.LowPenalty), s)
	value += dampenedTotal(positive, float64(s.PositiveBonus), s)
	value += dampenedTotal(risk, float64(-s.RiskPenalty), s)

	return clamp(value, 0, 100)
}

// dampenedTotal sums count applications of delta. Beyond DampenerAfter
// items the marginal contribution shrinks by min(DampenerMax,
// DampenerStep * excess).
func dampenedTotal(count int, delta float64, s *model.ScoringConfig) float64 {
	total := 0.0
	for i := 0; i < count; i++ {
		if i < s.DampenerAfter {
			total += delta
			continue
		}
		reduction := s.DampenerStep * float64(i-s.DampenerAfter+1)
		if reduction > s.DampenerMax {
			reduction = s.DampenerMax
		}
		total += delta * (1 - reduction)
	}
	return total
}

// confidence estimates how much signal the heuristic path actually saw.
// The blend confidence in the combiner is computed separately; this one
// only describes the heuristic branch.
func (a *Analyzer) confidence(risk, positive []model.SignalMatch, knowledge *model.KnowledgeContext) float64 {
	c := 60.0
	c += 2 * float64(len(risk)+len(positive))
	if !knowledge.Empty() {
		c += 10
	}
	return clamp(c, 40, 85)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
