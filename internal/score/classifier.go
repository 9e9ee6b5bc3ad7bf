package score

import "github.com/nextstep-io/jobtrust/internal/model"

// Classifier maps a blend to a discrete risk band. No state across
// calls; the overrides and the confidence adjustment are the only
// rules beyond plain thresholds.
type Classifier struct {
	cfg model.ScoringConfig
}

// NewClassifier creates a classifier with the given thresholds
func NewClassifier(cfg model.ScoringConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify returns the risk level for a blend. Knowledge-base
// overrides take precedence over the numeric banding: a canonical scam
// pattern forces Very High, a verified employer forces Very Low. A
// single strong structural signal is more reliable than the blended
// number and must not be diluted by it. The scam override wins when
// both apply.
func (c *Classifier) Classify(blend Blend) model.RiskLevel {
	if _, ok := blend.Knowledge.CriticalScam(c.cfg.CriticalScamPenalty); ok {
		return model.RiskVeryHigh
	}
	if _, ok := blend.Knowledge.VerifiedCompany(c.cfg.VerifiedCredibility); ok {
		return model.RiskVeryLow
	}

	// Low-confidence scores get pulled down before banding: an
	// uncertain "looks fine" must not be treated as fine.
	adjusted := float64(blend.Score)
	if blend.Confidence < c.cfg.LowConfidenceBand {
		adjusted -= float64(100-blend.Confidence) / 10
	}

	switch {
	case adjusted >= 85:
		return model.RiskVeryLow
	case adjusted >= 70:
		return model.RiskLow
	case adjusted >= 55:
		return model.RiskMedium
	case adjusted >= 40:
		return model.RiskHigh
	default:
		return model.RiskVeryHigh
	}
}
