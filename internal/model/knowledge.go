package model

// CompanyType categorizes known employers in the knowledge base
type CompanyType string

const (
	CompanyTechGiant  CompanyType = "tech_giant"  // Fortune-level tech employers
	CompanyEnterprise CompanyType = "enterprise"  // Large verified employers
	CompanyStaffing   CompanyType = "staffing"    // Known staffing agencies
	CompanyKnownScam  CompanyType = "known_scam"  // Names reused by scammers
)

// Company is a knowledge-base entry for a known employer
type Company struct {
	Name            string      `json:"name"`
	Aliases         []string    `json:"aliases,omitempty"`
	Type            CompanyType `json:"type"`
	Credibility     float64     `json:"credibility"`      // [0,1], 1 = fully verified
	ConfidenceBoost int         `json:"confidence_boost"` // Points added to blend confidence
}

// ScamPattern is a knowledge-base entry for canonical scam phrasing.
// A penalty at or below the critical threshold forces the risk level to
// Very High regardless of the numeric blend.
type ScamPattern struct {
	Name            string   `json:"name"`
	Phrases         []string `json:"phrases"`
	ScorePenalty    int      `json:"score_penalty"` // Negative
	ConfidenceBoost int      `json:"confidence_boost"`
	Description     string   `json:"description,omitempty"`
}

// Critical reports whether this pattern alone forces a Very High risk level
func (p ScamPattern) Critical(threshold int) bool {
	return p.ScorePenalty <= threshold
}

// KnowledgeContext holds the structured knowledge-base matches for one
// posting. Either analyzer may populate it; the combiner treats company
// and scam matches as hard overrides, not additive terms.
type KnowledgeContext struct {
	Companies           []Company     `json:"companies,omitempty"`
	ScamPatterns        []ScamPattern `json:"scam_patterns,omitempty"`
	ProfessionalSignals []Signal      `json:"professional_signals,omitempty"`
}

// Empty reports whether nothing in the knowledge base matched
func (k *KnowledgeContext) Empty() bool {
	return k == nil || (len(k.Companies) == 0 && len(k.ScamPatterns) == 0 && len(k.ProfessionalSignals) == 0)
}

// VerifiedCompany returns the first company credible enough to floor the
// risk level, if any. Tech giants qualify unconditionally.
func (k *KnowledgeContext) VerifiedCompany(minCredibility float64) (Company, bool) {
	if k == nil {
		return Company{}, false
	}
	for _, c := range k.Companies {
		if c.Type == CompanyTechGiant || c.Credibility >= minCredibility {
			return c, true
		}
	}
	return Company{}, false
}

// CriticalScam returns the first scam pattern whose penalty forces a
// Very High risk level, if any.
func (k *KnowledgeContext) CriticalScam(threshold int) (ScamPattern, bool) {
	if k == nil {
		return ScamPattern{}, false
	}
	for _, p := range k.ScamPatterns {
		if p.Critical(threshold) {
			return p, true
		}
	}
	return ScamPattern{}, false
}

// Merge combines knowledge from both analyzers into one context.
// nil-safe; returns nil when both sides are empty.
func (k *KnowledgeContext) Merge(other *KnowledgeContext) *KnowledgeContext {
	if k.Empty() {
		if other.Empty() {
			return nil
		}
		return other
	}
	if other.Empty() {
		return k
	}
	merged := &KnowledgeContext{
		Companies:           append(append([]Company{}, k.Companies...), other.Companies...),
		ScamPatterns:        append(append([]ScamPattern{}, k.ScamPatterns...), other.ScamPatterns...),
		ProfessionalSignals: append(append([]Signal{}, k.ProfessionalSignals...), other.ProfessionalSignals...),
	}
	return merged
}
