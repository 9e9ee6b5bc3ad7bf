package score

import (
	"fmt"

	"github.com/nextstep-io/jobtrust/internal/model"
)

// Recommendations and strategy tips come from fixed template sets keyed
// by risk level, with knowledge-specific templates taking priority.
// Building them is pure and never fails: a missing field degrades to
// the generic template for the band.

var recommendationsByLevel = map[model.RiskLevel][]string{
	model.RiskVeryLow: {
		"This posting shows strong signs of authenticity. Proceed with a standard application.",
		"Verify the role on the employer's official careers page before applying.",
	},
	model.RiskLow: {
		"This posting looks legitimate. Apply through the employer's official channel rather than a reply address.",
		"Confirm the recruiter's identity on a professional network before sharing documents.",
	},
	model.RiskMedium: {
		"Mixed signals detected. Research the employer independently before engaging.",
		"Do not share identity documents or financial details until the employer is verified.",
		"Prefer a video interview over chat-only contact.",
	},
	model.RiskHigh: {
		"Several risk indicators detected. Treat this posting with caution.",
		"Never pay fees, buy equipment, or cash checks for a prospective employer.",
		"Search the employer name together with the word 'scam' and check complaint boards.",
	},
	model.RiskVeryHigh: {
		"This posting matches known fraud patterns. Do not engage.",
		"Do not send money, documents, or personal data under any circumstances.",
		"Report the posting to the platform where you found it.",
	},
}

var tipsByLevel = map[model.RiskLevel][]string{
	model.RiskVeryLow: {
		"Tailor your application to the specific requirements listed.",
	},
	model.RiskLow: {
		"Keep records of all communication in case details change later.",
	},
	model.RiskMedium: {
		"Ask for a written role description and named hiring manager.",
	},
	model.RiskHigh: {
		"Insist on verifiable company contacts before continuing.",
	},
	model.RiskVeryHigh: {
		"If you already shared bank details, contact your bank immediately.",
	},
}

// Recommender builds the caller-facing recommendation text
type Recommender struct {
	cfg model.ScoringConfig
}

// NewRecommender creates a recommender with the given thresholds
func NewRecommender(cfg model.ScoringConfig) *Recommender {
	return &Recommender{cfg: cfg}
}

// Build returns recommendations and strategy tips for a classified
// blend. Degraded scans get an explicit caution prepended.
func (r *Recommender) Build(level model.RiskLevel, blend Blend, degraded bool) (recommendations, tips []string) {
	// Knowledge-specific templates first
	if scam, ok := blend.Knowledge.CriticalScam(r.cfg.CriticalScamPenalty); ok {
		recommendations = append(recommendations,
			fmt.Sprintf("This posting contains a known scam pattern (%s). Do not respond or send anything.", scamLabel(scam)))
	} else if company, ok := blend.Knowledge.VerifiedCompany(r.cfg.VerifiedCredibility); ok {
		recommendations = append(recommendations,
			fmt.Sprintf("The employer appears to be %s, a verified company. Apply through its official careers site to be safe.", company.Name))
	}

	recommendations = append(recommendations, recommendationsByLevel[level]...)
	tips = append(tips, tipsByLevel[level]...)

	if degraded {
		recommendations = append(recommendations,
			"Caution: part of the analysis was unavailable for this scan; treat the score as an estimate and verify independently.")
	}

	if len(recommendations) == 0 {
		// Unknown level: fall back to the generic middle band
		recommendations = append(recommendations, recommendationsByLevel[model.RiskMedium]...)
	}

	return recommendations, tips
}

// Insights summarizes knowledge-base matches for display
func (r *Recommender) Insights(blend Blend) []string {
	if blend.Knowledge.Empty() {
		return nil
	}

	var insights []string
	for _, c := range blend.Knowledge.Companies {
		insights = append(insights, fmt.Sprintf("Known employer matched: %s (%s)", c.Name, c.Type))
	}
	for _, p := range blend.Knowledge.ScamPatterns {
		insights = append(insights, fmt.Sprintf("Scam pattern matched: %s", scamLabel(p)))
	}
	if n := len(blend.Knowledge.ProfessionalSignals); n > 0 {
		insights = append(insights, fmt.Sprintf("Professional benefit language matched (%d signals)", n))
	}
	return insights
}

func scamLabel(p model.ScamPattern) string {
	if p.Description != "" {
		return fmt.Sprintf("%s: %s", p.Name, p.Description)
	}
	return p.Name
}
