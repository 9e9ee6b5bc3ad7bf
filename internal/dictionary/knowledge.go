package dictionary

import "github.com/nextstep-io/jobtrust/internal/model"

// builtinCompanies returns the curated employer table. Credibility 1.0
// means a widely verifiable employer; the combiner treats tech giants
// (and anything at or above the configured credibility floor) as a hard
// risk-level floor rather than a score bonus.
func builtinCompanies() []model.Company {
	return []model.Company{
		{Name: "google", Aliases: []string{"alphabet"}, Type: model.CompanyTechGiant, Credibility: 1.0, ConfidenceBoost: 15},
		{Name: "microsoft", Type: model.CompanyTechGiant, Credibility: 1.0, ConfidenceBoost: 15},
		{Name: "amazon", Aliases: []string{"aws"}, Type: model.CompanyTechGiant, Credibility: 1.0, ConfidenceBoost: 15},
		{Name: "apple", Type: model.CompanyTechGiant, Credibility: 1.0, ConfidenceBoost: 15},
		{Name: "meta", Aliases: []string{"facebook", "instagram"}, Type: model.CompanyTechGiant, Credibility: 1.0, ConfidenceBoost: 15},
		{Name: "netflix", Type: model.CompanyTechGiant, Credibility: 1.0, ConfidenceBoost: 15},
		{Name: "nvidia", Type: model.CompanyTechGiant, Credibility: 1.0, ConfidenceBoost: 15},

		{Name: "accenture", Type: model.CompanyEnterprise, Credibility: 0.92, ConfidenceBoost: 12},
		{Name: "deloitte", Type: model.CompanyEnterprise, Credibility: 0.92, ConfidenceBoost: 12},
		{Name: "jpmorgan", Aliases: []string{"jp morgan", "chase"}, Type: model.CompanyEnterprise, Credibility: 0.92, ConfidenceBoost: 12},
		{Name: "salesforce", Type: model.CompanyEnterprise, Credibility: 0.92, ConfidenceBoost: 12},

		{Name: "robert half", Type: model.CompanyStaffing, Credibility: 0.8, ConfidenceBoost: 8},
		{Name: "randstad", Type: model.CompanyStaffing, Credibility: 0.8, ConfidenceBoost: 8},
		{Name: "adecco", Type: model.CompanyStaffing, Credibility: 0.8, ConfidenceBoost: 8},
	}
}

// builtinScamPatterns returns the curated scam phrase groups. A penalty
// at or below the critical threshold (-30 by default) forces the risk
// level to Very High on its own.
func builtinScamPatterns() []model.ScamPattern {
	return []model.ScamPattern{
		{
			Name:            "advance_fee",
			Phrases:         []string{"processing fee", "western union", "wire transfer", "training fee", "pay a fee", "money transfer", "moneygram"},
			ScorePenalty:    -40,
			ConfidenceBoost: 10,
			Description:     "Requests money from the applicant before work begins",
		},
		{
			Name:            "check_overpayment",
			Phrases:         []string{"cashier's check", "deposit the check", "send back the difference", "keep a portion and forward"},
			ScorePenalty:    -35,
			ConfidenceBoost: 10,
			Description:     "Classic overpayment scheme using counterfeit checks",
		},
		{
			Name:            "reshipping",
			Phrases:         []string{"reship packages", "package forwarding from home", "receive and forward parcels"},
			ScorePenalty:    -40,
			ConfidenceBoost: 10,
			Description:     "Mule work moving stolen goods",
		},
		{
			Name:            "identity_harvest",
			Phrases:         []string{"social security number to apply", "bank details to apply", "copy of your passport before interview"},
			ScorePenalty:    -35,
			ConfidenceBoost: 10,
			Description:     "Collects identity documents before any legitimate hiring step",
		},
		{
			Name:            "crypto_payout",
			Phrases:         []string{"paid in bitcoin", "crypto wallet required", "salary in cryptocurrency"},
			ScorePenalty:    -25,
			ConfidenceBoost: 8,
			Description:     "Untraceable payment channel; suspicious but not conclusive",
		},
		{
			Name:            "pyramid_recruiting",
			Phrases:         []string{"recruit your friends", "build your downline", "earn from everyone you sign up"},
			ScorePenalty:    -20,
			ConfidenceBoost: 8,
			Description:     "Compensation depends on recruiting, not work",
		},
	}
}

// builtinProfessionalSignals returns benefit language that corroborates
// a legitimate employer. Shared with the positive signal tier but kept
// as a separate table so knowledge matches carry their own boosts.
func builtinProfessionalSignals() []model.Signal {
	return []model.Signal{
		{Pattern: "health insurance", Tier: model.TierPositive, Category: model.CategoryBenefits, Impact: 8},
		{Pattern: "401k", Tier: model.TierPositive, Category: model.CategoryBenefits, Impact: 8},
		{Pattern: "equity", Tier: model.TierPositive, Category: model.CategoryBenefits, Impact: 8},
		{Pattern: "paid time off", Tier: model.TierPositive, Category: model.CategoryBenefits, Impact: 8},
		{Pattern: "stock options", Tier: model.TierPositive, Category: model.CategoryBenefits, Impact: 8},
		{Pattern: "tuition reimbursement", Tier: model.TierPositive, Category: model.CategoryBenefits, Impact: 8},
	}
}
