package dictionary

import "github.com/nextstep-io/jobtrust/internal/model"

const builtinVersion = "2025.08"

// builtinSignals returns the built-in signal table, grouped by tier.
// Patterns are matched fuzzily at the word level, so minor inflection
// ("fees", "transfers") still matches.
func builtinSignals() []model.Signal {
	return []model.Signal{
		// Critical: canonical scam mechanics
		{Pattern: "wire transfer", Tier: model.TierCritical, Category: model.CategoryPayment, Impact: -30},
		{Pattern: "western union", Tier: model.TierCritical, Category: model.CategoryPayment, Impact: -30},
		{Pattern: "processing fee", Tier: model.TierCritical, Category: model.CategoryPayment, Impact: -30},
		{Pattern: "send money", Tier: model.TierCritical, Category: model.CategoryPayment, Impact: -30},
		{Pattern: "pay for training", Tier: model.TierCritical, Category: model.CategoryPayment, Impact: -25},
		{Pattern: "upfront payment required", Tier: model.TierCritical, Category: model.CategoryPayment, Impact: -30},
		{Pattern: "deposit the check", Tier: model.TierCritical, Category: model.CategoryPayment, Impact: -30},
		{Pattern: "reship packages", Tier: model.TierCritical, Category: model.CategoryProcess, Impact: -30},
		{Pattern: "social security number to apply", Tier: model.TierCritical, Category: model.CategoryIdentity, Impact: -30},

		// High: strong risk indicators
		{Pattern: "no experience necessary", Tier: model.TierHigh, Category: model.CategoryVagueness, Impact: -15},
		{Pattern: "unlimited earning potential", Tier: model.TierHigh, Category: model.CategoryCompensation, Impact: -15},
		{Pattern: "no interview required", Tier: model.TierHigh, Category: model.CategoryProcess, Impact: -15},
		{Pattern: "personal bank account", Tier: model.TierHigh, Category: model.CategoryIdentity, Impact: -15},
		{Pattern: "work from home guaranteed", Tier: model.TierHigh, Category: model.CategoryProcess, Impact: -12},
		{Pattern: "earn money fast", Tier: model.TierHigh, Category: model.CategoryCompensation, Impact: -12},
		{Pattern: "paid in bitcoin", Tier: model.TierHigh, Category: model.CategoryPayment, Impact: -12},
		{Pattern: "text us on whatsapp", Tier: model.TierHigh, Category: model.CategoryContact, Impact: -12},

		// Medium: moderate risk indicators
		{Pattern: "quick money", Tier: model.TierMedium, Category: model.CategoryCompensation, Impact: -8},
		{Pattern: "easy money", Tier: model.TierMedium, Category: model.CategoryCompensation, Impact: -8},
		{Pattern: "hiring immediately", Tier: model.TierMedium, Category: model.CategoryUrgency, Impact: -8},
		{Pattern: "limited positions available", Tier: model.TierMedium, Category: model.CategoryUrgency, Impact: -8},
		{Pattern: "act fast", Tier: model.TierMedium, Category: model.CategoryUrgency, Impact: -8},
		{Pattern: "be your own boss", Tier: model.TierMedium, Category: model.CategoryVagueness, Impact: -8},
		{Pattern: "recruit your friends", Tier: model.TierMedium, Category: model.CategoryProcess, Impact: -8},

		// Low: weak risk indicators
		{Pattern: "start today", Tier: model.TierLow, Category: model.CategoryUrgency, Impact: -3},
		{Pattern: "weekly pay", Tier: model.TierLow, Category: model.CategoryCompensation, Impact: -3},
		{Pattern: "flexible hours", Tier: model.TierLow, Category: model.CategoryVagueness, Impact: -3},
		{Pattern: "cash paid daily", Tier: model.TierLow, Category: model.CategoryPayment, Impact: -3},

		// Positive: legitimacy indicators
		{Pattern: "health insurance", Tier: model.TierPositive, Category: model.CategoryBenefits, Impact: 8},
		{Pattern: "401k match", Tier: model.TierPositive, Category: model.CategoryBenefits, Impact: 8},
		{Pattern: "dental coverage", Tier: model.TierPositive, Category: model.CategoryBenefits, Impact: 8},
		{Pattern: "paid time off", Tier: model.TierPositive, Category: model.CategoryBenefits, Impact: 8},
		{Pattern: "parental leave", Tier: model.TierPositive, Category: model.CategoryBenefits, Impact: 8},
		{Pattern: "equity compensation", Tier: model.TierPositive, Category: model.CategoryBenefits, Impact: 8},
		{Pattern: "equal opportunity employer", Tier: model.TierPositive, Category: model.CategoryProcess, Impact: 8},
		{Pattern: "professional development", Tier: model.TierPositive, Category: model.CategoryBenefits, Impact: 8},
		{Pattern: "annual performance review", Tier: model.TierPositive, Category: model.CategoryProcess, Impact: 8},
		{Pattern: "background check required", Tier: model.TierPositive, Category: model.CategoryProcess, Impact: 8},
	}
}

func builtinFreeEmailDomains() []string {
	return []string{
		"gmail.com", "yahoo.com", "hotmail.com", "outlook.com",
		"aol.com", "icloud.com", "proton.me", "protonmail.com",
		"mail.com", "gmx.com", "yandex.com", "zoho.com",
	}
}

func builtinMisspellings() []string {
	return []string{
		"recieve", "seperate", "occured", "definately", "managment",
		"oppertunity", "sallary", "immediatly", "guarentee", "buisness",
		"benifits", "experiance", "posistion", "intrested",
	}
}

func builtinUrgencyPhrases() []string {
	return []string{
		"immediate start", "apply now", "asap", "urgent", "act now",
		"don't wait", "limited time", "apply today", "start immediately",
		"hurry", "today only", "right away", "positions filling fast",
	}
}

func builtinVaguePhrases() []string {
	return []string{
		"various duties", "general tasks", "flexible role",
		"many opportunities", "great opportunity", "huge potential",
		"exciting opportunity", "dynamic environment", "other duties",
		"wide range of tasks", "self starter", "motivated individuals",
	}
}

func builtinSpecificPhrases() []string {
	return []string{
		"years of experience", "bachelor", "degree in", "proficiency in",
		"responsibilities include", "required skills", "qualifications",
		"experience with", "certification", "portfolio", "reports to",
		"key responsibilities",
	}
}

func builtinGetRichPhrases() []string {
	return []string{
		"get rich", "unlimited earnings", "unlimited income",
		"financial freedom", "six figures in months",
		"earn thousands weekly", "double your income overnight",
	}
}
