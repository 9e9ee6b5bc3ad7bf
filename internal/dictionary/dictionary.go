// Package dictionary holds the versioned signal tables and the knowledge
// base of known companies, scam patterns, and professional-benefit
// language. Everything here is loaded once at startup and immutable
// afterwards; all tables live in one place so the matcher and heuristics
// never carry private copies.
package dictionary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nextstep-io/jobtrust/internal/model"
)

// Dictionary is the full set of static tables used by the analyzers
type Dictionary struct {
	Version string

	Signals      []model.Signal
	Companies    []model.Company
	ScamPatterns []model.ScamPattern

	// Professional-benefit phrases, modeled as positive-tier signals so
	// knowledge matches share the Signal shape.
	ProfessionalSignals []model.Signal

	// Word lists for the secondary structural heuristics
	FreeEmailDomains   []string
	CommonMisspellings []string
	UrgencyPhrases     []string
	VaguePhrases       []string
	SpecificPhrases    []string
	GetRichPhrases     []string
}

// Default returns the built-in dictionary
func Default() *Dictionary {
	return &Dictionary{
		Version:             builtinVersion,
		Signals:             builtinSignals(),
		Companies:           builtinCompanies(),
		ScamPatterns:        builtinScamPatterns(),
		ProfessionalSignals: builtinProfessionalSignals(),
		FreeEmailDomains:    builtinFreeEmailDomains(),
		CommonMisspellings:  builtinMisspellings(),
		UrgencyPhrases:      builtinUrgencyPhrases(),
		VaguePhrases:        builtinVaguePhrases(),
		SpecificPhrases:     builtinSpecificPhrases(),
		GetRichPhrases:      builtinGetRichPhrases(),
	}
}

// SignalsByTier returns the signals of the given tiers, dictionary order
func (d *Dictionary) SignalsByTier(tiers ...model.SignalTier) []model.Signal {
	want := make(map[model.SignalTier]bool, len(tiers))
	for _, t := range tiers {
		want[t] = true
	}
	var out []model.Signal
	for _, s := range d.Signals {
		if want[s.Tier] {
			out = append(out, s)
		}
	}
	return out
}

// overlay is the YAML shape for user-supplied dictionary extensions
type overlay struct {
	Signals []struct {
		Pattern  string `yaml:"pattern"`
		Tier     string `yaml:"tier"`
		Category string `yaml:"category"`
		Impact   int    `yaml:"impact"`
	} `yaml:"signals"`
	Companies []struct {
		Name            string   `yaml:"name"`
		Aliases         []string `yaml:"aliases"`
		Type            string   `yaml:"type"`
		Credibility     float64  `yaml:"credibility"`
		ConfidenceBoost int      `yaml:"confidence_boost"`
	} `yaml:"companies"`
	ScamPatterns []struct {
		Name            string   `yaml:"name"`
		Phrases         []string `yaml:"phrases"`
		ScorePenalty    int      `yaml:"score_penalty"`
		ConfidenceBoost int      `yaml:"confidence_boost"`
		Description     string   `yaml:"description"`
	} `yaml:"scam_patterns"`
}

var validTiers = map[model.SignalTier]bool{
	model.TierCritical: true,
	model.TierHigh:     true,
	model.TierMedium:   true,
	model.TierLow:      true,
	model.TierPositive: true,
}

var validCompanyTypes = map[model.CompanyType]bool{
	model.CompanyTechGiant:  true,
	model.CompanyEnterprise: true,
	model.CompanyStaffing:   true,
	model.CompanyKnownScam:  true,
}

// LoadOverlay merges a YAML overlay file over the dictionary. Entries
// with unknown tiers or company types are rejected, not coerced.
func (d *Dictionary) LoadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overlay: %w", err)
	}

	var o overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse overlay: %w", err)
	}

	for _, s := range o.Signals {
		tier := model.SignalTier(s.Tier)
		if !validTiers[tier] {
			return fmt.Errorf("overlay signal %q: unknown tier %q", s.Pattern, s.Tier)
		}
		d.Signals = append(d.Signals, model.Signal{
			Pattern:  s.Pattern,
			Tier:     tier,
			Category: model.SignalCategory(s.Category),
			Impact:   s.Impact,
		})
	}

	for _, c := range o.Companies {
		ctype := model.CompanyType(c.Type)
		if !validCompanyTypes[ctype] {
			return fmt.Errorf("overlay company %q: unknown type %q", c.Name, c.Type)
		}
		d.Companies = append(d.Companies, model.Company{
			Name:            c.Name,
			Aliases:         c.Aliases,
			Type:            ctype,
			Credibility:     c.Credibility,
			ConfidenceBoost: c.ConfidenceBoost,
		})
	}

	for _, p := range o.ScamPatterns {
		if len(p.Phrases) == 0 {
			return fmt.Errorf("overlay scam pattern %q: no phrases", p.Name)
		}
		d.ScamPatterns = append(d.ScamPatterns, model.ScamPattern{
			Name:            p.Name,
			Phrases:         p.Phrases,
			ScorePenalty:    p.ScorePenalty,
			ConfidenceBoost: p.ConfidenceBoost,
			Description:     p.Description,
		})
	}

	return nil
}
