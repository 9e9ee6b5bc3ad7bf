package heuristic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nextstep-io/jobtrust/internal/model"
)

// Compiled once, used per scan
var reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// checkContacts extracts email addresses and judges domain quality. A
// domain counts as professional when it is not a free/personal provider.
// Mostly-free contact addresses raise a High flag; mixed ones only leave
// risk evidence.
func (a *Analyzer) checkContacts(raw string) (*model.RiskFlag, []model.Evidence) {
	emails := reEmail.FindAllString(raw, -1)
	if len(emails) == 0 {
		return nil, nil
	}

	freeDomains := make(map[string]bool, len(a.dict.FreeEmailDomains))
	for _, d := range a.dict.FreeEmailDomains {
		freeDomains[d] = true
	}

	professional := 0
	for _, e := range emails {
		at := strings.LastIndex(e, "@")
		domain := strings.ToLower(e[at+1:])
		if !freeDomains[domain] {
			professional++
		}
	}

	ratio := float64(professional) / float64(len(emails))
	switch {
	case ratio >= a.cfg.ProfessionalRatio:
		return nil, []model.Evidence{{
			Kind:       model.EvidencePositive,
			Label:      "professional contact domains",
			Context:    fmt.Sprintf("%d of %d contact addresses use a company domain", professional, len(emails)),
			Confidence: 0.9,
		}}
	case ratio >= a.cfg.MixedRatio:
		return nil, []model.Evidence{{
			Kind:       model.EvidenceRisk,
			Label:      "mixed contact domains",
			Context:    fmt.Sprintf("%d of %d contact addresses use a free provider", len(emails)-professional, len(emails)),
			Confidence: 0.8,
		}}
	default:
		return &model.RiskFlag{
			Label:      "unprofessional contact domains",
			Severity:   model.SeverityHigh,
			Context:    fmt.Sprintf("%d of %d contact addresses use a free provider", len(emails)-professional, len(emails)),
			Confidence: 0.85,
		}, nil
	}
}
