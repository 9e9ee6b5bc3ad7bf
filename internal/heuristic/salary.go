package heuristic

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nextstep-io/jobtrust/internal/model"
)

// Matches "$180,000", "$85k", "120,000", "120000" in normalized text.
// The k-suffix form requires the "$" so benefit names like "401k" are
// never read as compensation claims.
var reMoney = regexp.MustCompile(`\$\s?\d+(?:\.\d+)?k|\$?\s?\d{1,3}(?:,\d{3})+|\$?\s?\d{4,7}`)

// salaryFloor filters out non-salary amounts like a "$200 processing
// fee"; anything below it is not treated as a compensation claim.
const salaryFloor = 10_000

// checkSalary classifies the posting's compensation claims. Get-rich
// phrasing or an implausible maximum raises a High flag; a merely
// questionable maximum leaves risk evidence; a plausible explicit range
// is positive evidence.
func (a *Analyzer) checkSalary(norm string) (*model.RiskFlag, []model.Evidence) {
	for _, p := range a.dict.GetRichPhrases {
		if strings.Contains(norm, p) {
			return &model.RiskFlag{
				Label:      "unrealistic salary",
				Severity:   model.SeverityHigh,
				Context:    fmt.Sprintf("earnings claim: %q", p),
				Confidence: 0.9,
			}, nil
		}
	}

	var max float64
	for _, m := range reMoney.FindAllString(norm, -1) {
		v := parseAmount(strings.TrimPrefix(m, "$"))
		if v >= salaryFloor && v > max {
			max = v
		}
	}
	if max == 0 {
		return nil, nil
	}

	switch {
	case max > a.cfg.SalaryUnrealistic:
		return &model.RiskFlag{
			Label:      "unrealistic salary",
			Severity:   model.SeverityHigh,
			Context:    fmt.Sprintf("stated maximum %.0f", max),
			Confidence: 0.85,
		}, nil
	case max > a.cfg.SalaryQuestionable:
		return nil, []model.Evidence{{
			Kind:       model.EvidenceRisk,
			Label:      "questionable salary",
			Context:    fmt.Sprintf("stated maximum %.0f", max),
			Confidence: 0.7,
		}}
	default:
		return nil, []model.Evidence{{
			Kind:       model.EvidencePositive,
			Label:      "realistic salary range",
			Context:    fmt.Sprintf("stated maximum %.0f", max),
			Confidence: 0.8,
		}}
	}
}

func parseAmount(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	mult := 1.0
	if strings.HasSuffix(s, "k") {
		mult = 1000
		s = strings.TrimSuffix(s, "k")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v * mult
}
