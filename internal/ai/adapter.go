package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nextstep-io/jobtrust/internal/dictionary"
	"github.com/nextstep-io/jobtrust/internal/match"
	"github.com/nextstep-io/jobtrust/internal/model"
)

// ErrUnavailable reports that the external AI call errored or timed out.
// The engine recovers from it with a heuristic-only scan.
var ErrUnavailable = errors.New("AI analysis unavailable")

// ParseError reports AI output that could not be interpreted as a
// verdict. Treated the same as ErrUnavailable by the engine, but kept
// distinct for logging.
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparsable AI output: %s", e.Reason)
}

// verdict is the JSON shape requested from the model. Every field is
// optional at parse time except the score; models do not reliably honor
// schemas and the adapter must not propagate their mistakes.
type verdict struct {
	Score           *float64      `json:"score"`
	Confidence      *float64      `json:"confidence"`
	RedFlags        []verdictFlag `json:"red_flags"`
	GreenFlags      []verdictFlag `json:"green_flags"`
	Companies       []string      `json:"companies"`
	ScamIndicators  []string      `json:"scam_indicators"`
	Recommendations []string      `json:"recommendations"`
}

type verdictFlag struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
	Detail   string `json:"detail"`
}

// Adapter turns provider output into the shared SubScore shape.
// Downstream code never needs to know a SubScore came from here rather
// than the heuristic analyzer.
type Adapter struct {
	provider Provider
	dict     *dictionary.Dictionary
}

// NewAdapter creates an adapter over a provider. A nil provider means
// AI analysis is disabled; Analyze then always reports ErrUnavailable.
func NewAdapter(provider Provider, dict *dictionary.Dictionary) *Adapter {
	return &Adapter{provider: provider, dict: dict}
}

// Enabled reports whether a provider is configured
func (a *Adapter) Enabled() bool {
	return a != nil && a.provider != nil
}

// Analyze asks the external scorer for a judgment on the posting text
// and normalizes it. Any transport or parse failure surfaces as
// ErrUnavailable or *ParseError, never as a raw provider error shape.
func (a *Adapter) Analyze(ctx context.Context, text string) (model.SubScore, error) {
	if !a.Enabled() {
		return model.SubScore{}, ErrUnavailable
	}

	resp, err := a.provider.Judge(ctx, JudgeRequest{Prompt: BuildPrompt(text)})
	if err != nil {
		return model.SubScore{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	v, err := parseVerdict(resp.Content)
	if err != nil {
		return model.SubScore{}, err
	}

	return a.normalize(v), nil
}

// parseVerdict extracts the JSON object from the model output. Models
// wrap JSON in fences and prose often enough that we slice from the
// first '{' to the last '}' before unmarshalling.
func parseVerdict(content string) (*verdict, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, &ParseError{Reason: "no JSON object in output", Raw: content}
	}

	var v verdict
	if err := json.Unmarshal([]byte(content[start:end+1]), &v); err != nil {
		return nil, &ParseError{Reason: err.Error(), Raw: content}
	}

	if v.Score == nil {
		return nil, &ParseError{Reason: "verdict has no score", Raw: content}
	}

	return &v, nil
}

// normalize maps a verdict onto the shared SubScore shape, resolving
// company and scam mentions against the knowledge base.
func (a *Adapter) normalize(v *verdict) model.SubScore {
	sub := model.SubScore{
		Source: model.SourceAI,
		Value:  clamp(*v.Score, 0, 100),
	}

	if v.Confidence != nil {
		sub.Confidence = clamp(*v.Confidence, 0, 100)
	} else {
		sub.Confidence = 50 // A score with no stated confidence is a guess
	}

	flagConfidence := sub.Confidence / 100
	for _, f := range v.RedFlags {
		if f.Label == "" {
			continue
		}
		sub.RiskFlags = append(sub.RiskFlags, model.RiskFlag{
			Label:      f.Label,
			Severity:   parseSeverity(f.Severity),
			Context:    f.Detail,
			Confidence: flagConfidence,
		})
	}

	for _, f := range v.GreenFlags {
		if f.Label == "" {
			continue
		}
		sub.Evidence = append(sub.Evidence, model.Evidence{
			Kind:       model.EvidencePositive,
			Label:      f.Label,
			Context:    f.Detail,
			Confidence: flagConfidence,
		})
	}

	sub.Knowledge = a.resolveKnowledge(v)

	return sub
}

// resolveKnowledge maps free-form company and scam mentions onto
// knowledge-base entries. Mentions with no entry stay as evidence so
// nothing the model said is silently dropped.
func (a *Adapter) resolveKnowledge(v *verdict) *model.KnowledgeContext {
	k := &model.KnowledgeContext{}

	for _, name := range v.Companies {
		lower := strings.ToLower(strings.TrimSpace(name))
		if lower == "" {
			continue
		}
		if c, ok := a.lookupCompany(lower); ok {
			k.Companies = append(k.Companies, c)
		}
	}

	for _, indicator := range v.ScamIndicators {
		lower := strings.ToLower(strings.TrimSpace(indicator))
		if lower == "" {
			continue
		}
		if p, ok := a.lookupScamPattern(lower); ok {
			k.ScamPatterns = append(k.ScamPatterns, p)
		}
	}

	if k.Empty() {
		return nil
	}
	return k
}

// lookupCompany matches a mention on word boundaries only. "amazon web
// services" resolves to amazon; "amazonia staffing partners" must not,
// or a lookalike employer would inherit the verified-company floor.
func (a *Adapter) lookupCompany(mention string) (model.Company, bool) {
	for _, c := range a.dict.Companies {
		if match.ContainsWord(mention, c.Name) {
			return c, true
		}
		for _, alias := range c.Aliases {
			if match.ContainsWord(mention, alias) {
				return c, true
			}
		}
	}
	return model.Company{}, false
}

func (a *Adapter) lookupScamPattern(mention string) (model.ScamPattern, bool) {
	for _, p := range a.dict.ScamPatterns {
		if match.ContainsWord(mention, strings.ReplaceAll(p.Name, "_", " ")) || mention == p.Name {
			return p, true
		}
		for _, phrase := range p.Phrases {
			if match.ContainsWord(mention, phrase) {
				return p, true
			}
		}
	}
	return model.ScamPattern{}, false
}

func parseSeverity(s string) model.Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return model.SeverityCritical
	case "high":
		return model.SeverityHigh
	case "low":
		return model.SeverityLow
	default:
		return model.SeverityMedium
	}
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
