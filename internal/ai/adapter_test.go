package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/nextstep-io/jobtrust/internal/dictionary"
	"github.com/nextstep-io/jobtrust/internal/model"
)

// fakeProvider returns canned content or a canned error
type fakeProvider struct {
	content string
	err     error
}

func (f *fakeProvider) Name() string                        { return "fake" }
func (f *fakeProvider) IsAvailable(_ context.Context) bool  { return f.err == nil }
func (f *fakeProvider) Judge(_ context.Context, _ JudgeRequest) (*JudgeResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &JudgeResponse{Content: f.content, Model: "fake-1"}, nil
}

func newTestAdapter(content string, err error) *Adapter {
	return NewAdapter(&fakeProvider{content: content, err: err}, dictionary.Default())
}

func TestAdapter_Analyze_WellFormedVerdict(t *testing.T) {
	adapter := newTestAdapter(`{
		"score": 82,
		"confidence": 90,
		"red_flags": [{"label": "vague responsibilities", "severity": "medium", "detail": "duties not described"}],
		"green_flags": [{"label": "named employer", "detail": "posting names Google"}],
		"companies": ["Google LLC"],
		"scam_indicators": [],
		"recommendations": ["verify the posting on the company site"]
	}`, nil)

	sub, err := adapter.Analyze(context.Background(), "some posting")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if sub.Source != model.SourceAI {
		t.Errorf("Expected AI source, got %s", sub.Source)
	}
	if sub.Value != 82 {
		t.Errorf("Expected score 82, got %f", sub.Value)
	}
	if sub.Confidence != 90 {
		t.Errorf("Expected confidence 90, got %f", sub.Confidence)
	}
	if len(sub.RiskFlags) != 1 || sub.RiskFlags[0].Severity != model.SeverityMedium {
		t.Errorf("Expected one medium flag, got %+v", sub.RiskFlags)
	}
	if len(sub.Evidence) != 1 || sub.Evidence[0].Kind != model.EvidencePositive {
		t.Errorf("Expected one positive evidence item, got %+v", sub.Evidence)
	}

	if sub.Knowledge == nil {
		t.Fatal("Expected knowledge context from company mention")
	}
	if _, ok := sub.Knowledge.VerifiedCompany(0.9); !ok {
		t.Error("Expected 'Google LLC' resolved to the Google knowledge entry")
	}
}

func TestAdapter_Analyze_FencedJSON(t *testing.T) {
	adapter := newTestAdapter("Here is my assessment:\n```json\n{\"score\": 40, \"confidence\": 70}\n```\nLet me know if you need more.", nil)

	sub, err := adapter.Analyze(context.Background(), "posting")
	if err != nil {
		t.Fatalf("Expected fenced JSON to parse, got %v", err)
	}
	if sub.Value != 40 {
		t.Errorf("Expected score 40, got %f", sub.Value)
	}
}

func TestAdapter_Analyze_MissingScore(t *testing.T) {
	adapter := newTestAdapter(`{"confidence": 80, "red_flags": []}`, nil)

	_, err := adapter.Analyze(context.Background(), "posting")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %v", err)
	}
}

func TestAdapter_Analyze_GarbageOutput(t *testing.T) {
	for _, content := range []string{
		"I cannot evaluate this posting.",
		"{not json at all}",
		"",
	} {
		adapter := newTestAdapter(content, nil)
		_, err := adapter.Analyze(context.Background(), "posting")
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Expected ParseError for %q, got %v", content, err)
		}
	}
}

func TestAdapter_Analyze_ProviderError(t *testing.T) {
	adapter := newTestAdapter("", errors.New("connection refused"))

	_, err := adapter.Analyze(context.Background(), "posting")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable, got %v", err)
	}
}

func TestAdapter_Analyze_Disabled(t *testing.T) {
	adapter := NewAdapter(nil, dictionary.Default())

	if adapter.Enabled() {
		t.Error("Expected adapter with nil provider to be disabled")
	}
	_, err := adapter.Analyze(context.Background(), "posting")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable, got %v", err)
	}
}

func TestAdapter_Analyze_ClampsOutOfRangeValues(t *testing.T) {
	adapter := newTestAdapter(`{"score": 250, "confidence": -5}`, nil)

	sub, err := adapter.Analyze(context.Background(), "posting")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sub.Value != 100 {
		t.Errorf("Expected score clamped to 100, got %f", sub.Value)
	}
	if sub.Confidence != 0 {
		t.Errorf("Expected confidence clamped to 0, got %f", sub.Confidence)
	}
}

func TestAdapter_Analyze_DefaultsConfidenceWhenAbsent(t *testing.T) {
	adapter := newTestAdapter(`{"score": 60}`, nil)

	sub, err := adapter.Analyze(context.Background(), "posting")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sub.Confidence != 50 {
		t.Errorf("Expected default confidence 50, got %f", sub.Confidence)
	}
}

func TestAdapter_Analyze_ResolvesScamIndicators(t *testing.T) {
	adapter := newTestAdapter(`{
		"score": 10,
		"confidence": 95,
		"scam_indicators": ["requests a western union transfer before starting"]
	}`, nil)

	sub, err := adapter.Analyze(context.Background(), "posting")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sub.Knowledge == nil {
		t.Fatal("Expected knowledge context")
	}
	if _, ok := sub.Knowledge.CriticalScam(-30); !ok {
		t.Error("Expected indicator resolved to the advance_fee pattern")
	}
}

func TestAdapter_Analyze_LookalikeCompanyDoesNotResolve(t *testing.T) {
	adapter := newTestAdapter(`{
		"score": 20,
		"confidence": 90,
		"companies": ["Amazonia Staffing Partners"]
	}`, nil)

	sub, err := adapter.Analyze(context.Background(), "posting")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c, ok := sub.Knowledge.VerifiedCompany(0.9); ok {
		t.Errorf("Expected no verified company for a lookalike name, got %s", c.Name)
	}

	// The real name on a word boundary still resolves
	adapter = newTestAdapter(`{
		"score": 85,
		"confidence": 90,
		"companies": ["Amazon Web Services"]
	}`, nil)

	sub, err = adapter.Analyze(context.Background(), "posting")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := sub.Knowledge.VerifiedCompany(0.9); !ok {
		t.Error("Expected amazon resolved from its full corporate name")
	}
}

func TestAdapter_Analyze_ScamIndicatorNeedsBoundaryMatch(t *testing.T) {
	adapter := newTestAdapter(`{
		"score": 60,
		"confidence": 80,
		"scam_indicators": ["mentions processing feedback from applicants"]
	}`, nil)

	sub, err := adapter.Analyze(context.Background(), "posting")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := sub.Knowledge.CriticalScam(-30); ok {
		t.Error("Expected 'processing feedback' not to resolve to the fee pattern")
	}
}

func TestParseSeverity_DefaultsToMedium(t *testing.T) {
	if got := parseSeverity("catastrophic"); got != model.SeverityMedium {
		t.Errorf("Expected unknown severity to default to medium, got %s", got)
	}
	if got := parseSeverity("CRITICAL"); got != model.SeverityCritical {
		t.Errorf("Expected case-insensitive parse, got %s", got)
	}
}
