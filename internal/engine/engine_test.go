package engine

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nextstep-io/jobtrust/internal/ai"
	"github.com/nextstep-io/jobtrust/internal/cache"
	"github.com/nextstep-io/jobtrust/internal/dictionary"
	"github.com/nextstep-io/jobtrust/internal/model"
)

const legitimatePosting = `Google is hiring a Senior Software Engineer in Mountain View.
You will design and build distributed storage systems serving production traffic.
Requirements include five years of experience with Go or Java and a track record
of shipping reliable services. Compensation is $180,000 - $220,000 plus equity
compensation, health insurance, and 401k match. We are an equal opportunity
employer. Apply through careers.google.com or contact recruiting@google.com.`

const scamPosting = `URGENT!! Make money fast from home, no experience necessary.
Guaranteed income of $5000 weekly. To secure your position you must act fast and
send a $200 processing fee via western union to our hiring manager today.
Limited positions available! Contact quickcash.hiring@gmail.com immediately.`

// countingProvider records how many times Judge was called
type countingProvider struct {
	content string
	err     error
	calls   atomic.Int64
}

func (p *countingProvider) Name() string                       { return "fake" }
func (p *countingProvider) IsAvailable(_ context.Context) bool { return p.err == nil }
func (p *countingProvider) Judge(_ context.Context, _ ai.JudgeRequest) (*ai.JudgeResponse, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	return &ai.JudgeResponse{Content: p.content, Model: "fake-1"}, nil
}

func newTestEngine(provider ai.Provider, c cache.Cache) *Engine {
	cfg := model.DefaultConfig()
	dict := dictionary.Default()
	var adapter *ai.Adapter
	if provider != nil {
		adapter = ai.NewAdapter(provider, dict)
	}
	return New(cfg, dict, adapter, c, nil)
}

func TestEngine_Scan_LegitimatePostingWithoutAI(t *testing.T) {
	e := newTestEngine(nil, nil)

	result, err := e.Scan(context.Background(), model.ScanInput{
		Kind:          model.InputText,
		ExtractedText: legitimatePosting,
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if result.RiskLevel != model.RiskVeryLow {
		t.Errorf("Expected very_low for a verified employer, got %s (score %d)", result.RiskLevel, result.Score)
	}
	if result.Degraded {
		t.Error("Disabled AI is not a degraded scan")
	}
	if result.ScanID == "" {
		t.Error("Expected a scan id")
	}

	positive := 0
	for _, ev := range result.Evidence {
		if ev.Kind == model.EvidencePositive {
			positive++
		}
	}
	if positive == 0 {
		t.Error("Expected positive evidence for salary and benefits")
	}
	if len(result.Recommendations) == 0 {
		t.Error("Expected recommendations")
	}
}

func TestEngine_Scan_ScamPostingForcesVeryHigh(t *testing.T) {
	// A positive AI judgment must not outweigh a critical scam match
	provider := &countingProvider{content: `{"score": 90, "confidence": 95}`}
	e := newTestEngine(provider, nil)

	result, err := e.Scan(context.Background(), model.ScanInput{
		Kind:          model.InputText,
		ExtractedText: scamPosting,
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if result.RiskLevel != model.RiskVeryHigh {
		t.Errorf("Expected very_high for a known scam pattern, got %s (score %d)", result.RiskLevel, result.Score)
	}
	if len(result.RiskFlags) == 0 {
		t.Error("Expected risk flags")
	}
}

func TestEngine_Scan_InsufficientText(t *testing.T) {
	c := cache.NewMemoryCache(5*time.Minute, 100)
	e := newTestEngine(nil, c)

	_, err := e.Scan(context.Background(), model.ScanInput{
		Kind:          model.InputText,
		ExtractedText: "   too short   ",
	})
	if !errors.Is(err, ErrInsufficientText) {
		t.Fatalf("Expected ErrInsufficientText, got %v", err)
	}
	if c.Len() != 0 {
		t.Error("Expected nothing cached for rejected input")
	}
}

func TestEngine_Scan_CacheHitSkipsAI(t *testing.T) {
	provider := &countingProvider{content: `{"score": 75, "confidence": 80}`}
	c := cache.NewMemoryCache(5*time.Minute, 100)
	e := newTestEngine(provider, c)

	first, err := e.Scan(context.Background(), model.ScanInput{
		Kind:          model.InputText,
		ExtractedText: legitimatePosting,
	})
	if err != nil {
		t.Fatalf("First scan failed: %v", err)
	}
	if first.Cached {
		t.Error("First scan must not be marked cached")
	}

	// Same text with different whitespace and casing hits the same entry
	second, err := e.Scan(context.Background(), model.ScanInput{
		Kind:          model.InputText,
		ExtractedText: strings.ToUpper(legitimatePosting) + "  ",
	})
	if err != nil {
		t.Fatalf("Second scan failed: %v", err)
	}

	if !second.Cached {
		t.Error("Expected second scan served from cache")
	}
	if second.Score != first.Score || second.ScanID != first.ScanID {
		t.Errorf("Expected the cached result returned, got %+v vs %+v", second, first)
	}
	if got := provider.calls.Load(); got != 1 {
		t.Errorf("Expected exactly one AI call, got %d", got)
	}
}

func TestEngine_Scan_AIFailureFallsBackToHeuristic(t *testing.T) {
	failing := &countingProvider{err: errors.New("request timed out")}
	e := newTestEngine(failing, nil)

	result, err := e.Scan(context.Background(), model.ScanInput{
		Kind:          model.InputText,
		ExtractedText: legitimatePosting,
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if !result.Degraded {
		t.Error("Expected degraded result on AI failure")
	}

	found := false
	for _, ev := range result.Evidence {
		if ev.Kind == model.EvidenceWarning && ev.Label == "AI analysis unavailable" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected an 'AI analysis unavailable' warning, got %+v", result.Evidence)
	}

	caution := false
	for _, rec := range result.Recommendations {
		if strings.Contains(rec, "unavailable") {
			caution = true
		}
	}
	if !caution {
		t.Error("Expected an explicit caution in recommendations")
	}
}

func TestEngine_Scan_AIFailureLowersConfidence(t *testing.T) {
	working := &countingProvider{content: `{"score": 80, "confidence": 90}`}
	failing := &countingProvider{err: errors.New("request timed out")}

	input := model.ScanInput{Kind: model.InputText, ExtractedText: legitimatePosting}

	dual, err := newTestEngine(working, nil).Scan(context.Background(), input)
	if err != nil {
		t.Fatalf("Dual-path scan failed: %v", err)
	}
	single, err := newTestEngine(failing, nil).Scan(context.Background(), input)
	if err != nil {
		t.Fatalf("Heuristic-only scan failed: %v", err)
	}

	if single.Confidence > dual.Confidence {
		t.Errorf("Expected no confidence gain without AI agreement: dual=%d single=%d",
			dual.Confidence, single.Confidence)
	}
}

func TestEngine_Scan_DegradedResultNotCached(t *testing.T) {
	failing := &countingProvider{err: errors.New("request timed out")}
	c := cache.NewMemoryCache(5*time.Minute, 100)
	e := newTestEngine(failing, c)

	result, err := e.Scan(context.Background(), model.ScanInput{
		Kind:          model.InputText,
		ExtractedText: legitimatePosting,
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !result.Degraded {
		t.Fatal("Expected degraded result")
	}
	if c.Len() != 0 {
		t.Error("Expected degraded result left out of the cache")
	}
}

func TestEngine_Scan_MalformedAIOutput(t *testing.T) {
	garbage := &countingProvider{content: "I cannot assess this posting, sorry."}
	e := newTestEngine(garbage, nil)

	result, err := e.Scan(context.Background(), model.ScanInput{
		Kind:          model.InputText,
		ExtractedText: legitimatePosting,
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !result.Degraded {
		t.Error("Expected degraded result on unparseable AI output")
	}
	if result.Score < 0 || result.Score > 100 {
		t.Errorf("Score out of bounds: %d", result.Score)
	}
}

func TestEngine_Scan_ScoreAndConfidenceBounds(t *testing.T) {
	e := newTestEngine(nil, nil)

	for _, text := range []string{legitimatePosting, scamPosting} {
		result, err := e.Scan(context.Background(), model.ScanInput{
			Kind:          model.InputText,
			ExtractedText: text,
		})
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if result.Score < 0 || result.Score > 100 {
			t.Errorf("Score out of [0,100]: %d", result.Score)
		}
		if result.Confidence < 30 || result.Confidence > 95 {
			t.Errorf("Confidence out of [30,95]: %d", result.Confidence)
		}
	}
}

func TestEngine_Scan_AIKnowledgeMergedIntoInsights(t *testing.T) {
	provider := &countingProvider{content: `{
		"score": 85, "confidence": 90,
		"companies": ["Google"],
		"recommendations": ["apply via the official careers page"]
	}`}
	e := newTestEngine(provider, nil)

	result, err := e.Scan(context.Background(), model.ScanInput{
		Kind:          model.InputText,
		ExtractedText: legitimatePosting,
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.KnowledgeInsights) == 0 {
		t.Error("Expected knowledge insights for a recognized employer")
	}
}
