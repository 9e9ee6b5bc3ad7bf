// Package engine orchestrates a scan: input validation, cache lookup,
// concurrent AI and heuristic analysis, score blending, and result
// assembly. The engine always returns a result for valid input; branch
// failures degrade the result instead of failing the scan.
package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/nextstep-io/jobtrust/internal/ai"
	"github.com/nextstep-io/jobtrust/internal/cache"
	"github.com/nextstep-io/jobtrust/internal/dictionary"
	"github.com/nextstep-io/jobtrust/internal/heuristic"
	"github.com/nextstep-io/jobtrust/internal/model"
	"github.com/nextstep-io/jobtrust/internal/score"
)

// Engine runs authenticity scans. Safe for concurrent use: the cache
// is the only shared mutable state.
type Engine struct {
	cfg         *model.Config
	log         hclog.Logger
	ai          *ai.Adapter
	heuristic   *heuristic.Analyzer
	combiner    *score.Combiner
	classifier  *score.Classifier
	recommender *score.Recommender
	cache       cache.Cache
}

// New creates an engine. A nil cache disables caching; a nil logger
// gets a noop logger.
func New(cfg *model.Config, dict *dictionary.Dictionary, adapter *ai.Adapter, c cache.Cache, log hclog.Logger) *Engine {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Engine{
		cfg:         cfg,
		log:         log,
		ai:          adapter,
		heuristic:   heuristic.New(dict, cfg),
		combiner:    score.NewCombiner(cfg.Scoring),
		classifier:  score.NewClassifier(cfg.Scoring),
		recommender: score.NewRecommender(cfg.Scoring),
		cache:       c,
	}
}

// Scan analyzes one posting and returns its authenticity assessment.
// For valid input it always returns a result: AI failures fall back to
// heuristic-only scoring, heuristic failures fall back to a neutral
// sub-score, and anything unexpected beyond that degrades to an error
// result instead of propagating.
func (e *Engine) Scan(ctx context.Context, input model.ScanInput) (result *model.ScanResult, err error) {
	text := strings.TrimSpace(input.ExtractedText)
	if len(text) < e.cfg.Heuristics.MinTextLength {
		return nil, fmt.Errorf("%w: got %d characters, need at least %d",
			ErrInsufficientText, len(text), e.cfg.Heuristics.MinTextLength)
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("scan failed unexpectedly", "panic", r)
			result, err = e.errorResult(fmt.Sprintf("analysis failed unexpectedly: %v", r)), nil
		}
	}()

	key := cache.Fingerprint(text)
	if e.cache != nil {
		if cached, found := e.cache.Get(key); found {
			e.log.Debug("cache hit", "key", key)
			cached.Cached = true
			return &cached, nil
		}
	}

	aiSub, heuristicSub, warnings, degraded := e.analyze(ctx, text)

	blend := e.combiner.Combine(aiSub, heuristicSub)
	level := e.classifier.Classify(blend)
	recommendations, tips := e.recommender.Build(level, blend, degraded)

	evidence := heuristicSub.Evidence
	flags := heuristicSub.RiskFlags
	if aiSub != nil {
		evidence = append(evidence, aiSub.Evidence...)
		flags = append(flags, aiSub.RiskFlags...)
	}
	evidence = append(evidence, warnings...)

	result = &model.ScanResult{
		ScanID:            uuid.NewString(),
		Score:             blend.Score,
		RiskLevel:         level,
		Confidence:        blend.Confidence,
		Evidence:          evidence,
		RiskFlags:         flags,
		Recommendations:   recommendations,
		StrategyTips:      tips,
		KnowledgeInsights: e.recommender.Insights(blend),
		Degraded:          degraded,
		Timestamp:         time.Now().UTC(),
	}

	// Degraded results are not cached so a later scan of the same text
	// can retry the failed branch.
	if e.cache != nil && !degraded {
		if err := e.cache.Set(key, *result, e.cfg.Cache.TTL); err != nil {
			e.log.Warn("cache write failed", "error", err)
		}
	}

	e.log.Debug("scan complete",
		"scan_id", result.ScanID, "score", result.Score,
		"risk_level", result.RiskLevel, "degraded", degraded)
	return result, nil
}

// analyze runs both analyzer branches concurrently and waits for both.
// The heuristic side is always present in the return: its failure is
// replaced with a neutral basic fallback sub-score. The AI side is nil
// when the adapter is disabled or its branch failed.
func (e *Engine) analyze(ctx context.Context, text string) (aiSub *model.SubScore, heuristicSub model.SubScore, warnings []model.Evidence, degraded bool) {
	var (
		wg    sync.WaitGroup
		aiRes model.SubScore
		aiErr error
		hErr  error
	)

	aiEnabled := e.ai != nil && e.ai.Enabled()
	if aiEnabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			aiRes, aiErr = e.ai.Analyze(ctx, text)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		heuristicSub, hErr = e.heuristic.Analyze(text)
	}()

	wg.Wait()

	if aiEnabled {
		if aiErr != nil {
			e.log.Warn("AI analysis failed, continuing heuristic-only", "error", aiErr)
			warnings = append(warnings, model.Evidence{
				Kind:  model.EvidenceWarning,
				Label: "AI analysis unavailable",
			})
			degraded = true
		} else {
			aiSub = &aiRes
		}
	}

	if hErr != nil {
		e.log.Warn("heuristic analysis failed, using basic fallback", "error", hErr)
		// Basic fallback: neutral value so the blend rests on whatever
		// the AI branch produced.
		heuristicSub = model.SubScore{
			Source:     model.SourceHeuristic,
			Value:      50,
			Confidence: 40,
		}
		warnings = append(warnings, model.Evidence{
			Kind:  model.EvidenceWarning,
			Label: "heuristic analysis unavailable",
		})
		degraded = true
	}

	return aiSub, heuristicSub, warnings, degraded
}

// errorResult is the caller-facing shape of a total failure. The
// contract for a valid input is a result, never a raised error.
func (e *Engine) errorResult(message string) *model.ScanResult {
	return &model.ScanResult{
		ScanID:    uuid.NewString(),
		Score:     0,
		RiskLevel: model.RiskVeryHigh,
		Recommendations: []string{
			"Analysis could not be completed. Treat this posting as unverified and do not share personal information.",
		},
		Degraded:  true,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}
