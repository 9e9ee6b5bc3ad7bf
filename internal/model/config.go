package model

import "time"

// Config is the complete engine configuration.
//
// Hierarchy (highest to lowest priority): CLI flags, JOBTRUST_* env vars,
// config file (~/.jobtrust/config.yaml), defaults.
type Config struct {
	Matcher     MatcherConfig     `yaml:"matcher"`
	Heuristics  HeuristicConfig   `yaml:"heuristics"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Cache       CacheConfig       `yaml:"cache"`
	AI          AIConfig          `yaml:"ai"`
	HTTP        HTTPConfig        `yaml:"http"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`

	// DictionaryOverlay is an optional YAML file merged over the
	// built-in signal dictionary and knowledge base.
	DictionaryOverlay string `yaml:"dictionary_overlay"`
}

// MatcherConfig tunes the fuzzy signal matcher
type MatcherConfig struct {
	// Threshold is the minimum matched-word ratio for a window to
	// qualify as a match. Empirically chosen; do not re-tune casually.
	Threshold float64 `yaml:"threshold"`

	// ContextWords is the number of words kept on each side of a match
	// for evidence text.
	ContextWords int `yaml:"context_words"`
}

// HeuristicConfig tunes the secondary structural heuristics
type HeuristicConfig struct {
	MinTextLength        int     `yaml:"min_text_length"`
	GrammarFlagBelow     float64 `yaml:"grammar_flag_below"`
	UrgencyFlagAbove     float64 `yaml:"urgency_flag_above"`
	VaguenessFlagAbove   float64 `yaml:"vagueness_flag_above"`
	ProfessionalRatio    float64 `yaml:"professional_ratio"`    // >= is "professional"
	MixedRatio           float64 `yaml:"mixed_ratio"`           // >= is "mixed"
	SalaryUnrealistic    float64 `yaml:"salary_unrealistic"`    // Max salary above this is unrealistic
	SalaryQuestionable   float64 `yaml:"salary_questionable"`   // Max salary above this is questionable
}

// ScoringConfig holds the blend weights, per-severity deltas, the
// diminishing-returns dampener, and the override thresholds.
// The dampener constants are preserved from observed behavior: marginal
// reduction = min(DampenerMax, DampenerStep * excess) beyond
// DampenerAfter items of the same class.
type ScoringConfig struct {
	AIWeight        float64 `yaml:"ai_weight"`
	HeuristicWeight float64 `yaml:"heuristic_weight"`

	HighPenalty   int `yaml:"high_penalty"`
	MediumPenalty int `yaml:"medium_penalty"`
	LowPenalty    int `yaml:"low_penalty"`
	PositiveBonus int `yaml:"positive_bonus"`
	RiskPenalty   int `yaml:"risk_penalty"`

	DampenerAfter int     `yaml:"dampener_after"`
	DampenerStep  float64 `yaml:"dampener_step"`
	DampenerMax   float64 `yaml:"dampener_max"`

	// VerifiedCredibility floors the risk level at Very Low when a
	// matched company is a tech giant or at least this credible.
	VerifiedCredibility float64 `yaml:"verified_credibility"`

	// CriticalScamPenalty forces Very High when a matched scam pattern
	// carries a penalty at or below this value.
	CriticalScamPenalty int `yaml:"critical_scam_penalty"`

	// LowConfidenceBand adjusts banding for uncertain scores: below
	// this confidence the score is pulled down before banding.
	LowConfidenceBand int `yaml:"low_confidence_band"`
}

// CacheConfig tunes the scan cache
type CacheConfig struct {
	Enabled    bool          `yaml:"enabled"`
	TTL        time.Duration `yaml:"ttl"`
	MaxEntries int           `yaml:"max_entries"`
}

// AIConfig configures the external AI scorer
type AIConfig struct {
	// Provider name: "openai", "anthropic", "ollama", "" (disabled)
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`

	// Timeout bounds the external call; on expiry the AI branch is
	// treated as failed, never retried by the engine.
	Timeout   int `yaml:"timeout"` // seconds
	MaxTokens int `yaml:"max_tokens"`

	HTTPProxy  string `yaml:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy"`
	NoProxy    string `yaml:"no_proxy"`
}

// HTTPConfig configures URL ingestion
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots"`
}

// ConcurrencyConfig tunes batch scanning
type ConcurrencyConfig struct {
	BatchWorkers      int     `yaml:"batch_workers"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Matcher: MatcherConfig{
			Threshold:    0.7,
			ContextWords: 10,
		},
		Heuristics: HeuristicConfig{
			MinTextLength:      15,
			GrammarFlagBelow:   0.6,
			UrgencyFlagAbove:   0.7,
			VaguenessFlagAbove: 0.6,
			ProfessionalRatio:  0.8,
			MixedRatio:         0.5,
			SalaryUnrealistic:  500000,
			SalaryQuestionable: 300000,
		},
		Scoring: ScoringConfig{
			AIWeight:            0.6,
			HeuristicWeight:     0.4,
			HighPenalty:         15,
			MediumPenalty:       8,
			LowPenalty:          3,
			PositiveBonus:       8,
			RiskPenalty:         6,
			DampenerAfter:       3,
			DampenerStep:        0.1,
			DampenerMax:         0.7,
			VerifiedCredibility: 0.9,
			CriticalScamPenalty: -30,
			LowConfidenceBand:   80,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 100,
		},
		AI: AIConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 1000,
		},
		HTTP: HTTPConfig{
			Timeout:       60 * time.Second,
			UserAgent:     "JobTrust/0.1 (+https://github.com/nextstep-io/jobtrust)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers:      4,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
