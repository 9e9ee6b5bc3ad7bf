package model

import "time"

// InputKind identifies how the posting text was obtained
type InputKind string

const (
	InputText InputKind = "text"
	InputURL  InputKind = "url"
	InputFile InputKind = "file"
)

// ScanInput is supplied by the ingestion collaborator. Immutable once
// created; the engine only reads ExtractedText.
type ScanInput struct {
	Kind          InputKind `json:"kind"`
	RawPayload    string    `json:"raw_payload,omitempty"` // URL or path for provenance
	ExtractedText string    `json:"extracted_text"`
}

// SubScoreSource identifies which analyzer produced a sub-score
type SubScoreSource string

const (
	SourceAI        SubScoreSource = "ai"
	SourceHeuristic SubScoreSource = "heuristic"
)

// SubScore is the common shape produced independently by the AI adapter
// and the heuristic analyzer. Downstream code never needs to know which
// analyzer produced it beyond the Source tag.
type SubScore struct {
	Source     SubScoreSource    `json:"source"`
	Value      float64           `json:"value"`      // [0,100]
	Confidence float64           `json:"confidence"` // [0,100]
	Evidence   []Evidence        `json:"evidence,omitempty"`
	RiskFlags  []RiskFlag        `json:"risk_flags,omitempty"`
	Knowledge  *KnowledgeContext `json:"knowledge,omitempty"`
}

// RiskLevel is the discrete band derived from the final score
type RiskLevel string

const (
	RiskVeryLow  RiskLevel = "very_low"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

// Label returns the human-readable form of the risk level
func (r RiskLevel) Label() string {
	switch r {
	case RiskVeryLow:
		return "Very Low"
	case RiskLow:
		return "Low"
	case RiskMedium:
		return "Medium"
	case RiskHigh:
		return "High"
	case RiskVeryHigh:
		return "Very High"
	default:
		return string(r)
	}
}

// ScanResult is the caller-facing result of one scan. Created once,
// never mutated, cached by content fingerprint.
type ScanResult struct {
	ScanID          string     `json:"scan_id"`
	Score           int        `json:"authenticity_score"` // [0,100]
	RiskLevel       RiskLevel  `json:"risk_level"`
	Confidence      int        `json:"confidence"` // [30,95] when the heuristic path succeeded
	Evidence        []Evidence `json:"evidence"`
	RiskFlags       []RiskFlag `json:"risk_flags,omitempty"`
	Recommendations []string   `json:"recommendations"`
	StrategyTips    []string   `json:"strategy_tips,omitempty"`

	// KnowledgeInsights summarize knowledge-base matches for display
	KnowledgeInsights []string `json:"knowledge_insights,omitempty"`

	// Degraded is set when any fallback path was used; Message carries a
	// human-readable explanation on total failure.
	Degraded bool   `json:"degraded,omitempty"`
	Message  string `json:"message,omitempty"`

	// Cached is set on results served from the scan cache
	Cached bool `json:"cached,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}
