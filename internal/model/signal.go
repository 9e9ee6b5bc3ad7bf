package model

// SignalTier groups dictionary signals by severity
type SignalTier string

const (
	TierCritical SignalTier = "critical" // Canonical scam phrasing
	TierHigh     SignalTier = "high"     // Strong risk indicators
	TierMedium   SignalTier = "medium"   // Moderate risk indicators
	TierLow      SignalTier = "low"      // Weak risk indicators
	TierPositive SignalTier = "positive" // Legitimacy indicators
)

// IsRisk reports whether the tier counts against authenticity
func (t SignalTier) IsRisk() bool {
	return t != TierPositive
}

// Severity converts a risk tier to the corresponding flag severity
func (t SignalTier) Severity() Severity {
	switch t {
	case TierCritical:
		return SeverityCritical
	case TierHigh:
		return SeverityHigh
	case TierMedium:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// SignalCategory classifies what aspect of a posting a signal speaks to
type SignalCategory string

const (
	CategoryPayment      SignalCategory = "payment"      // Upfront fees, money transfers
	CategoryIdentity     SignalCategory = "identity"     // Requests for personal/financial data
	CategoryUrgency      SignalCategory = "urgency"      // Pressure to act immediately
	CategoryVagueness    SignalCategory = "vagueness"    // No concrete role or requirements
	CategoryCompensation SignalCategory = "compensation" // Pay claims
	CategoryContact      SignalCategory = "contact"      // Contact channel quality
	CategoryBenefits     SignalCategory = "benefits"     // Professional benefit language
	CategoryProcess      SignalCategory = "process"      // Hiring process descriptions
)

// Signal is one entry of the signal dictionary. Immutable after load.
type Signal struct {
	Pattern  string         `json:"pattern"`
	Tier     SignalTier     `json:"tier"`
	Category SignalCategory `json:"category"`
	// Impact is the base penalty (negative) or bonus (positive) the
	// signal contributes before dampening.
	Impact int `json:"impact"`
}

// SignalMatch is one qualifying match of a dictionary signal in a posting
type SignalMatch struct {
	Signal     Signal  `json:"signal"`
	Span       string  `json:"span"`       // The matched text window
	Confidence float64 `json:"confidence"` // Matched-word ratio, [0,1]
	Context    string  `json:"context"`    // Surrounding words for evidence text
}

// Severity indicates the importance of a risk flag
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// RiskFlag is a named risk raised by either analyzer. Flags from the AI
// and heuristic paths are kept side by side, not deduplicated: the two
// sources corroborating the same problem is itself information.
type RiskFlag struct {
	Label      string   `json:"label"`
	Severity   Severity `json:"severity"`
	Context    string   `json:"context,omitempty"`
	Confidence float64  `json:"confidence"`
}

// EvidenceKind classifies an evidence item
type EvidenceKind string

const (
	EvidencePositive EvidenceKind = "positive"
	EvidenceRisk     EvidenceKind = "risk"
	EvidenceWarning  EvidenceKind = "warning"
)

// Evidence is a human-readable supporting observation
type Evidence struct {
	Kind       EvidenceKind `json:"kind"`
	Label      string       `json:"label"`
	Context    string       `json:"context,omitempty"`
	Confidence float64      `json:"confidence"`
}
