// Package ai is the adapter boundary to the external AI scorer. It
// holds no scoring logic: providers move bytes, the adapter translates
// the model's verdict into the shared SubScore shape.
package ai

import "context"

// Provider defines the interface for AI scorer backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Judge sends the prompt to the model and returns its raw output
	Judge(ctx context.Context, req JudgeRequest) (*JudgeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// JudgeRequest contains the input for one AI judgment
type JudgeRequest struct {
	// Prompt is the full prompt including the posting text and the
	// required output schema
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// JudgeResponse contains the model's raw output
type JudgeResponse struct {
	// Content is the raw model output, expected to contain a JSON
	// verdict but never trusted to
	Content string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds AI provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 1000,
	}
}

const systemPrompt = "You are an assistant that evaluates job postings for authenticity. You respond with a single JSON object and nothing else."

// BuildPrompt constructs the fixed prompt contract: the posting text
// plus the required output schema. The schema is the adapter's side of
// the bargain; parseVerdict is deliberately forgiving about the rest.
func BuildPrompt(text string) string {
	return `Evaluate the following job posting for authenticity. Consider whether the
employer is identifiable, whether compensation and requirements are plausible,
whether the hiring process described is normal, and whether any known scam
mechanics appear (upfront fees, check overpayment, reshipping, identity
harvesting).

Respond with ONLY a JSON object in exactly this shape:
{
  "score": <0-100, 100 = certainly genuine>,
  "confidence": <0-100, how sure you are of the score>,
  "red_flags": [{"label": "...", "severity": "critical|high|medium|low", "detail": "..."}],
  "green_flags": [{"label": "...", "detail": "..."}],
  "companies": ["employer names mentioned"],
  "scam_indicators": ["known scam mechanics present, if any"],
  "recommendations": ["short advice items for the applicant"]
}

Job posting:
---
` + text + `
---`
}
