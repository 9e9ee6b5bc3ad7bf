package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nextstep-io/jobtrust/internal/model"
)

// RenderJSON writes the result as indented JSON
func RenderJSON(w io.Writer, result *model.ScanResult) error {
	return RenderJSONValue(w, result)
}

// RenderJSONValue writes any value as indented JSON. Used for batch
// output where results are wrapped with their sources.
func RenderJSONValue(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderMarkdown writes a human-readable report
func RenderMarkdown(w io.Writer, result *model.ScanResult, opts model.OutputConfig) error {
	var b strings.Builder

	b.WriteString("# Job Posting Authenticity Report\n\n")
	fmt.Fprintf(&b, "**Score:** %d/100  \n", result.Score)
	fmt.Fprintf(&b, "**Risk level:** %s  \n", result.RiskLevel.Label())
	fmt.Fprintf(&b, "**Confidence:** %d%%  \n", result.Confidence)
	if result.Cached {
		b.WriteString("**Served from cache**  \n")
	}
	if result.Degraded {
		b.WriteString("**Partial analysis** (see recommendations)  \n")
	}
	b.WriteString("\n")

	if result.Message != "" {
		fmt.Fprintf(&b, "> %s\n\n", result.Message)
	}

	if len(result.RiskFlags) > 0 {
		b.WriteString("## Risk flags\n\n")
		for _, f := range result.RiskFlags {
			fmt.Fprintf(&b, "- **[%s]** %s", f.Severity, f.Label)
			if opts.Verbose && f.Context != "" {
				fmt.Fprintf(&b, " - `%s`", f.Context)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(result.Evidence) > 0 {
		b.WriteString("## Evidence\n\n")
		for _, e := range result.Evidence {
			fmt.Fprintf(&b, "- (%s) %s", e.Kind, e.Label)
			if opts.Verbose && e.Context != "" {
				fmt.Fprintf(&b, " - `%s`", e.Context)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(result.KnowledgeInsights) > 0 {
		b.WriteString("## Knowledge base\n\n")
		for _, insight := range result.KnowledgeInsights {
			fmt.Fprintf(&b, "- %s\n", insight)
		}
		b.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	if len(result.StrategyTips) > 0 {
		b.WriteString("## Strategy tips\n\n")
		for _, tip := range result.StrategyTips {
			fmt.Fprintf(&b, "- %s\n", tip)
		}
		b.WriteString("\n")
	}

	if opts.IncludeFooter {
		fmt.Fprintf(&b, "---\n_Scan %s at %s. Automated assessment; verify independently before acting._\n",
			result.ScanID, result.Timestamp.Format("2006-01-02 15:04:05 MST"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
