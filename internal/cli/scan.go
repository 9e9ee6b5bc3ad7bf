package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nextstep-io/jobtrust/internal/engine"
)

var (
	asJSON      bool
	scanTimeout time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	noRobots    bool
	aiProvider  string
	aiModel     string
	overlayPath string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <text|file|url|->",
	Short: "Score a single job posting for authenticity risk",
	Long: `Scan analyzes one job posting and reports:
- An authenticity score from 0 (almost certainly fraudulent) to 100
- A discrete risk level with the evidence behind it
- Recommendations matched to the risk level

The argument may be the posting text itself, a path to a text or HTML
file, a URL to fetch, or "-" to read from stdin.

Example:
  jobtrust scan posting.txt
  jobtrust scan https://jobs.example.com/posting/123
  pbpaste | jobtrust scan -
  jobtrust scan posting.txt --ai openai --ai-model gpt-4o-mini --json`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&asJSON, "json", false, "emit the result as JSON instead of a report")
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 2*time.Minute, "overall scan timeout")
	scanCmd.Flags().StringVar(&userAgent, "ua", "JobTrust/0.1 (+https://github.com/nextstep-io/jobtrust)", "HTTP User-Agent for URL inputs")
	scanCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read from URL inputs")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the scan cache")
	scanCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable the report footer")
	scanCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks for URL inputs")
	scanCmd.Flags().StringVar(&aiProvider, "ai", "", "AI provider for the judgment branch (openai, anthropic, ollama)")
	scanCmd.Flags().StringVar(&aiModel, "ai-model", "", "AI model name")
	scanCmd.Flags().StringVar(&overlayPath, "dictionary", "", "YAML overlay merged over the built-in signal dictionary")
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.RespectRobots = !noRobots
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	if aiProvider != "" {
		cfg.AI.Provider = aiProvider
	}
	if aiModel != "" {
		cfg.AI.Model = aiModel
	}
	if overlayPath != "" {
		cfg.DictionaryOverlay = overlayPath
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	input, err := a.loader.FromArg(ctx, args[0])
	if err != nil {
		return fmt.Errorf("load posting: %w", err)
	}

	result, err := a.engine.Scan(ctx, input)
	if err != nil {
		if errors.Is(err, engine.ErrInsufficientText) {
			return fmt.Errorf("nothing to analyze: %w", err)
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	if asJSON {
		return engine.RenderJSON(os.Stdout, result)
	}
	return engine.RenderMarkdown(os.Stdout, result, cfg.Output)
}
