package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nextstep-io/jobtrust/internal/engine"
	"github.com/nextstep-io/jobtrust/internal/model"
	"github.com/nextstep-io/jobtrust/internal/worker"
)

var (
	concurrency  int
	batchTimeout time.Duration
	batchJSON    bool
	rps          float64
	burst        int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Score multiple job postings from a file in parallel",
	Long: `Batch scans every posting source listed in a file, one per line.
Each line may be a URL, a file path, or raw posting text; blank lines
and #-comments are skipped. URL fetches are rate-limited per host.

Example:
  jobtrust batch postings.txt
  jobtrust batch postings.txt --concurrency 8 --json
  jobtrust batch postings.txt --ai openai`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for the batch")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "emit all results as a JSON array")
	batchCmd.Flags().Float64Var(&rps, "rps", 2, "max posting fetches per second per host")
	batchCmd.Flags().IntVar(&burst, "burst", 5, "fetch burst per host")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the scan cache")
	batchCmd.Flags().StringVar(&aiProvider, "ai", "", "AI provider for the judgment branch (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&aiModel, "ai-model", "", "AI model name")
	batchCmd.Flags().StringVar(&overlayPath, "dictionary", "", "YAML overlay merged over the built-in signal dictionary")
}

// sourceScanner adapts the loader and engine to the batch worker
type sourceScanner struct {
	app *app
}

func (s *sourceScanner) ScanSource(ctx context.Context, source string) (*model.ScanResult, error) {
	input, err := s.app.loader.FromArg(ctx, source)
	if err != nil {
		return nil, err
	}
	return s.app.engine.Scan(ctx, input)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}
	cfg.Cache.Enabled = !noCache
	cfg.Concurrency.BatchWorkers = concurrency
	cfg.Concurrency.RequestsPerSecond = rps
	cfg.Concurrency.Burst = burst
	cfg.Output.Verbose = verbose
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

	limiter := worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst)
	processor := worker.NewBatchProcessor(&sourceScanner{app: a}, limiter, cfg.Concurrency.BatchWorkers)

	results, err := processor.ProcessFile(ctx, args[0])
	if err != nil {
		return err
	}

	if batchJSON {
		return renderBatchJSON(results)
	}
	renderBatchSummary(results)
	return nil
}

func renderBatchJSON(results []*worker.SourceResult) error {
	type entry struct {
		Source string            `json:"source"`
		Error  string            `json:"error,omitempty"`
		Result *model.ScanResult `json:"result,omitempty"`
	}

	entries := make([]entry, 0, len(results))
	for _, r := range results {
		e := entry{Source: r.Source, Result: r.Result}
		if r.Error != nil {
			e.Error = r.Error.Error()
		}
		entries = append(entries, e)
	}
	return engine.RenderJSONValue(os.Stdout, entries)
}

func renderBatchSummary(results []*worker.SourceResult) {
	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Printf("ERROR  %-40.40s  %v\n", r.Source, r.Error)
			continue
		}
		fmt.Printf("%3d/100  %-9s  %-40.40s\n", r.Result.Score, r.Result.RiskLevel.Label(), r.Source)
	}
	fmt.Printf("\n%d scanned, %d failed\n", len(results), failed)
}
