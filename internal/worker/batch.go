package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nextstep-io/jobtrust/internal/model"
)

// SourceScanner resolves and scans one posting source. Implemented by
// the CLI wiring over the ingest loader and the scan engine.
type SourceScanner interface {
	ScanSource(ctx context.Context, source string) (*model.ScanResult, error)
}

// SourceJob scans one posting source
type SourceJob struct {
	Source  string
	Scanner SourceScanner
	Limiter *Limiter
}

// Execute resolves and scans the source. URL sources wait for
// per-host rate limit clearance first.
func (j *SourceJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil && isURL(j.Source) {
		if err := j.Limiter.Wait(ctx, j.Source); err != nil {
			return &SourceResult{Source: j.Source, Error: err}
		}
	}

	result, err := j.Scanner.ScanSource(ctx, j.Source)
	return &SourceResult{Source: j.Source, Result: result, Error: err}
}

// SourceResult pairs a posting source with its scan outcome
type SourceResult struct {
	Source string
	Result *model.ScanResult
	Error  error
}

// GetError returns the scan error, if any
func (r *SourceResult) GetError() error {
	return r.Error
}

// BatchProcessor scans multiple posting sources concurrently
type BatchProcessor struct {
	scanner     SourceScanner
	limiter     *Limiter
	concurrency int
}

// NewBatchProcessor creates a batch processor. The limiter may be nil
// when no URL sources are expected.
func NewBatchProcessor(scanner SourceScanner, limiter *Limiter, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		scanner:     scanner,
		limiter:     limiter,
		concurrency: concurrency,
	}
}

// ProcessSources scans the given sources concurrently. One result is
// returned per source; individual failures are carried in the result,
// never aborting the batch.
func (b *BatchProcessor) ProcessSources(ctx context.Context, sources []string) []*SourceResult {
	if len(sources) == 0 {
		return []*SourceResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, source := range sources {
		pool.Submit(&SourceJob{
			Source:  source,
			Scanner: b.scanner,
			Limiter: b.limiter,
		})
	}

	results := pool.Wait()

	sourceResults := make([]*SourceResult, len(results))
	for i, result := range results {
		sourceResults[i] = result.(*SourceResult)
	}
	return sourceResults
}

// ProcessFile scans sources listed in a file, one per line
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*SourceResult, error) {
	sources, err := ReadSourcesFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}
	return b.ProcessSources(ctx, sources), nil
}

// ReadSourcesFromFile reads posting sources from a file, one per line.
// Blank lines and #-comments are skipped, duplicates dropped.
func ReadSourcesFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sources []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		sources = append(sources, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return sources, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
