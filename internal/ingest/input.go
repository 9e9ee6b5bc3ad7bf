package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nextstep-io/jobtrust/internal/model"
)

// Loader resolves a CLI argument into a scan input
type Loader struct {
	fetcher *Fetcher
	stdin   io.Reader
}

// NewLoader creates a loader. stdin is read when the argument is "-".
func NewLoader(fetcher *Fetcher, stdin io.Reader) *Loader {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Loader{fetcher: fetcher, stdin: stdin}
}

// FromArg detects what kind of input the argument is and loads it:
// "-" reads stdin, http(s) URLs are fetched, existing file paths are
// read, anything else is treated as the posting text itself.
func (l *Loader) FromArg(ctx context.Context, arg string) (model.ScanInput, error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return model.ScanInput{}, fmt.Errorf("read stdin: %w", err)
		}
		return model.ScanInput{
			Kind:          model.InputText,
			RawPayload:    "-",
			ExtractedText: string(data),
		}, nil

	case strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://"):
		text, err := l.fetcher.Fetch(ctx, arg)
		if err != nil {
			return model.ScanInput{}, err
		}
		return model.ScanInput{
			Kind:          model.InputURL,
			RawPayload:    arg,
			ExtractedText: text,
		}, nil

	case isFile(arg):
		data, err := os.ReadFile(arg)
		if err != nil {
			return model.ScanInput{}, fmt.Errorf("read file: %w", err)
		}
		text := string(data)
		if looksLikeHTML(text) {
			text = ExtractText(text)
		}
		return model.ScanInput{
			Kind:          model.InputFile,
			RawPayload:    arg,
			ExtractedText: text,
		}, nil

	default:
		return model.ScanInput{
			Kind:          model.InputText,
			ExtractedText: arg,
		}, nil
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func looksLikeHTML(text string) bool {
	head := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}
