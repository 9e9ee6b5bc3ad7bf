package ingest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nextstep-io/jobtrust/internal/model"
)

func testHTTPConfig(respectRobots bool) model.HTTPConfig {
	return model.HTTPConfig{
		Timeout:       5 * time.Second,
		UserAgent:     "JobTrust-Test/0.1",
		MaxBodyBytes:  1 << 20,
		RespectRobots: respectRobots,
	}
}

func TestExtractText_SkipsScriptsAndStyles(t *testing.T) {
	doc := `<html><head><title>Job</title><style>body{}</style></head>
	<body><script>var x = "wire transfer";</script>
	<h1>Software Engineer</h1><p>Competitive salary and health insurance.</p></body></html>`

	text := ExtractText(doc)

	if strings.Contains(text, "wire transfer") {
		t.Error("Expected script content excluded")
	}
	if strings.Contains(text, "body{}") {
		t.Error("Expected style content excluded")
	}
	if !strings.Contains(text, "Software Engineer") || !strings.Contains(text, "health insurance") {
		t.Errorf("Expected visible text preserved, got %q", text)
	}
}

func TestExtractText_BlockBoundariesBecomeSpaces(t *testing.T) {
	doc := `<div>processing</div><div>fee</div>`
	text := ExtractText(doc)
	if text != "processing fee" {
		t.Errorf("Expected adjacent blocks separated, got %q", text)
	}
}

func TestExtractText_PlainTextPassesThrough(t *testing.T) {
	text := ExtractText("Just a plain posting, no markup.")
	if text != "Just a plain posting, no markup." {
		t.Errorf("Expected plain text unchanged, got %q", text)
	}
}

func TestLoader_FromArg_RawText(t *testing.T) {
	l := NewLoader(nil, nil)

	input, err := l.FromArg(context.Background(), "Remote data entry position, weekly pay")
	if err != nil {
		t.Fatalf("FromArg failed: %v", err)
	}
	if input.Kind != model.InputText {
		t.Errorf("Expected text input, got %s", input.Kind)
	}
	if input.ExtractedText != "Remote data entry position, weekly pay" {
		t.Errorf("Unexpected text: %q", input.ExtractedText)
	}
}

func TestLoader_FromArg_Stdin(t *testing.T) {
	l := NewLoader(nil, strings.NewReader("posting from a pipe"))

	input, err := l.FromArg(context.Background(), "-")
	if err != nil {
		t.Fatalf("FromArg failed: %v", err)
	}
	if input.Kind != model.InputText || input.ExtractedText != "posting from a pipe" {
		t.Errorf("Unexpected input: %+v", input)
	}
}

func TestLoader_FromArg_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.txt")
	if err := os.WriteFile(path, []byte("Accountant needed, CPA required."), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(nil, nil)
	input, err := l.FromArg(context.Background(), path)
	if err != nil {
		t.Fatalf("FromArg failed: %v", err)
	}
	if input.Kind != model.InputFile {
		t.Errorf("Expected file input, got %s", input.Kind)
	}
	if input.ExtractedText != "Accountant needed, CPA required." {
		t.Errorf("Unexpected text: %q", input.ExtractedText)
	}
	if input.RawPayload != path {
		t.Errorf("Expected path recorded, got %q", input.RawPayload)
	}
}

func TestLoader_FromArg_HTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.html")
	doc := "<html><body><script>junk()</script><p>Senior Engineer role</p></body></html>"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(nil, nil)
	input, err := l.FromArg(context.Background(), path)
	if err != nil {
		t.Fatalf("FromArg failed: %v", err)
	}
	if input.ExtractedText != "Senior Engineer role" {
		t.Errorf("Expected HTML reduced to text, got %q", input.ExtractedText)
	}
}

func TestFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "JobTrust-Test/0.1" {
			t.Errorf("Unexpected user agent: %q", got)
		}
		fmt.Fprint(w, "<html><body><p>Backend Developer, Berlin</p></body></html>")
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(false))
	text, err := f.Fetch(context.Background(), server.URL+"/jobs/123")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if text != "Backend Developer, Berlin" {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestFetcher_Fetch_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(false))
	if _, err := f.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for non-2xx status")
	}
}

func TestFetcher_Fetch_RespectsBodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, strings.Repeat("a", 4096))
	}))
	defer server.Close()

	cfg := testHTTPConfig(false)
	cfg.MaxBodyBytes = 100

	f := NewFetcher(cfg)
	text, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(text) > 100 {
		t.Errorf("Expected body truncated to limit, got %d bytes", len(text))
	}
}

func TestFetcher_Fetch_RobotsDisallowed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<p>should not be reached</p>")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	f := NewFetcher(testHTTPConfig(true))

	if _, err := f.Fetch(context.Background(), server.URL+"/private/job"); err == nil {
		t.Error("Expected robots.txt to block the fetch")
	}
	if _, err := f.Fetch(context.Background(), server.URL+"/public/job"); err != nil {
		t.Errorf("Expected allowed path to fetch: %v", err)
	}
}

func TestFetcher_Fetch_MissingRobotsAllows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "<p>Open position</p>")
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(true))
	text, err := f.Fetch(context.Background(), server.URL+"/job")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if text != "Open position" {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestFetcher_Fetch_RedirectCap(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+r.URL.Path+"x", http.StatusFound)
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(false))
	if _, err := f.Fetch(context.Background(), server.URL+"/loop"); err == nil {
		t.Error("Expected redirect loop to fail")
	}
}
