// Package scrape fetches evidence pages and reduces them to bounded plain text.
package scrape

import (
	"context"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/gridside/funding-cli/internal/ocr"
)

// maxBodyBytes bounds how much of a response is read. PDFs can be large;
// anything past this is cut off before text extraction.
const maxBodyBytes = 10 << 20

// Fetcher retrieves a single URL and extracts its visible text.
type Fetcher struct {
	client   *http.Client
	pdf      ocr.Extractor
	maxChars int
}

// NewFetcher creates a Fetcher. timeout bounds the whole fetch including
// body read; maxChars caps the extracted text length.
func NewFetcher(pdf ocr.Extractor, timeout time.Duration, maxChars int) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxChars <= 0 {
		maxChars = 4000
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		pdf:      pdf,
		maxChars: maxChars,
	}
}

// Fetch downloads a URL and returns its normalized visible text, truncated
// to the configured budget. The document kind is decided from the response
// Content-Type header, falling back to the URL suffix only when the header
// is absent or ambiguous.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", eris.Wrap(err, "scrape: create request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; FundingScout/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", eris.Wrap(err, "scrape: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return "", eris.Errorf("scrape: status %d for %s", resp.StatusCode, targetURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", eris.Wrap(err, "scrape: read body")
	}

	var text string
	if isPDF(resp.Header.Get("Content-Type"), targetURL) {
		text, err = f.pdf.ExtractText(ctx, body)
		if err != nil {
			return "", eris.Wrap(err, "scrape: extract pdf text")
		}
	} else {
		text = htmlText(body)
	}

	return truncate(normalizeSpace(text), f.maxChars), nil
}

// isPDF decides whether a response carries a PDF document. The Content-Type
// header wins; the URL suffix is a last resort for servers that omit it.
func isPDF(contentType, targetURL string) bool {
	if contentType != "" {
		if mt, _, err := mime.ParseMediaType(contentType); err == nil {
			switch {
			case mt == "application/pdf":
				return true
			case strings.HasPrefix(mt, "text/"), mt == "application/xhtml+xml":
				return false
			}
		}
	}
	trimmed := strings.SplitN(targetURL, "?", 2)[0]
	return strings.HasSuffix(strings.ToLower(trimmed), ".pdf")
}

// normalizeSpace collapses all whitespace runs to single spaces and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
