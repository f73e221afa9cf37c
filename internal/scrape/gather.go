package scrape

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Evidence is the discriminated outcome of fetching one URL. A failed fetch
// carries its reason in Err and an empty Text; the degrade-to-empty policy
// is applied by the consumer, not hidden here.
type Evidence struct {
	URL  string
	Text string
	Err  error
}

// Gathered is the settled result of a scatter/gather over a URL batch.
type Gathered struct {
	Evidence []Evidence
	Failed   int
}

// JoinedText concatenates the non-empty evidence texts with blank lines.
// When no page yielded text, placeholder is returned instead.
func (g Gathered) JoinedText(placeholder string) string {
	var texts []string
	for _, e := range g.Evidence {
		if e.Err == nil && e.Text != "" {
			texts = append(texts, e.Text)
		}
	}
	if len(texts) == 0 {
		return placeholder
	}
	return strings.Join(texts, "\n\n")
}

// Gatherer fetches URL batches concurrently.
type Gatherer struct {
	fetcher       *Fetcher
	maxConcurrent int
}

// NewGatherer creates a Gatherer over the given Fetcher.
func NewGatherer(fetcher *Fetcher, maxConcurrent int) *Gatherer {
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}
	return &Gatherer{fetcher: fetcher, maxConcurrent: maxConcurrent}
}

// GatherAll fetches every URL concurrently and waits for all branches to
// settle. Individual failures are recorded, logged, and counted; they never
// fail the batch. Results keep the input order.
func (g *Gatherer) GatherAll(ctx context.Context, urls []string) Gathered {
	evidence := make([]Evidence, len(urls))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.maxConcurrent)

	for i, u := range urls {
		i, u := i, u
		eg.Go(func() error {
			text, err := g.fetcher.Fetch(egCtx, u)
			if err != nil {
				zap.L().Warn("scrape: fetch failed",
					zap.String("url", u),
					zap.Error(err),
				)
				evidence[i] = Evidence{URL: u, Err: err}
				return nil
			}
			evidence[i] = Evidence{URL: u, Text: text}
			return nil
		})
	}
	_ = eg.Wait()

	failed := 0
	for _, e := range evidence {
		if e.Err != nil {
			failed++
		}
	}

	zap.L().Info("scrape: batch settled",
		zap.Int("urls", len(urls)),
		zap.Int("failed", failed),
	)

	return Gathered{Evidence: evidence, Failed: failed}
}
