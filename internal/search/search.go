// Package search fans out queries to the search provider and merges the
// resulting links into a bounded, de-duplicated set.
package search

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/gridside/funding-cli/pkg/serp"
)

// Searcher runs query batches against a serp.Client.
type Searcher struct {
	client   serp.Client
	limiter  *rate.Limiter
	maxLinks int
}

// NewSearcher creates a Searcher. maxLinks caps the merged link set;
// queriesPerSecond bounds the outbound request rate.
func NewSearcher(client serp.Client, maxLinks, queriesPerSecond int) *Searcher {
	if maxLinks <= 0 {
		maxLinks = 7
	}
	if queriesPerSecond <= 0 {
		queriesPerSecond = 5
	}
	return &Searcher{
		client:   client,
		limiter:  rate.NewLimiter(rate.Limit(queriesPerSecond), 1),
		maxLinks: maxLinks,
	}
}

// FindLinks issues all queries concurrently and returns the merged, unique
// link set, capped at maxLinks. A failed query logs and contributes nothing;
// the batch itself never fails. Links are merged in query order so the
// result is deterministic for a given set of provider responses.
func (s *Searcher) FindLinks(ctx context.Context, queries []string) []string {
	perQuery := make([][]string, len(queries))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(len(queries) + 1)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := s.limiter.Wait(gCtx); err != nil {
				return nil
			}
			resp, err := s.client.Search(gCtx, q)
			if err != nil {
				zap.L().Warn("search: query failed",
					zap.String("query", q),
					zap.Error(err),
				)
				return nil
			}
			perQuery[i] = resp.Links()
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]bool)
	var links []string
	for _, qLinks := range perQuery {
		for _, link := range qLinks {
			if seen[link] {
				continue
			}
			seen[link] = true
			links = append(links, link)
			if len(links) >= s.maxLinks {
				return links
			}
		}
	}

	zap.L().Info("search: merged results",
		zap.Int("queries", len(queries)),
		zap.Int("links", len(links)),
	)

	return links
}
