// Package evaluate drives one funding evaluation end to end: describe the
// site, search for evidence, scrape it, and ask the model.
package evaluate

import (
	"context"

	"go.uber.org/zap"

	"github.com/gridside/funding-cli/internal/form"
	"github.com/gridside/funding-cli/internal/llm"
	"github.com/gridside/funding-cli/internal/prompt"
	"github.com/gridside/funding-cli/internal/scrape"
)

// LinkFinder locates candidate evidence URLs for a query batch.
type LinkFinder interface {
	FindLinks(ctx context.Context, queries []string) []string
}

// EvidenceGatherer fetches a URL batch and settles every branch.
type EvidenceGatherer interface {
	GatherAll(ctx context.Context, urls []string) scrape.Gathered
}

// Pipeline holds the injected stages. All dependencies are constructed by
// the caller; nothing here reaches for globals.
type Pipeline struct {
	search    LinkFinder
	gather    EvidenceGatherer
	assembler *prompt.Assembler
	provider  llm.Provider
}

// NewPipeline wires a Pipeline. search and gather may be nil, in which case
// the evidence step is skipped and the model sees only the project
// description.
func NewPipeline(search LinkFinder, gather EvidenceGatherer, assembler *prompt.Assembler, provider llm.Provider) *Pipeline {
	return &Pipeline{
		search:    search,
		gather:    gather,
		assembler: assembler,
		provider:  provider,
	}
}

// Result is one completed evaluation. The counts are observability data;
// HTTP callers receive only Text.
type Result struct {
	Text           string
	Queries        int
	Links          int
	SourcesScraped int
	SourcesFailed  int
}

// Run executes the pipeline for one form. Search and scrape failures degrade
// to less (or no) evidence; only a model-provider failure is returned as an
// error.
func (p *Pipeline) Run(ctx context.Context, f form.ProjectForm) (*Result, error) {
	description := f.Describe()

	res := &Result{}
	evidence := prompt.NoEvidencePlaceholder
	if p.search != nil && p.gather != nil {
		queries := f.Queries()
		res.Queries = len(queries)

		links := p.search.FindLinks(ctx, queries)
		res.Links = len(links)

		gathered := p.gather.GatherAll(ctx, links)
		res.SourcesFailed = gathered.Failed
		res.SourcesScraped = len(gathered.Evidence) - gathered.Failed

		evidence = gathered.JoinedText(prompt.NoEvidencePlaceholder)
	}

	answer, err := p.provider.Evaluate(ctx, p.assembler.Assemble(description, evidence))
	if err != nil {
		return nil, err
	}
	res.Text = answer

	zap.L().Info("evaluate: pipeline complete",
		zap.String("provider", p.provider.Name()),
		zap.Int("queries", res.Queries),
		zap.Int("links", res.Links),
		zap.Int("sources_scraped", res.SourcesScraped),
		zap.Int("sources_failed", res.SourcesFailed),
	)

	return res, nil
}
