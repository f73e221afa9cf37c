package main

import (
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/gridside/funding-cli/internal/config"
	"github.com/gridside/funding-cli/internal/evaluate"
	"github.com/gridside/funding-cli/internal/llm"
	"github.com/gridside/funding-cli/internal/ocr"
	"github.com/gridside/funding-cli/internal/prompt"
	"github.com/gridside/funding-cli/internal/scrape"
	"github.com/gridside/funding-cli/internal/search"
	"github.com/gridside/funding-cli/pkg/serp"
)

// buildPipeline wires the full evaluation pipeline from config. Without a
// search-provider key the evidence stages are skipped and evaluations run on
// the project description alone.
func buildPipeline(cfg *config.Config) (*evaluate.Pipeline, error) {
	if cfg.LLM.Key == "" {
		return nil, eris.New("build pipeline: llm.key is required")
	}
	provider, err := llm.New(cfg.LLM)
	if err != nil {
		return nil, eris.Wrap(err, "build pipeline")
	}

	var (
		searcher evaluate.LinkFinder
		gatherer evaluate.EvidenceGatherer
	)
	if cfg.Serp.Key != "" {
		client := serp.NewClient(cfg.Serp.Key,
			serp.WithBaseURL(cfg.Serp.BaseURL),
			serp.WithResultCount(cfg.Serp.ResultsPerQuery),
		)
		searcher = search.NewSearcher(client, cfg.Serp.MaxLinks, cfg.Serp.QueriesPerSecond)

		fetcher := scrape.NewFetcher(
			ocr.NewPdfToText(cfg.Scrape.PdfToTextPath),
			time.Duration(cfg.Scrape.TimeoutSecs)*time.Second,
			cfg.Scrape.MaxChars,
		)
		gatherer = scrape.NewGatherer(fetcher, cfg.Scrape.MaxConcurrent)
	} else {
		zap.L().Warn("serp.key not set, evaluations will run without web evidence")
	}

	assembler := prompt.NewAssembler(cfg.Policy.ExcludedPrograms)

	return evaluate.NewPipeline(searcher, gatherer, assembler, provider), nil
}
