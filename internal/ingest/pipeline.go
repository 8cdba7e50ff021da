// Package ingest orchestrates fetch → parse → dedup into a lazy stream of
// unique job offers.
package ingest

import (
	"context"
	"log"
	"sync"

	"careerpilot/discovery-service/internal/dedup"
	"careerpilot/discovery-service/internal/feed"
	"careerpilot/discovery-service/internal/model"
)

// Pipeline produces unique, normalised jobs from a set of feed locations.
// Sources are processed as independent tasks feeding one output channel;
// a failing source is logged and skipped, never terminating the stream.
type Pipeline struct {
	fetcher feed.Fetcher
	parser  *feed.Parser
	store   dedup.Store
}

// New constructs a Pipeline.
func New(fetcher feed.Fetcher, parser *feed.Parser, store dedup.Store) *Pipeline {
	return &Pipeline{fetcher: fetcher, parser: parser, store: store}
}

// Run starts one ingestion pass over locations and returns the stream of
// unique jobs. The channel closes once every location has been processed
// or ctx is cancelled. The stream is single-pass: re-invoking Run
// re-fetches and re-filters from scratch.
//
// Jobs from one location keep their feed order; no ordering holds across
// locations.
func (p *Pipeline) Run(ctx context.Context, locations []string, source model.JobSource) <-chan model.Job {
	out := make(chan model.Job)

	var wg sync.WaitGroup
	for _, loc := range locations {
		wg.Add(1)
		go func(loc string) {
			defer wg.Done()
			p.ingestSource(ctx, loc, source, out)
		}(loc)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// ingestSource runs the fetch → parse → dedup sequence for one location.
func (p *Pipeline) ingestSource(ctx context.Context, loc string, source model.JobSource, out chan<- model.Job) {
	raw, err := p.fetcher.Fetch(ctx, loc)
	if err != nil {
		log.Printf("[pipeline] Fetch error for %q: %v — skipping source", loc, err)
		return
	}

	candidates, err := p.parser.Parse(raw, source)
	if err != nil {
		// Items parsed before the failure still flow through below.
		log.Printf("[pipeline] Parse error for %q: %v — keeping %d item(s) parsed before failure",
			loc, err, len(candidates))
	}

	for _, job := range candidates {
		job = model.Normalize(job)

		fresh, err := p.store.Add(ctx, dedup.Fingerprint(job))
		if err != nil {
			log.Printf("[pipeline] Dedup store error for %q: %v — skipping item", job.Title, err)
			continue
		}
		if !fresh {
			continue
		}

		select {
		case out <- job:
		case <-ctx.Done():
			return
		}
	}
}
