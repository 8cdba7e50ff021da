// Package scheduler wires up the cron job that periodically runs a full
// discovery cycle over the configured feeds.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"careerpilot/discovery-service/internal/ingest"
	"careerpilot/discovery-service/internal/model"
	"careerpilot/discovery-service/internal/store"
)

// Scheduler wraps robfig/cron and manages the discovery loop.
type Scheduler struct {
	cron     *cron.Cron
	pipeline *ingest.Pipeline
	repo     *store.Repository
	feeds    []string
	source   model.JobSource
	exclude  []string
	spec     string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(pipeline *ingest.Pipeline, repo *store.Repository, feeds []string,
	source model.JobSource, exclude []string, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLogger(cron.DefaultLogger)),
		pipeline: pipeline,
		repo:     repo,
		feeds:    feeds,
		source:   source,
		exclude:  exclude,
		spec:     fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one cycle
// immediately so the feed is populated without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.runCycle(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

// runCycle drains one ingestion pass and persists whatever survives the
// exclusion filter.
func (s *Scheduler) runCycle(ctx context.Context) {
	log.Printf("[scheduler] Discovery cycle started — %d feed(s)", len(s.feeds))

	var fresh []model.Job
	var filtered int
	for job := range s.pipeline.Run(ctx, s.feeds, s.source) {
		if ingest.Excluded(job, s.exclude) {
			filtered++
			continue
		}
		fresh = append(fresh, job)
	}

	if len(fresh) == 0 {
		log.Printf("[scheduler] Cycle complete — no new offers (filtered=%d)", filtered)
		return
	}

	inserted, err := s.repo.Save(ctx, fresh)
	if err != nil {
		log.Printf("[scheduler] Save error: %v", err)
	}

	log.Printf("[scheduler] Cycle complete — ingested=%d inserted=%d filtered=%d",
		len(fresh), inserted, filtered)
}
