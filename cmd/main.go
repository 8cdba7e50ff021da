// discovery-service — scrapes configured job feeds on a cron interval,
// deduplicates offers by content fingerprint, and stores them for ranking.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"careerpilot/discovery-service/internal/config"
	"careerpilot/discovery-service/internal/db"
	"careerpilot/discovery-service/internal/dedup"
	"careerpilot/discovery-service/internal/feed"
	"careerpilot/discovery-service/internal/ingest"
	"careerpilot/discovery-service/internal/model"
	"careerpilot/discovery-service/internal/scheduler"
	"careerpilot/discovery-service/internal/store"
)

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(healthResponse{
		Status:  "ok",
		Service: "discovery-service",
		Version: "0.1.0",
	})
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[discovery-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[discovery-service] Postgres error: %v", err)
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[discovery-service] Redis error: %v", err)
	}
	defer rdb.Close()

	fingerprints := dedup.NewRedisStore(rdb, time.Duration(cfg.FingerprintTTLDays)*24*time.Hour)
	pipeline := ingest.New(feed.NewHTTPFetcher(), feed.NewParser(), fingerprints)
	repo := store.NewRepository(pool)

	sched := scheduler.New(pipeline, repo, cfg.FeedURLs,
		model.JobSource(cfg.FeedSource), cfg.ExcludeTerms, cfg.ScrapeIntervalHours)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[discovery-service] Scheduler error: %v", err)
	}
	defer sched.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: mux}
	go func() {
		log.Printf("[discovery-service] Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[discovery-service] Fatal: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("[discovery-service] Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[discovery-service] HTTP shutdown error: %v", err)
	}
}
