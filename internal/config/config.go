// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration for the discovery service.
type Config struct {
	Port                string
	DatabaseURL         string
	RedisURL            string
	FeedURLs            []string // source locations polled each cycle
	FeedSource          string   // job board tag applied to parsed offers
	ScrapeIntervalHours int      // How often the cron job fires
	FingerprintTTLDays  int      // Dedup window before a repost is re-emitted
	ExcludeTerms        []string // exclusion terms — any match discards the offer
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	var feedURLs []string
	for _, u := range strings.Split(os.Getenv("FEED_URLS"), ",") {
		if u = strings.TrimSpace(u); u != "" {
			feedURLs = append(feedURLs, u)
		}
	}
	if len(feedURLs) == 0 {
		return nil, fmt.Errorf("FEED_URLS is required (comma-separated feed locations)")
	}

	interval := 6
	if s := os.Getenv("SCRAPE_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("SCRAPE_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		interval = v
	}

	ttlDays := 45
	if s := os.Getenv("FINGERPRINT_TTL_DAYS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("FINGERPRINT_TTL_DAYS must be a positive integer, got %q", s)
		}
		ttlDays = v
	}

	source := os.Getenv("FEED_SOURCE")
	if source == "" {
		source = "custom"
	}

	port := os.Getenv("DISCOVERY_PORT")
	if port == "" {
		port = "8081"
	}

	var exclude []string
	for _, t := range strings.Split(os.Getenv("EXCLUDE_TERMS"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			exclude = append(exclude, t)
		}
	}

	return &Config{
		Port:                port,
		DatabaseURL:         dbURL,
		RedisURL:            redisURL,
		FeedURLs:            feedURLs,
		FeedSource:          source,
		ScrapeIntervalHours: interval,
		FingerprintTTLDays:  ttlDays,
		ExcludeTerms:        exclude,
	}, nil
}
