// Package model defines shared data structures for the discovery service.
package model

import (
	"time"

	"github.com/google/uuid"
)

// JobSource identifies the job board an offer was discovered on.
type JobSource string

const (
	SourceLinkedIn  JobSource = "linkedin"
	SourceIndeed    JobSource = "indeed"
	SourceGlassdoor JobSource = "glassdoor"
	SourceMonster   JobSource = "monster"
	SourceCustom    JobSource = "custom"
)

// PayPeriod is the unit a salary range is quoted in.
type PayPeriod string

const (
	PayPeriodHourly  PayPeriod = "HOURLY"
	PayPeriodMonthly PayPeriod = "MONTHLY"
	PayPeriodYearly  PayPeriod = "YEARLY"
)

// SalaryRange is an optional compensation bracket attached to a Job.
type SalaryRange struct {
	Min      int       `json:"min"`
	Max      int       `json:"max"`
	Currency string    `json:"currency"`
	Period   PayPeriod `json:"period"`
}

// Job is a normalised job offer discovered from an external feed.
// ID is assigned once at creation and never reassigned. URL is the
// uniqueness key for persisted storage; content duplicates across different
// URLs are caught separately by the fingerprint store. Jobs are value
// types — every edit produces a new Job, none is mutated in place.
type Job struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Company     string       `json:"company"`
	Description string       `json:"description"`
	Location    string       `json:"location,omitempty"`
	Salary      *SalaryRange `json:"salary,omitempty"`
	PostedAt    time.Time    `json:"postedAt"`
	URL         string       `json:"url"`
	Source      JobSource    `json:"source"`
}

// NewJobID returns a fresh globally unique job identifier.
func NewJobID() string {
	return uuid.NewString()
}

// JobQuery captures one search intent. Keywords may be empty, meaning no
// keyword filter. Immutable — build a new value per search.
type JobQuery struct {
	Keywords   string
	Location   string
	RemoteOnly bool
	MinSalary  int
}
