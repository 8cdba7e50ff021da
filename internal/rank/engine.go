package rank

import (
	"fmt"
	"math"
	"sort"
	"time"

	"careerpilot/discovery-service/internal/model"
)

// recencyHalfLifeDays controls the exponential decay of the recency
// factor: exp(-daysSincePosted / 30).
const recencyHalfLifeDays = 30.0

// Weights are the five factor coefficients of the composite score.
// The defaults sum to 1.0 but the engine does not enforce that.
type Weights struct {
	Title       float64
	Description float64
	Company     float64
	Recency     float64
	Source      float64
}

// DefaultWeights returns the standard factor weighting.
func DefaultWeights() Weights {
	return Weights{
		Title:       0.4,
		Description: 0.3,
		Company:     0.1,
		Recency:     0.1,
		Source:      0.1,
	}
}

// sourceAuthority is the fixed per-board credibility multiplier.
var sourceAuthority = map[model.JobSource]float64{
	model.SourceLinkedIn:  1.0,
	model.SourceIndeed:    0.9,
	model.SourceGlassdoor: 0.8,
	model.SourceMonster:   0.7,
	model.SourceCustom:    0.5,
}

// defaultAuthority applies to sources missing from the table.
const defaultAuthority = 0.5

// RankedJob pairs a Job with its composite score and a per-factor
// breakdown. Recomputed fresh on every ranking call, never persisted.
type RankedJob struct {
	Job         model.Job
	Score       float64
	Explanation string
}

// Engine ranks jobs against a query using per-field TF-IDF, recency decay
// and source authority. Stateless across calls apart from the immutable
// index; Rank may be called concurrently.
type Engine struct {
	index   *Index
	weights Weights
	now     func() time.Time
}

// NewEngine constructs an Engine over a prebuilt Index.
func NewEngine(index *Index, weights Weights) *Engine {
	return &Engine{index: index, weights: weights, now: time.Now}
}

// Rank scores every job independently and returns them sorted by score
// descending. The sort is stable: equal scores keep their input order.
// The result always has the same length as jobs.
func (e *Engine) Rank(jobs []model.Job, query model.JobQuery) []RankedJob {
	ranked := make([]RankedJob, len(jobs))
	for i, job := range jobs {
		ranked[i] = e.RankOne(job, query)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// RankOne computes the composite score for a single job.
//
// Scores are unbounded above: a future-dated posting yields a recency
// factor above 1, and common query tokens can carry negative IDF. Callers
// must not assume [0, 1].
func (e *Engine) RankOne(job model.Job, query model.JobQuery) RankedJob {
	titleScore := e.index.Score(query.Keywords, job.Title) * e.weights.Title
	descScore := e.index.Score(query.Keywords, job.Description) * e.weights.Description
	companyScore := e.index.Score(query.Keywords, job.Company) * e.weights.Company

	daysSincePosted := e.now().Sub(job.PostedAt).Hours() / 24
	recencyScore := math.Exp(-daysSincePosted/recencyHalfLifeDays) * e.weights.Recency

	authority, ok := sourceAuthority[job.Source]
	if !ok {
		authority = defaultAuthority
	}
	sourceScore := authority * e.weights.Source

	total := titleScore + descScore + companyScore + recencyScore + sourceScore

	return RankedJob{
		Job:   job,
		Score: total,
		Explanation: fmt.Sprintf(
			"title=%.2f description=%.2f company=%.2f recency=%.2f source=%.2f",
			titleScore, descScore, companyScore, recencyScore, sourceScore,
		),
	}
}
