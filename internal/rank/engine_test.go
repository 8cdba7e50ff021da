package rank_test

import (
	"testing"
	"time"

	"careerpilot/discovery-service/internal/model"
	"careerpilot/discovery-service/internal/rank"
)

func testEngine() *rank.Engine {
	idx := rank.NewIndex([]string{
		"swift developer ios",
		"ios engineer mobile",
		"software engineer backend",
		"data analyst sql",
	})
	return rank.NewEngine(idx, rank.DefaultWeights())
}

// ── Relevance ──────────────────────────────────────────────────────────────

func TestRank_RelevantJobBeatsUnrelated(t *testing.T) {
	now := time.Now()
	relevant := model.Job{
		Title:       "iOS Developer",
		Description: "Swift development for our mobile apps",
		Company:     "Acme",
		PostedAt:    now,
		Source:      model.SourceCustom,
	}
	unrelated := model.Job{
		Title:       "Forklift Operator",
		Description: "Warehouse logistics",
		Company:     "Acme",
		PostedAt:    now,
		Source:      model.SourceCustom,
	}

	ranked := testEngine().Rank([]model.Job{unrelated, relevant}, model.JobQuery{Keywords: "swift ios"})

	if len(ranked) != 2 {
		t.Fatalf("got %d results, want 2", len(ranked))
	}
	if ranked[0].Job.Title != "iOS Developer" {
		t.Errorf("top result = %q, want the relevant job", ranked[0].Job.Title)
	}
	if ranked[0].Score <= ranked[1].Score {
		t.Errorf("relevant score %v should strictly exceed unrelated %v",
			ranked[0].Score, ranked[1].Score)
	}
}

func TestRank_ResultLengthMatchesInput(t *testing.T) {
	jobs := []model.Job{
		{Title: "A", PostedAt: time.Now(), Source: model.SourceCustom},
		{Title: "B", PostedAt: time.Now(), Source: model.SourceCustom},
		{Title: "C", PostedAt: time.Now(), Source: model.SourceCustom},
	}

	ranked := testEngine().Rank(jobs, model.JobQuery{Keywords: "nothing matches this"})
	if len(ranked) != len(jobs) {
		t.Errorf("got %d results, want %d", len(ranked), len(jobs))
	}

	if got := testEngine().Rank(nil, model.JobQuery{}); len(got) != 0 {
		t.Errorf("ranking no jobs returned %d results", len(got))
	}
}

// ── Ordering ───────────────────────────────────────────────────────────────

func TestRank_SortedDescendingStableTies(t *testing.T) {
	now := time.Now()
	// Identical scoring inputs except ID: all tie.
	mk := func(id string) model.Job {
		return model.Job{ID: id, Title: "Same Role", Company: "Same Co",
			PostedAt: now, Source: model.SourceCustom}
	}
	jobs := []model.Job{mk("first"), mk("second"), mk("third")}

	ranked := testEngine().Rank(jobs, model.JobQuery{Keywords: ""})

	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Score < ranked[i].Score {
			t.Errorf("results not descending at %d: %v < %v", i, ranked[i-1].Score, ranked[i].Score)
		}
	}
	for i, want := range []string{"first", "second", "third"} {
		if ranked[i].Job.ID != want {
			t.Errorf("tie order broken at %d: got %q, want %q", i, ranked[i].Job.ID, want)
		}
	}
}

// ── Recency ────────────────────────────────────────────────────────────────

func TestRankOne_NewerPostingScoresHigher(t *testing.T) {
	e := testEngine()
	q := model.JobQuery{Keywords: "swift"}
	base := model.Job{Title: "Swift Developer", Company: "Acme", Source: model.SourceCustom}

	newer := base
	newer.PostedAt = time.Now().Add(-1 * time.Hour)
	older := base
	older.PostedAt = time.Now().Add(-60 * 24 * time.Hour)

	if ns, os := e.RankOne(newer, q).Score, e.RankOne(older, q).Score; ns <= os {
		t.Errorf("newer posting %v should outscore older %v", ns, os)
	}
}

func TestRankOne_FutureDatedPostingExceedsRecencyWeight(t *testing.T) {
	e := testEngine()
	job := model.Job{
		Title:    "Unmatched Title",
		Company:  "Nobody",
		PostedAt: time.Now().Add(48 * time.Hour),
		Source:   model.SourceLinkedIn,
	}

	// Text factors are 0, source is 0.1*1.0; anything beyond that is the
	// unclamped recency factor pushing past its weight.
	got := e.RankOne(job, model.JobQuery{Keywords: "zzznotindexed"}).Score
	if got <= 0.1+rank.DefaultWeights().Recency {
		t.Errorf("future-dated score %v should exceed source + full recency weight", got)
	}
}

// ── Source authority ───────────────────────────────────────────────────────

func TestRankOne_SourceAuthorityOrdering(t *testing.T) {
	e := testEngine()
	q := model.JobQuery{Keywords: ""}
	now := time.Now()

	score := func(src model.JobSource) float64 {
		return e.RankOne(model.Job{Title: "Role", Company: "Co", PostedAt: now, Source: src}, q).Score
	}

	ordered := []model.JobSource{
		model.SourceLinkedIn,
		model.SourceIndeed,
		model.SourceGlassdoor,
		model.SourceMonster,
		model.SourceCustom,
	}
	for i := 1; i < len(ordered); i++ {
		if score(ordered[i-1]) <= score(ordered[i]) {
			t.Errorf("%s should outscore %s", ordered[i-1], ordered[i])
		}
	}

	if score(model.JobSource("weirdboard")) != score(model.SourceCustom) {
		t.Error("unknown source should fall back to the custom authority")
	}
}

// ── Explanation ────────────────────────────────────────────────────────────

func TestRankOne_ExplanationFormat(t *testing.T) {
	e := testEngine()
	job := model.Job{
		Title:    "Unmatched",
		Company:  "Nobody",
		PostedAt: time.Now().Add(-100 * 365 * 24 * time.Hour), // recency decays to 0
		Source:   model.SourceLinkedIn,
	}

	got := e.RankOne(job, model.JobQuery{Keywords: "zzznotindexed"}).Explanation
	want := "title=0.00 description=0.00 company=0.00 recency=0.00 source=0.10"
	if got != want {
		t.Errorf("Explanation = %q, want %q", got, want)
	}
}
