// Package store persists discovered jobs in PostgreSQL.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"careerpilot/discovery-service/internal/model"
)

// Repository saves and loads job offers. source_url is the storage
// uniqueness key: saving a job whose URL already exists is a no-op.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Save inserts jobs, skipping any whose source_url is already stored.
// Returns the number actually inserted. Jobs round-trip losslessly:
// every field, including the optional ones, survives Save/Load.
func (r *Repository) Save(ctx context.Context, jobs []model.Job) (int, error) {
	inserted := 0
	for _, j := range jobs {
		var salaryMin, salaryMax *int
		var salaryCurrency, salaryPeriod *string
		if j.Salary != nil {
			salaryMin = &j.Salary.Min
			salaryMax = &j.Salary.Max
			salaryCurrency = &j.Salary.Currency
			period := string(j.Salary.Period)
			salaryPeriod = &period
		}

		tag, err := r.pool.Exec(ctx,
			`INSERT INTO jobs (id, title, company, description, location,
			        salary_min, salary_max, salary_currency, salary_period,
			        posted_at, source_url, source)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			 ON CONFLICT (source_url) DO NOTHING`,
			j.ID, j.Title, j.Company, j.Description, j.Location,
			salaryMin, salaryMax, salaryCurrency, salaryPeriod,
			j.PostedAt, j.URL, string(j.Source),
		)
		if err != nil {
			return inserted, fmt.Errorf("insert job %s: %w", j.ID, err)
		}
		if tag.RowsAffected() > 0 {
			inserted++
		}
	}
	return inserted, nil
}

// Load returns stored jobs matching the query's structural filters
// (location, remote, salary floor). Keyword relevance is the ranking
// engine's concern, not the repository's.
func (r *Repository) Load(ctx context.Context, q model.JobQuery) ([]model.Job, error) {
	sql := `SELECT id, title, company, description, location,
	               salary_min, salary_max, salary_currency, salary_period,
	               posted_at, source_url, source
	        FROM jobs
	        WHERE 1=1`
	var args []any

	if q.Location != "" {
		args = append(args, "%"+q.Location+"%")
		sql += fmt.Sprintf(" AND location ILIKE $%d", len(args))
	}
	if q.RemoteOnly {
		sql += " AND location ILIKE '%remote%'"
	}
	if q.MinSalary > 0 {
		args = append(args, q.MinSalary)
		sql += fmt.Sprintf(" AND COALESCE(salary_max, salary_min) >= $%d", len(args))
	}
	sql += " ORDER BY posted_at DESC"

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		var salaryMin, salaryMax *int
		var salaryCurrency, salaryPeriod *string
		var source string
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.Description, &j.Location,
			&salaryMin, &salaryMax, &salaryCurrency, &salaryPeriod,
			&j.PostedAt, &j.URL, &source,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		if salaryMin != nil || salaryMax != nil {
			j.Salary = &model.SalaryRange{}
			if salaryMin != nil {
				j.Salary.Min = *salaryMin
			}
			if salaryMax != nil {
				j.Salary.Max = *salaryMax
			}
			if salaryCurrency != nil {
				j.Salary.Currency = *salaryCurrency
			}
			if salaryPeriod != nil {
				j.Salary.Period = model.PayPeriod(*salaryPeriod)
			}
		}
		j.Source = model.JobSource(source)
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}
