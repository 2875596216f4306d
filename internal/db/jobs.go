package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, title, company, application_date, status, job_url,
	skills_required, job_requirements, experience_needed, notes, salary,
	location, created_at, updated_at`

// ListJobs retrieves all tracked jobs, newest first
func (db *DB) ListJobs(ctx context.Context) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// GetJob retrieves a job by ID. Returns nil when no row matches.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)

	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}

// CreateJob inserts a new job record and returns it
func (db *DB) CreateJob(ctx context.Context, input *JobCreateInput) (*Job, error) {
	if input.Status == "" {
		input.Status = StatusApplied
	}

	skillsJSON, err := json.Marshal(input.SkillsRequired)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}
	requirementsJSON, err := json.Marshal(input.JobRequirements)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, company, application_date, status, job_url,
		        skills_required, job_requirements, experience_needed, notes,
		        salary, location)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, NULLIF($9, ''),
		        NULLIF($10, ''), NULLIF($11, ''))
		 RETURNING `+jobColumns,
		input.Title, input.Company, input.ApplicationDate, input.Status,
		input.JobURL, skillsJSON, requirementsJSON, input.ExperienceNeeded,
		input.Notes, input.Salary, input.Location)

	job, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// UpdateJob applies a partial update and returns the updated record.
// Returns nil when no row matches.
func (db *DB) UpdateJob(ctx context.Context, id uuid.UUID, input *JobUpdateInput) (*Job, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{}
	argNum := 1

	addSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argNum))
		args = append(args, value)
		argNum++
	}

	if input.Title != nil {
		addSet("title", *input.Title)
	}
	if input.Company != nil {
		addSet("company", *input.Company)
	}
	if input.ApplicationDate != nil {
		addSet("application_date", *input.ApplicationDate)
	}
	if input.Status != nil {
		addSet("status", *input.Status)
	}
	if input.JobURL != nil {
		addSet("job_url", *input.JobURL)
	}
	if input.SkillsRequired != nil {
		skillsJSON, err := json.Marshal(input.SkillsRequired)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal skills: %w", err)
		}
		addSet("skills_required", skillsJSON)
	}
	if input.JobRequirements != nil {
		requirementsJSON, err := json.Marshal(input.JobRequirements)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal requirements: %w", err)
		}
		addSet("job_requirements", requirementsJSON)
	}
	if input.ExperienceNeeded != nil {
		addSet("experience_needed", *input.ExperienceNeeded)
	}
	if input.Notes != nil {
		addSet("notes", *input.Notes)
	}
	if input.Salary != nil {
		addSet("salary", *input.Salary)
	}
	if input.Location != nil {
		addSet("location", *input.Location)
	}

	query := fmt.Sprintf(
		`UPDATE jobs SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), argNum, jobColumns)
	args = append(args, id)

	row := db.pool.QueryRow(ctx, query, args...)
	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// DeleteJob deletes a job record. Returns false when no row matches.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// scanJob reads one job row including its JSONB list columns.
func scanJob(row pgx.Row) (*Job, error) {
	var job Job
	var skillsJSON, requirementsJSON []byte

	err := row.Scan(&job.ID, &job.Title, &job.Company, &job.ApplicationDate,
		&job.Status, &job.JobURL, &skillsJSON, &requirementsJSON,
		&job.ExperienceNeeded, &job.Notes, &job.Salary, &job.Location,
		&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan job: %w", err)
	}

	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &job.SkillsRequired)
	}
	if requirementsJSON != nil {
		_ = json.Unmarshal(requirementsJSON, &job.JobRequirements)
	}

	return &job, nil
}
