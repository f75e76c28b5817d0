package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"medirisk/domain/risk"
)

// AssessmentRepository persists the assessment log in PostgreSQL. Used when
// DATABASE_URL is configured; otherwise the in-memory store stands in.
type AssessmentRepository struct {
	db *sqlx.DB
}

// NewAssessmentRepository creates a new assessment repository.
func NewAssessmentRepository(db *sqlx.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// EnsureSchema creates the assessments table if it does not exist.
func (r *AssessmentRepository) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS assessments (
			id UUID PRIMARY KEY,
			model_name TEXT NOT NULL,
			probability DOUBLE PRECISION NOT NULL,
			tier TEXT NOT NULL,
			contributions JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create assessments table: %w", err)
	}
	return nil
}

// Save inserts one completed assessment.
func (r *AssessmentRepository) Save(ctx context.Context, assessment *risk.Assessment) error {
	contributionsJSON, err := json.Marshal(assessment.Contributions)
	if err != nil {
		return fmt.Errorf("failed to marshal contributions: %w", err)
	}

	query := `
		INSERT INTO assessments (id, model_name, probability, tier, contributions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.ExecContext(ctx, query,
		assessment.ID,
		assessment.ModelName,
		assessment.Probability,
		string(assessment.Tier),
		contributionsJSON,
		assessment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}
	return nil
}

// Recent returns up to limit assessments, newest first.
func (r *AssessmentRepository) Recent(ctx context.Context, limit int) ([]*risk.Assessment, error) {
	query := `
		SELECT id, model_name, probability, tier, contributions, created_at
		FROM assessments
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer rows.Close()

	var assessments []*risk.Assessment
	for rows.Next() {
		var (
			a                 risk.Assessment
			id                uuid.UUID
			tier              string
			contributionsJSON []byte
			createdAt         time.Time
		)
		if err := rows.Scan(&id, &a.ModelName, &a.Probability, &tier, &contributionsJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		if err := json.Unmarshal(contributionsJSON, &a.Contributions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal contributions: %w", err)
		}
		a.ID = id
		a.Tier = risk.Tier(tier)
		a.CreatedAt = createdAt
		assessments = append(assessments, &a)
	}
	return assessments, rows.Err()
}

// Count returns the total number of stored assessments.
func (r *AssessmentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assessments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count assessments: %w", err)
	}
	return count, nil
}
