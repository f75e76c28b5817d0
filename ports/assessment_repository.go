package ports

import (
	"context"

	"medirisk/domain/risk"
)

// AssessmentRepository persists completed assessments for the history view.
// History is additive and off the evaluation's critical path: a failed append
// never fails the assessment itself.
type AssessmentRepository interface {
	Save(ctx context.Context, assessment *risk.Assessment) error
	// Recent returns up to limit assessments, newest first.
	Recent(ctx context.Context, limit int) ([]*risk.Assessment, error)
	Count(ctx context.Context) (int, error)
}
