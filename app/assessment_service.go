package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"medirisk/domain/clinical"
	"medirisk/domain/risk"
	"medirisk/internal"
	"medirisk/internal/errors"
	"medirisk/ports"
)

// AssessmentService runs one risk evaluation end to end: encode the record,
// invoke the chosen model, classify the tier, and rank feature contributions.
// Each call produces a fresh Assessment owned by the caller; the service
// itself holds no evaluation state.
type AssessmentService struct {
	registry ports.ModelRegistry
	history  ports.AssessmentRepository
	logger   *internal.Logger
}

// NewAssessmentService wires the service. history may be nil to disable the
// assessment log entirely.
func NewAssessmentService(registry ports.ModelRegistry, history ports.AssessmentRepository, logger *internal.Logger) *AssessmentService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AssessmentService{
		registry: registry,
		history:  history,
		logger:   logger,
	}
}

// Assess evaluates one patient record against the named model. Failures are
// terminal for this attempt only: the caller keeps whatever result it was
// displaying before.
func (s *AssessmentService) Assess(ctx context.Context, record clinical.PatientRecord, modelName string) (*risk.Assessment, error) {
	classifier, ok := s.registry.Get(modelName)
	if !ok {
		return nil, errors.ModelNotFound(modelName)
	}

	features := clinical.Encode(record)

	probability, err := classifier.PredictProba(ctx, features)
	if err != nil {
		s.logger.Error("prediction failed for model %q: %v", modelName, err)
		return nil, errors.PredictionFailed(err)
	}

	assessment := &risk.Assessment{
		ID:            uuid.New(),
		ModelName:     modelName,
		Probability:   probability,
		Tier:          risk.TierFor(probability),
		Contributions: ExtractContributions(classifier),
		CreatedAt:     time.Now().UTC(),
	}

	s.logger.Info("assessment %s: model=%q p=%.3f tier=%s", assessment.ID, modelName, probability, assessment.Tier)

	// History is best-effort; an append failure never fails the assessment.
	if s.history != nil {
		if err := s.history.Save(ctx, assessment); err != nil {
			s.logger.Warn("failed to record assessment %s: %v", assessment.ID, err)
		}
	}

	return assessment, nil
}

// ModelNames returns the loadable model display names in menu order.
func (s *AssessmentService) ModelNames() []string {
	return s.registry.Names()
}

// History returns up to limit recent assessments, newest first. Returns an
// empty slice when the history log is disabled.
func (s *AssessmentService) History(ctx context.Context, limit int) ([]*risk.Assessment, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Recent(ctx, limit)
}
