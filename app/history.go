package app

import (
	"context"

	"github.com/montanaflynn/stats"

	"medirisk/domain/risk"
)

// HistorySummary aggregates the recent assessment log for the history view.
type HistorySummary struct {
	Count           int
	MeanProbability float64
	MaxProbability  float64
	HighCount       int
}

// Summarize computes summary statistics over recent assessments.
func Summarize(assessments []*risk.Assessment) HistorySummary {
	summary := HistorySummary{Count: len(assessments)}
	if len(assessments) == 0 {
		return summary
	}

	probs := make([]float64, len(assessments))
	for i, a := range assessments {
		probs[i] = a.Probability
		if a.Tier == risk.TierHigh {
			summary.HighCount++
		}
	}

	// stats errors only on empty input, which is handled above.
	summary.MeanProbability, _ = stats.Mean(probs)
	summary.MaxProbability, _ = stats.Max(probs)
	return summary
}

// HistoryWithSummary loads recent assessments and their aggregate view.
func (s *AssessmentService) HistoryWithSummary(ctx context.Context, limit int) ([]*risk.Assessment, HistorySummary, error) {
	recent, err := s.History(ctx, limit)
	if err != nil {
		return nil, HistorySummary{}, err
	}
	return recent, Summarize(recent), nil
}
