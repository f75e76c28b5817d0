package app

import (
	"sort"

	"github.com/montanaflynn/stats"

	"medirisk/domain/clinical"
	"medirisk/domain/risk"
	"medirisk/ports"
)

// ExtractContributions derives a ranked feature-contribution set from a model
// handle. Three model families share one output shape through capability
// checks rather than the caller knowing which family is active:
//
//  1. a composite pipeline is unwrapped to its inner estimator;
//  2. tree-family models contribute their native impurity importances;
//  3. linear models contribute |coefficient| / sum|coefficients|;
//  4. anything else yields an all-zero vector, a defined degenerate
//     fallback rather than an error.
//
// The result always has exactly one non-negative entry per schema column,
// sorted descending by score.
func ExtractContributions(classifier ports.Classifier) []risk.Contribution {
	scores := importanceScores(unwrap(classifier))

	contributions := make([]risk.Contribution, clinical.NumFeatures)
	for i, feature := range clinical.FeatureColumns {
		contributions[i] = risk.Contribution{
			Feature: feature,
			Label:   clinical.FeatureLabels[feature],
			Score:   scores[i],
		}
	}
	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].Score > contributions[j].Score
	})
	return contributions
}

func unwrap(classifier ports.Classifier) ports.Classifier {
	if composite, ok := classifier.(ports.CompositeClassifier); ok {
		return composite.Inner()
	}
	return classifier
}

func importanceScores(estimator ports.Classifier) []float64 {
	switch m := estimator.(type) {
	case ports.ImportanceProvider:
		return clampScores(m.FeatureImportances())
	case ports.CoefficientProvider:
		return normalizeCoefficients(m.Coefficients())
	default:
		return make([]float64, clinical.NumFeatures)
	}
}

// clampScores copies importances into schema width, padding or truncating a
// mismatched vector instead of failing the whole explanation.
func clampScores(raw []float64) []float64 {
	scores := make([]float64, clinical.NumFeatures)
	copy(scores, raw)
	for i, s := range scores {
		if s < 0 {
			scores[i] = 0
		}
	}
	return scores
}

// normalizeCoefficients converts signed linear weights into non-negative
// L1-normalized scores so they are comparable with tree importances.
func normalizeCoefficients(coefficients []float64) []float64 {
	scores := make([]float64, clinical.NumFeatures)
	for i := 0; i < len(scores) && i < len(coefficients); i++ {
		c := coefficients[i]
		if c < 0 {
			c = -c
		}
		scores[i] = c
	}
	total, err := stats.Sum(scores)
	if err != nil || total == 0 {
		return make([]float64, clinical.NumFeatures)
	}
	for i := range scores {
		scores[i] /= total
	}
	return scores
}
