package ports

import (
	"context"

	"medirisk/domain/clinical"
)

// Classifier is a loaded, immutable, pre-trained binary classifier. Handles
// are created once at startup and shared read-only across all evaluations;
// implementations must be safe for concurrent PredictProba calls.
type Classifier interface {
	Name() string
	// PredictProba returns the probability of the positive (disease) class
	// for one encoded record.
	PredictProba(ctx context.Context, features clinical.FeatureVector) (float64, error)
}

// CompositeClassifier is a classifier built as a preprocessing pipeline around
// a named inner estimator. Explanation extraction unwraps to the inner model.
type CompositeClassifier interface {
	Classifier
	Inner() Classifier
}

// ImportanceProvider is implemented by tree-family models that expose native
// impurity-based feature importances (already non-negative and normalized).
type ImportanceProvider interface {
	FeatureImportances() []float64
}

// CoefficientProvider is implemented by linear models that expose per-feature
// coefficients. Scores are derived by absolute value and L1 normalization.
type CoefficientProvider interface {
	Coefficients() []float64
}

// ModelRegistry maps display names to loaded classifiers. It is populated
// once at process start and read-only thereafter.
type ModelRegistry interface {
	Get(name string) (Classifier, bool)
	Names() []string
}
