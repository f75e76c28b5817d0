package model

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"medirisk/domain/clinical"
	"medirisk/ports"
)

// LogisticRegression is a binary linear classifier over the clinical schema.
type LogisticRegression struct {
	name         string
	coefficients []float64
	intercept    float64
}

// NewLogisticRegression validates coefficient width against the schema.
func NewLogisticRegression(name string, coefficients []float64, intercept float64) (*LogisticRegression, error) {
	if len(coefficients) != clinical.NumFeatures {
		return nil, fmt.Errorf("logistic model %q: %d coefficients, want %d", name, len(coefficients), clinical.NumFeatures)
	}
	return &LogisticRegression{
		name:         name,
		coefficients: coefficients,
		intercept:    intercept,
	}, nil
}

func (m *LogisticRegression) Name() string {
	return m.name
}

// PredictProba computes sigmoid(w·x + b) for the positive class.
func (m *LogisticRegression) PredictProba(ctx context.Context, features clinical.FeatureVector) (float64, error) {
	if len(features) != len(m.coefficients) {
		return 0, fmt.Errorf("feature vector has %d fields, model expects %d", len(features), len(m.coefficients))
	}
	z := floats.Dot(m.coefficients, features.Values()) + m.intercept
	return sigmoid(z), nil
}

// Coefficients exposes the linear weights for explanation extraction.
func (m *LogisticRegression) Coefficients() []float64 {
	return m.coefficients
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// StandardScaler centers and scales features with training-time statistics.
type StandardScaler struct {
	mean  []float64
	scale []float64
}

// NewStandardScaler validates parameter widths against the schema.
func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	if len(mean) != clinical.NumFeatures || len(scale) != clinical.NumFeatures {
		return nil, fmt.Errorf("scaler has %d/%d parameters, want %d", len(mean), len(scale), clinical.NumFeatures)
	}
	for i, s := range scale {
		if s == 0 {
			return nil, fmt.Errorf("scaler column %d has zero scale", i)
		}
	}
	return &StandardScaler{mean: mean, scale: scale}, nil
}

// Transform returns a standardized copy of the vector.
func (s *StandardScaler) Transform(features clinical.FeatureVector) (clinical.FeatureVector, error) {
	if len(features) != len(s.mean) {
		return nil, fmt.Errorf("feature vector has %d fields, scaler expects %d", len(features), len(s.mean))
	}
	out := make(clinical.FeatureVector, len(features))
	for i, x := range features {
		out[i] = (x - s.mean[i]) / s.scale[i]
	}
	return out, nil
}

// Pipeline is a composite classifier: a preprocessing step around a named
// inner estimator, mirroring how the linear model was trained.
type Pipeline struct {
	name   string
	scaler *StandardScaler
	inner  ports.Classifier
}

// NewPipeline wraps an estimator with its training-time scaler.
func NewPipeline(name string, scaler *StandardScaler, inner ports.Classifier) *Pipeline {
	return &Pipeline{name: name, scaler: scaler, inner: inner}
}

func (p *Pipeline) Name() string {
	return p.name
}

// PredictProba standardizes the vector, then delegates to the inner model.
func (p *Pipeline) PredictProba(ctx context.Context, features clinical.FeatureVector) (float64, error) {
	scaled, err := p.scaler.Transform(features)
	if err != nil {
		return 0, err
	}
	return p.inner.PredictProba(ctx, scaled)
}

// Inner exposes the wrapped estimator for explanation extraction.
func (p *Pipeline) Inner() ports.Classifier {
	return p.inner
}
