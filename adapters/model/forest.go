package model

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"medirisk/domain/clinical"
)

// RandomForest is an exported tree ensemble. The predicted probability is the
// mean of the member trees' leaf probabilities, matching the training-side
// soft-voting behavior.
type RandomForest struct {
	name        string
	trees       [][]TreeNode
	importances []float64
}

// NewRandomForest validates every member tree at load time.
func NewRandomForest(name string, trees [][]TreeNode, importances []float64) (*RandomForest, error) {
	if len(trees) == 0 {
		return nil, fmt.Errorf("forest model %q: no trees", name)
	}
	for i, nodes := range trees {
		if err := validateNodes(fmt.Sprintf("%s[tree %d]", name, i), nodes); err != nil {
			return nil, err
		}
	}
	if len(importances) != clinical.NumFeatures {
		return nil, fmt.Errorf("forest model %q: %d importances, want %d", name, len(importances), clinical.NumFeatures)
	}
	return &RandomForest{name: name, trees: trees, importances: importances}, nil
}

func (m *RandomForest) Name() string {
	return m.name
}

// PredictProba averages the member trees' positive-class probabilities.
func (m *RandomForest) PredictProba(ctx context.Context, features clinical.FeatureVector) (float64, error) {
	if len(features) != clinical.NumFeatures {
		return 0, fmt.Errorf("feature vector has %d fields, model expects %d", len(features), clinical.NumFeatures)
	}
	probs := make([]float64, len(m.trees))
	for i, nodes := range m.trees {
		p, err := traverse(nodes, features)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
		probs[i] = p
	}
	return stat.Mean(probs, nil), nil
}

// FeatureImportances exposes the ensemble's impurity-based importances.
func (m *RandomForest) FeatureImportances() []float64 {
	return m.importances
}
