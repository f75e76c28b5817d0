package testkit

import (
	"context"
	"fmt"

	"medirisk/adapters/model"
	"medirisk/domain/clinical"
	"medirisk/ports"
)

// Kit assembles small synthetic classifiers so tests and demos can run the
// full assessment path without artifact files.
type Kit struct {
	registry *model.Registry
}

// NewKit builds a registry with one model per family, under the standard
// display names.
func NewKit() (*Kit, error) {
	logistic, err := buildSyntheticLogistic()
	if err != nil {
		return nil, err
	}
	tree, err := buildSyntheticTree()
	if err != nil {
		return nil, err
	}
	forest, err := buildSyntheticForest()
	if err != nil {
		return nil, err
	}

	registry := model.NewRegistry(map[string]ports.Classifier{
		model.LogisticRegressionName: logistic,
		model.DecisionTreeName:       tree,
		model.RandomForestName:       forest,
	})
	return &Kit{registry: registry}, nil
}

// Registry returns the synthetic model registry.
func (k *Kit) Registry() *model.Registry {
	return k.registry
}

func buildSyntheticLogistic() (ports.Classifier, error) {
	coefficients := []float64{0.2, 0.6, 0.5, 0.3, 0.25, -0.1, 0.15, -0.5, 0.4, 0.45, 0.3, 0.8, 0.7}
	inner, err := model.NewLogisticRegression(model.LogisticRegressionName, coefficients, -0.2)
	if err != nil {
		return nil, err
	}
	mean := []float64{54, 0.7, 3.2, 131, 247, 0.15, 1.0, 150, 0.33, 1.0, 1.6, 0.7, 4.7}
	scale := []float64{9, 0.5, 1.0, 17.5, 52, 0.36, 1.0, 23, 0.47, 1.2, 0.6, 0.95, 1.9}
	scaler, err := model.NewStandardScaler(mean, scale)
	if err != nil {
		return nil, err
	}
	return model.NewPipeline(model.LogisticRegressionName, scaler, inner), nil
}

func buildSyntheticTree() (ports.Classifier, error) {
	// thal <= 4.5 splits healthy-ish from defect codes; ca refines.
	nodes := []model.TreeNode{
		{Feature: 12, Threshold: 4.5, Left: 1, Right: 4},
		{Feature: 11, Threshold: 0.5, Left: 2, Right: 3},
		{Feature: -1, Value: []float64{80, 20}},
		{Feature: -1, Value: []float64{30, 30}},
		{Feature: 9, Threshold: 1.5, Left: 5, Right: 6},
		{Feature: -1, Value: []float64{20, 30}},
		{Feature: -1, Value: []float64{5, 45}},
	}
	importances := []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0.25, 0, 0.3, 0.45}
	return model.NewDecisionTree(model.DecisionTreeName, nodes, importances)
}

func buildSyntheticForest() (ports.Classifier, error) {
	trees := [][]model.TreeNode{
		{
			{Feature: 11, Threshold: 0.5, Left: 1, Right: 2},
			{Feature: -1, Value: []float64{70, 30}},
			{Feature: -1, Value: []float64{20, 60}},
		},
		{
			{Feature: 12, Threshold: 4.5, Left: 1, Right: 2},
			{Feature: -1, Value: []float64{75, 25}},
			{Feature: -1, Value: []float64{15, 55}},
		},
	}
	importances := []float64{0, 0, 0.1, 0, 0, 0, 0, 0.1, 0, 0.1, 0, 0.35, 0.35}
	return model.NewRandomForest(model.RandomForestName, trees, importances)
}

// OpaqueClassifier predicts a fixed probability and exposes no importance
// data at all, for exercising the degenerate explanation fallback.
type OpaqueClassifier struct {
	ModelName   string
	Probability float64
}

func (m *OpaqueClassifier) Name() string {
	return m.ModelName
}

func (m *OpaqueClassifier) PredictProba(ctx context.Context, features clinical.FeatureVector) (float64, error) {
	return m.Probability, nil
}

// FailingClassifier fails every prediction, for exercising the
// prediction-failed path.
type FailingClassifier struct {
	ModelName string
}

func (m *FailingClassifier) Name() string {
	return m.ModelName
}

func (m *FailingClassifier) PredictProba(ctx context.Context, features clinical.FeatureVector) (float64, error) {
	return 0, fmt.Errorf("model backend unavailable")
}
