package model

import (
	"encoding/json"
	"fmt"
	"os"

	"medirisk/domain/clinical"
	"medirisk/ports"
)

// Artifact kinds understood by the loader.
const (
	KindLogisticRegression = "logistic_regression"
	KindDecisionTree       = "decision_tree"
	KindRandomForest       = "random_forest"
)

// Artifact is the on-disk JSON form of one exported classifier. It is the Go
// counterpart of the original pickled estimators: parameters only, no code.
type Artifact struct {
	Name     string          `json:"name"`
	Kind     string          `json:"kind"`
	Features []string        `json:"features"`
	Logistic *LogisticParams `json:"logistic,omitempty"`
	Tree     *TreeParams     `json:"tree,omitempty"`
	Forest   *ForestParams   `json:"forest,omitempty"`
}

// LogisticParams holds an exported linear model, optionally wrapped in a
// standardization step (the original trained it inside a scaler pipeline).
type LogisticParams struct {
	Coefficients []float64     `json:"coefficients"`
	Intercept    float64       `json:"intercept"`
	Scaler       *ScalerParams `json:"scaler,omitempty"`
}

// ScalerParams holds per-feature standardization parameters.
type ScalerParams struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// TreeParams holds one exported decision tree plus its impurity importances.
type TreeParams struct {
	Nodes       []TreeNode `json:"nodes"`
	Importances []float64  `json:"importances"`
}

// TreeNode is one node of an exported tree. Feature == -1 marks a leaf, in
// which case Value carries the training-sample class counts [negative, positive].
// Split nodes route left when x[Feature] <= Threshold.
type TreeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value,omitempty"`
}

// ForestParams holds an exported tree ensemble with ensemble-level importances.
type ForestParams struct {
	Trees       [][]TreeNode `json:"trees"`
	Importances []float64    `json:"importances"`
}

// LoadArtifact reads and validates one artifact file and builds the
// corresponding classifier.
func LoadArtifact(path string) (ports.Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}

	return BuildClassifier(&artifact)
}

// BuildClassifier constructs a classifier from a decoded artifact.
func BuildClassifier(artifact *Artifact) (ports.Classifier, error) {
	if err := validateSchema(artifact.Features); err != nil {
		return nil, err
	}

	switch artifact.Kind {
	case KindLogisticRegression:
		if artifact.Logistic == nil {
			return nil, fmt.Errorf("artifact %q: missing logistic parameters", artifact.Name)
		}
		return buildLogistic(artifact.Name, artifact.Logistic)

	case KindDecisionTree:
		if artifact.Tree == nil {
			return nil, fmt.Errorf("artifact %q: missing tree parameters", artifact.Name)
		}
		return NewDecisionTree(artifact.Name, artifact.Tree.Nodes, artifact.Tree.Importances)

	case KindRandomForest:
		if artifact.Forest == nil {
			return nil, fmt.Errorf("artifact %q: missing forest parameters", artifact.Name)
		}
		return NewRandomForest(artifact.Name, artifact.Forest.Trees, artifact.Forest.Importances)

	default:
		return nil, fmt.Errorf("artifact %q: unknown kind %q", artifact.Name, artifact.Kind)
	}
}

// validateSchema rejects artifacts whose column order drifted from the
// encoder's schema. A silent mismatch would miscode every input.
func validateSchema(features []string) error {
	if len(features) != clinical.NumFeatures {
		return fmt.Errorf("artifact schema has %d features, want %d", len(features), clinical.NumFeatures)
	}
	for i, name := range features {
		if name != clinical.FeatureColumns[i] {
			return fmt.Errorf("artifact schema column %d is %q, want %q", i, name, clinical.FeatureColumns[i])
		}
	}
	return nil
}

func buildLogistic(name string, params *LogisticParams) (ports.Classifier, error) {
	inner, err := NewLogisticRegression(name, params.Coefficients, params.Intercept)
	if err != nil {
		return nil, err
	}
	if params.Scaler == nil {
		return inner, nil
	}
	scaler, err := NewStandardScaler(params.Scaler.Mean, params.Scaler.Scale)
	if err != nil {
		return nil, err
	}
	return NewPipeline(name, scaler, inner), nil
}
