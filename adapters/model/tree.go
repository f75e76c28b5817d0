package model

import (
	"context"
	"fmt"

	"medirisk/domain/clinical"
)

// DecisionTree is a single exported classification tree.
type DecisionTree struct {
	name        string
	nodes       []TreeNode
	importances []float64
}

// NewDecisionTree validates the exported structure once at load time so that
// traversal never has to fail on shape.
func NewDecisionTree(name string, nodes []TreeNode, importances []float64) (*DecisionTree, error) {
	if err := validateNodes(name, nodes); err != nil {
		return nil, err
	}
	if len(importances) != clinical.NumFeatures {
		return nil, fmt.Errorf("tree model %q: %d importances, want %d", name, len(importances), clinical.NumFeatures)
	}
	return &DecisionTree{name: name, nodes: nodes, importances: importances}, nil
}

func (m *DecisionTree) Name() string {
	return m.name
}

// PredictProba walks the tree from the root and returns the positive-class
// fraction of the reached leaf's training samples.
func (m *DecisionTree) PredictProba(ctx context.Context, features clinical.FeatureVector) (float64, error) {
	if len(features) != clinical.NumFeatures {
		return 0, fmt.Errorf("feature vector has %d fields, model expects %d", len(features), clinical.NumFeatures)
	}
	return traverse(m.nodes, features)
}

// FeatureImportances exposes the tree's impurity-based importances.
func (m *DecisionTree) FeatureImportances() []float64 {
	return m.importances
}

func traverse(nodes []TreeNode, features clinical.FeatureVector) (float64, error) {
	idx := 0
	// Node count bounds the walk; a cycle in a malformed export cannot loop forever.
	for steps := 0; steps <= len(nodes); steps++ {
		node := nodes[idx]
		if node.Feature < 0 {
			return leafProbability(node)
		}
		if features[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
	return 0, fmt.Errorf("tree traversal exceeded %d steps", len(nodes))
}

func leafProbability(node TreeNode) (float64, error) {
	total := node.Value[0] + node.Value[1]
	if total <= 0 {
		return 0, fmt.Errorf("leaf node has no training samples")
	}
	return node.Value[1] / total, nil
}

func validateNodes(name string, nodes []TreeNode) error {
	if len(nodes) == 0 {
		return fmt.Errorf("tree model %q: no nodes", name)
	}
	for i, node := range nodes {
		if node.Feature < 0 {
			if len(node.Value) != 2 {
				return fmt.Errorf("tree model %q: leaf %d has %d class counts, want 2", name, i, len(node.Value))
			}
			continue
		}
		if node.Feature >= clinical.NumFeatures {
			return fmt.Errorf("tree model %q: node %d splits on feature %d, schema has %d", name, i, node.Feature, clinical.NumFeatures)
		}
		if node.Left < 0 || node.Left >= len(nodes) || node.Right < 0 || node.Right >= len(nodes) {
			return fmt.Errorf("tree model %q: node %d has child index out of range", name, i)
		}
	}
	return nil
}
