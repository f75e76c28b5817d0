package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medirisk/domain/clinical"
)

func testTreeNodes() []TreeNode {
	// thal <= 4.5 routes left; left leaf is mostly negative, right splits on ca.
	return []TreeNode{
		{Feature: 12, Threshold: 4.5, Left: 1, Right: 2},
		{Feature: -1, Value: []float64{80, 20}},
		{Feature: 11, Threshold: 0.5, Left: 3, Right: 4},
		{Feature: -1, Value: []float64{25, 25}},
		{Feature: -1, Value: []float64{5, 45}},
	}
}

func testImportances() []float64 {
	imp := make([]float64, clinical.NumFeatures)
	imp[11] = 0.4
	imp[12] = 0.6
	return imp
}

func TestDecisionTree_TraversalReachesExpectedLeaf(t *testing.T) {
	tree, err := NewDecisionTree("test", testTreeNodes(), testImportances())
	require.NoError(t, err)

	ctx := context.Background()

	// thal=3 routes to the left leaf: 20/100 positive.
	v := zeroVector()
	v[12] = 3
	p, err := tree.PredictProba(ctx, v)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, p, 1e-9)

	// thal=7, ca=0 routes right then left: 25/50.
	v[12] = 7
	p, err = tree.PredictProba(ctx, v)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-9)

	// thal=7, ca=2 routes right then right: 45/50.
	v[11] = 2
	p, err = tree.PredictProba(ctx, v)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, p, 1e-9)
}

func TestDecisionTree_SplitBoundaryRoutesLeft(t *testing.T) {
	tree, err := NewDecisionTree("test", testTreeNodes(), testImportances())
	require.NoError(t, err)

	// x <= threshold routes left, so exactly 4.5 takes the left branch.
	v := zeroVector()
	v[12] = 4.5
	p, err := tree.PredictProba(context.Background(), v)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, p, 1e-9)
}

func TestDecisionTree_ValidatesStructure(t *testing.T) {
	tests := []struct {
		name  string
		nodes []TreeNode
	}{
		{"empty", nil},
		{"bad feature index", []TreeNode{{Feature: 13, Threshold: 1, Left: 1, Right: 2}, {Feature: -1, Value: []float64{1, 1}}, {Feature: -1, Value: []float64{1, 1}}}},
		{"child out of range", []TreeNode{{Feature: 0, Threshold: 1, Left: 1, Right: 9}, {Feature: -1, Value: []float64{1, 1}}}},
		{"leaf without counts", []TreeNode{{Feature: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecisionTree("test", tt.nodes, testImportances())
			assert.Error(t, err)
		})
	}
}

func TestDecisionTree_RejectsWrongImportanceWidth(t *testing.T) {
	_, err := NewDecisionTree("test", testTreeNodes(), []float64{0.5, 0.5})
	assert.Error(t, err)
}

func TestDecisionTree_ExposesImportances(t *testing.T) {
	tree, err := NewDecisionTree("test", testTreeNodes(), testImportances())
	require.NoError(t, err)
	assert.Equal(t, testImportances(), tree.FeatureImportances())
}
