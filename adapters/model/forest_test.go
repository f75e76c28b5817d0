package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomForest_AveragesMemberTrees(t *testing.T) {
	// Two stumps on ca: one votes 0.2/0.8, the other 0.4/0.6.
	trees := [][]TreeNode{
		{
			{Feature: 11, Threshold: 0.5, Left: 1, Right: 2},
			{Feature: -1, Value: []float64{80, 20}},
			{Feature: -1, Value: []float64{20, 80}},
		},
		{
			{Feature: 11, Threshold: 0.5, Left: 1, Right: 2},
			{Feature: -1, Value: []float64{60, 40}},
			{Feature: -1, Value: []float64{40, 60}},
		},
	}
	forest, err := NewRandomForest("test", trees, testImportances())
	require.NoError(t, err)

	ctx := context.Background()

	v := zeroVector()
	p, err := forest.PredictProba(ctx, v)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, p, 1e-9) // mean(0.2, 0.4)

	v[11] = 2
	p, err = forest.PredictProba(ctx, v)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, p, 1e-9) // mean(0.8, 0.6)
}

func TestRandomForest_RejectsEmptyEnsemble(t *testing.T) {
	_, err := NewRandomForest("test", nil, testImportances())
	assert.Error(t, err)
}

func TestRandomForest_ValidatesEveryTree(t *testing.T) {
	trees := [][]TreeNode{
		{
			{Feature: 11, Threshold: 0.5, Left: 1, Right: 2},
			{Feature: -1, Value: []float64{1, 1}},
			{Feature: -1, Value: []float64{1, 1}},
		},
		{
			{Feature: 99, Threshold: 0.5, Left: 1, Right: 2},
			{Feature: -1, Value: []float64{1, 1}},
			{Feature: -1, Value: []float64{1, 1}},
		},
	}
	_, err := NewRandomForest("test", trees, testImportances())
	assert.Error(t, err)
}
