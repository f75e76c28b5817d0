package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medirisk/adapters/model"
	"medirisk/domain/clinical"
	"medirisk/domain/risk"
	"medirisk/internal"
	"medirisk/internal/errors"
	"medirisk/internal/history"
	"medirisk/internal/testkit"
	"medirisk/ports"
)

func quietLogger() *internal.Logger {
	return internal.NewLogger(internal.LogLevelError)
}

func newTestService(t *testing.T) (*AssessmentService, *history.MemoryStore) {
	t.Helper()
	kit, err := testkit.NewKit()
	require.NoError(t, err)
	store := history.NewMemoryStore(10)
	return NewAssessmentService(kit.Registry(), store, quietLogger()), store
}

func TestAssess_EndToEnd(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	for _, name := range service.ModelNames() {
		assessment, err := service.Assess(ctx, clinical.DefaultRecord(), name)
		require.NoError(t, err, name)

		assert.Equal(t, name, assessment.ModelName)
		assert.GreaterOrEqual(t, assessment.Probability, 0.0)
		assert.LessOrEqual(t, assessment.Probability, 1.0)
		assert.Equal(t, risk.TierFor(assessment.Probability), assessment.Tier)
		assert.Len(t, assessment.Contributions, clinical.NumFeatures)
		assert.Len(t, assessment.TopContributions(5), 5)
		assert.NotZero(t, assessment.ID)
	}

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestAssess_UnknownModel(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Assess(context.Background(), clinical.DefaultRecord(), "Gradient Boosting")
	require.Error(t, err)
	assert.Equal(t, errors.CodeModelNotFound, errors.GetCode(err))
}

func TestAssess_PredictionFailureIsDistinguishable(t *testing.T) {
	registry := model.NewRegistry(map[string]ports.Classifier{
		"Broken": &testkit.FailingClassifier{ModelName: "Broken"},
	})
	store := history.NewMemoryStore(10)
	service := NewAssessmentService(registry, store, quietLogger())

	_, err := service.Assess(context.Background(), clinical.DefaultRecord(), "Broken")
	require.Error(t, err)
	assert.Equal(t, errors.CodePredictionFailed, errors.GetCode(err))

	// A failed evaluation leaves no trace in the history log.
	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAssess_OpaqueModelGetsZeroedTopFactors(t *testing.T) {
	registry := model.NewRegistry(map[string]ports.Classifier{
		"Opaque": &testkit.OpaqueClassifier{ModelName: "Opaque", Probability: 0.42},
	})
	service := NewAssessmentService(registry, nil, quietLogger())

	assessment, err := service.Assess(context.Background(), clinical.DefaultRecord(), "Opaque")
	require.NoError(t, err)

	assert.Equal(t, risk.TierModerate, assessment.Tier)
	for _, c := range assessment.TopContributions(5) {
		assert.Zero(t, c.Percent())
	}
}

func TestAssess_NilHistoryIsAllowed(t *testing.T) {
	kit, err := testkit.NewKit()
	require.NoError(t, err)
	service := NewAssessmentService(kit.Registry(), nil, quietLogger())

	_, err = service.Assess(context.Background(), clinical.DefaultRecord(), model.DecisionTreeName)
	require.NoError(t, err)

	recent, err := service.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestSummarize(t *testing.T) {
	assessments := []*risk.Assessment{
		{Probability: 0.2, Tier: risk.TierLow},
		{Probability: 0.5, Tier: risk.TierModerate},
		{Probability: 0.8, Tier: risk.TierHigh},
	}

	summary := Summarize(assessments)

	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 0.5, summary.MeanProbability, 1e-9)
	assert.InDelta(t, 0.8, summary.MaxProbability, 1e-9)
	assert.Equal(t, 1, summary.HighCount)

	assert.Zero(t, Summarize(nil).Count)
}
