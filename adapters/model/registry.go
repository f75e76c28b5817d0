package model

import (
	"context"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"medirisk/internal"
	"medirisk/internal/errors"
	"medirisk/ports"
)

// Display names of the three shipped models, in menu order.
const (
	LogisticRegressionName = "Logistic Regression"
	DecisionTreeName       = "Decision Tree"
	RandomForestName       = "Random Forest"
)

// artifactFiles maps display names to artifact file names under MODEL_DIR.
var artifactFiles = map[string]string{
	LogisticRegressionName: "logistic_regression.json",
	DecisionTreeName:       "decision_tree.json",
	RandomForestName:       "random_forest.json",
}

// menuOrder is the stable presentation order for the model selector.
var menuOrder = []string{LogisticRegressionName, DecisionTreeName, RandomForestName}

// Registry holds the loaded model handles. It is populated once at startup
// and never mutated afterwards, so reads need no locking.
type Registry struct {
	models map[string]ports.Classifier
	names  []string
}

// LoadRegistry loads all three artifacts from dir concurrently. Any load
// failure fails the whole registry; the caller decides whether to degrade to
// an empty set or abort.
func LoadRegistry(ctx context.Context, dir string, logger *internal.Logger) (*Registry, error) {
	var mu sync.Mutex
	models := make(map[string]ports.Classifier, len(artifactFiles))

	g, ctx := errgroup.WithContext(ctx)
	for name, file := range artifactFiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			classifier, err := LoadArtifact(filepath.Join(dir, file))
			if err != nil {
				return errors.ModelLoadFailed(name, err)
			}
			mu.Lock()
			models[name] = classifier
			mu.Unlock()
			logger.Info("loaded model %q from %s", name, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewRegistry(models), nil
}

// NewRegistry builds a registry from pre-constructed classifiers. Names not
// in the standard menu order are appended after it.
func NewRegistry(models map[string]ports.Classifier) *Registry {
	names := make([]string, 0, len(models))
	for _, name := range menuOrder {
		if _, ok := models[name]; ok {
			names = append(names, name)
		}
	}
	for name := range models {
		if !contains(names, name) {
			names = append(names, name)
		}
	}
	return &Registry{models: models, names: names}
}

// EmptyRegistry is the degraded registry used when artifact loading fails:
// no models, every lookup misses, the UI reports the load error instead.
func EmptyRegistry() *Registry {
	return &Registry{models: map[string]ports.Classifier{}}
}

// Get returns the named model handle.
func (r *Registry) Get(name string) (ports.Classifier, bool) {
	m, ok := r.models[name]
	return m, ok
}

// Names returns model display names in menu order.
func (r *Registry) Names() []string {
	return r.names
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
