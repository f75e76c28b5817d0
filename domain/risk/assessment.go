package risk

import (
	"time"

	"github.com/google/uuid"
)

// Contribution attributes a share of the risk estimate to one input feature.
// Score is non-negative and roughly normalized across the feature set.
type Contribution struct {
	Feature string  `json:"feature"`
	Label   string  `json:"label"`
	Score   float64 `json:"score"`
}

// Percent renders the score as a display percentage.
func (c Contribution) Percent() float64 {
	return c.Score * 100
}

// Assessment is one evaluated risk result. It is created per run, owned by
// the caller, and passed explicitly between evaluation and rendering; there
// is no ambient last-result state.
type Assessment struct {
	ID            uuid.UUID      `json:"id"`
	ModelName     string         `json:"model_name"`
	Probability   float64        `json:"probability"`
	Tier          Tier           `json:"tier"`
	Contributions []Contribution `json:"contributions"` // all features, sorted descending
	CreatedAt     time.Time      `json:"created_at"`
}

// PercentValue returns the probability as a whole display percentage.
func (a *Assessment) PercentValue() int {
	return int(a.Probability * 100)
}

// TopContributions returns the k highest-scoring contributions.
func (a *Assessment) TopContributions(k int) []Contribution {
	if k > len(a.Contributions) {
		k = len(a.Contributions)
	}
	return a.Contributions[:k]
}
