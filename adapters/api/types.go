package api

import (
	"time"

	"medirisk/domain/clinical"
	"medirisk/domain/risk"
)

// AssessRequest is the JSON body for a risk evaluation. Numeric fields mirror
// the UI widget ranges; categorical fields take the documented option strings,
// with out-of-table values coded to their schema defaults by the encoder.
type AssessRequest struct {
	Model          string  `json:"model" binding:"required"`
	Age            float64 `json:"age" binding:"required"`
	Gender         string  `json:"gender" binding:"required"`
	ChestPain      string  `json:"chest_pain" binding:"required"`
	RestingBP      float64 `json:"resting_bp" binding:"required"`
	Cholesterol    float64 `json:"cholesterol" binding:"required"`
	Glucose        float64 `json:"glucose" binding:"required"`
	RestingECG     string  `json:"resting_ecg" binding:"required"`
	MaxHeartRate   float64 `json:"max_heart_rate" binding:"required"`
	ExerciseAngina string  `json:"exercise_angina" binding:"required"`
	STDepression   float64 `json:"st_depression"`
	STSlope        string  `json:"st_slope" binding:"required"`
	MajorVessels   float64 `json:"major_vessels"`
	Thalassemia    string  `json:"thalassemia" binding:"required"`
}

// Record converts the request into a domain patient record.
func (r *AssessRequest) Record() clinical.PatientRecord {
	return clinical.PatientRecord{
		Age:            r.Age,
		Gender:         r.Gender,
		ChestPain:      r.ChestPain,
		RestingBP:      r.RestingBP,
		Cholesterol:    r.Cholesterol,
		Glucose:        r.Glucose,
		RestingECG:     r.RestingECG,
		MaxHeartRate:   r.MaxHeartRate,
		ExerciseAngina: r.ExerciseAngina,
		STDepression:   r.STDepression,
		STSlope:        r.STSlope,
		MajorVessels:   r.MajorVessels,
		Thalassemia:    r.Thalassemia,
	}
}

// ContributionView is one ranked feature contribution in API responses.
type ContributionView struct {
	Feature string  `json:"feature"`
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// AssessResponse is the JSON form of one completed assessment.
type AssessResponse struct {
	ID          string             `json:"id"`
	Model       string             `json:"model"`
	Probability float64            `json:"probability"`
	Percent     int                `json:"percent"`
	Tier        string             `json:"tier"`
	Color       string             `json:"color"`
	TopFactors  []ContributionView `json:"top_factors"`
	CreatedAt   time.Time          `json:"created_at"`
}

// TopFactorCount is how many ranked contributions responses carry.
const TopFactorCount = 5

// NewAssessResponse converts a domain assessment for the wire.
func NewAssessResponse(a *risk.Assessment) AssessResponse {
	top := a.TopContributions(TopFactorCount)
	factors := make([]ContributionView, len(top))
	for i, c := range top {
		factors[i] = ContributionView{
			Feature: c.Feature,
			Label:   c.Label,
			Percent: c.Percent(),
		}
	}
	return AssessResponse{
		ID:          a.ID.String(),
		Model:       a.ModelName,
		Probability: a.Probability,
		Percent:     a.PercentValue(),
		Tier:        a.Tier.String(),
		Color:       a.Tier.Color(),
		TopFactors:  factors,
		CreatedAt:   a.CreatedAt,
	}
}
