package ui

import (
	"net/http"
	"strconv"

	"medirisk/domain/clinical"
	"medirisk/internal/errors"
)

// parseAssessForm maps the submitted form into a patient record plus the
// chosen model name. Categorical fields pass through as-is: values outside
// the option lists are coded to their schema defaults by the encoder, not
// rejected here. Numeric fields must at least parse.
func parseAssessForm(r *http.Request) (clinical.PatientRecord, string, error) {
	if err := r.ParseForm(); err != nil {
		return clinical.PatientRecord{}, "", errors.InvalidInput("malformed form submission")
	}

	record := clinical.PatientRecord{
		Gender:         r.FormValue("gender"),
		ChestPain:      r.FormValue("chest_pain"),
		RestingECG:     r.FormValue("resting_ecg"),
		ExerciseAngina: r.FormValue("exercise_angina"),
		STSlope:        r.FormValue("st_slope"),
		Thalassemia:    r.FormValue("thalassemia"),
	}

	numerics := []struct {
		field string
		label string
		dst   *float64
	}{
		{"age", "Age", &record.Age},
		{"resting_bp", "Resting Blood Pressure", &record.RestingBP},
		{"cholesterol", "Cholesterol", &record.Cholesterol},
		{"glucose", "Fasting Blood Sugar", &record.Glucose},
		{"max_heart_rate", "Maximum Heart Rate", &record.MaxHeartRate},
		{"st_depression", "ST Depression", &record.STDepression},
		{"major_vessels", "Major Vessels", &record.MajorVessels},
	}
	for _, n := range numerics {
		value, err := strconv.ParseFloat(r.FormValue(n.field), 64)
		if err != nil {
			return clinical.PatientRecord{}, "", errors.InvalidInput(n.label + " must be numeric")
		}
		*n.dst = value
	}

	return record, r.FormValue("model"), nil
}
