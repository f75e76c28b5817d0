package clinical

// Categorical code tables. These reproduce the Cleveland heart-disease
// dataset's historical coding verbatim; the shipped model artifacts were
// trained against these exact integer codes, so the values must not be
// renumbered even where the scheme looks arbitrary (thal: 3/6/7).
var (
	chestPainCodes = map[string]float64{
		"Typical Angina":   1,
		"Atypical Angina":  2,
		"Non-anginal Pain": 3,
		"Asymptomatic":     4,
	}

	restingECGCodes = map[string]float64{
		"Normal":           0,
		"ST-T abnormality": 1,
		"LV hypertrophy":   2,
	}

	stSlopeCodes = map[string]float64{
		"Upsloping":   1,
		"Flat":        2,
		"Downsloping": 3,
	}

	thalassemiaCodes = map[string]float64{
		"Normal":            3,
		"Fixed Defect":      6,
		"Reversible Defect": 7,
	}
)

// Defaults used when a categorical string is not in its code table. Unmapped
// values are coded, not rejected: the form constrains inputs to the option
// lists, so an unknown string is treated leniently rather than as an error.
const (
	DefaultChestPainCode   = 4
	DefaultRestingECGCode  = 0
	DefaultSTSlopeCode     = 2
	DefaultThalassemiaCode = 3
)

// FastingGlucoseThreshold is the mg/dl cutoff above which the fbs flag is set.
// The comparison is strictly greater-than: 120 itself encodes as 0.
const FastingGlucoseThreshold = 120

// Encode maps a raw patient record into the fixed-order feature vector the
// models were trained on. It is total over its domain: every input produces
// exactly NumFeatures numeric fields and there is no error path.
func Encode(r PatientRecord) FeatureVector {
	sex := 0.0
	if r.Gender == "Male" {
		sex = 1
	}

	fbs := 0.0
	if r.Glucose > FastingGlucoseThreshold {
		fbs = 1
	}

	exang := 0.0
	if r.ExerciseAngina == "Yes" {
		exang = 1
	}

	return FeatureVector{
		r.Age,
		sex,
		codeOrDefault(chestPainCodes, r.ChestPain, DefaultChestPainCode),
		r.RestingBP,
		r.Cholesterol,
		fbs,
		codeOrDefault(restingECGCodes, r.RestingECG, DefaultRestingECGCode),
		r.MaxHeartRate,
		exang,
		r.STDepression,
		codeOrDefault(stSlopeCodes, r.STSlope, DefaultSTSlopeCode),
		r.MajorVessels,
		codeOrDefault(thalassemiaCodes, r.Thalassemia, DefaultThalassemiaCode),
	}
}

func codeOrDefault(table map[string]float64, key string, fallback float64) float64 {
	if code, ok := table[key]; ok {
		return code
	}
	return fallback
}
