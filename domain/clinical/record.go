package clinical

// PatientRecord holds the raw, human-entered vitals for one assessment.
// Numeric fields are expected to already sit inside the input-widget ranges;
// categorical fields come from the closed option lists below.
type PatientRecord struct {
	Age            float64
	Gender         string
	ChestPain      string
	RestingBP      float64
	Cholesterol    float64
	Glucose        float64
	RestingECG     string
	MaxHeartRate   float64
	ExerciseAngina string
	STDepression   float64
	STSlope        string
	MajorVessels   float64
	Thalassemia    string
}

// Option lists for the categorical input widgets. Order matters for display.
var (
	GenderOptions = []string{"Male", "Female"}

	ChestPainOptions = []string{
		"Typical Angina",
		"Atypical Angina",
		"Non-anginal Pain",
		"Asymptomatic",
	}

	RestingECGOptions = []string{
		"Normal",
		"ST-T abnormality",
		"LV hypertrophy",
	}

	ExerciseAnginaOptions = []string{"No", "Yes"}

	STSlopeOptions = []string{
		"Upsloping",
		"Flat",
		"Downsloping",
	}

	ThalassemiaOptions = []string{
		"Normal",
		"Fixed Defect",
		"Reversible Defect",
	}
)

// NumericRange describes the bounds and default of one numeric input widget.
type NumericRange struct {
	Min, Max, Default float64
	Step              float64
}

// Widget ranges for the numeric inputs, matching the original clinical form.
var (
	AgeRange          = NumericRange{Min: 1, Max: 100, Default: 45, Step: 1}
	RestingBPRange    = NumericRange{Min: 80, Max: 200, Default: 120, Step: 1}
	CholesterolRange  = NumericRange{Min: 100, Max: 400, Default: 190, Step: 1}
	MaxHeartRateRange = NumericRange{Min: 40, Max: 200, Default: 150, Step: 1}
	GlucoseRange      = NumericRange{Min: 50, Max: 300, Default: 100, Step: 1}
	STDepressionRange = NumericRange{Min: 0.0, Max: 6.0, Default: 1.0, Step: 0.1}
	MajorVesselsRange = NumericRange{Min: 0, Max: 4, Default: 0, Step: 1}
)

// DefaultRecord returns a record pre-filled with the form's default values.
func DefaultRecord() PatientRecord {
	return PatientRecord{
		Age:            AgeRange.Default,
		Gender:         "Male",
		ChestPain:      "Typical Angina",
		RestingBP:      RestingBPRange.Default,
		Cholesterol:    CholesterolRange.Default,
		Glucose:        GlucoseRange.Default,
		RestingECG:     "Normal",
		MaxHeartRate:   MaxHeartRateRange.Default,
		ExerciseAngina: "No",
		STDepression:   STDepressionRange.Default,
		STSlope:        "Upsloping",
		MajorVessels:   MajorVesselsRange.Default,
		Thalassemia:    "Normal",
	}
}
