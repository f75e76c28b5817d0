package clinical

// FeatureColumns is the fixed training-time column order shared by every
// shipped model artifact. Index positions are significant: an encoded vector
// must line up with this schema exactly.
var FeatureColumns = []string{
	"age", "sex", "cp", "trestbps", "chol",
	"fbs", "restecg", "thalach", "exang",
	"oldpeak", "slope", "ca", "thal",
}

// NumFeatures is the width of a feature vector.
const NumFeatures = 13

// FeatureLabels maps schema column names to display labels for the UI.
var FeatureLabels = map[string]string{
	"age":      "Age",
	"sex":      "Gender",
	"cp":       "Chest Pain Type",
	"trestbps": "Resting Blood Pressure",
	"chol":     "Cholesterol",
	"fbs":      "Fasting Blood Sugar",
	"restecg":  "Resting ECG",
	"thalach":  "Maximum Heart Rate",
	"exang":    "Exercise Induced Angina",
	"oldpeak":  "ST Depression",
	"slope":    "ST Slope",
	"ca":       "Major Vessels",
	"thal":     "Thalassemia",
}

// FeatureVector is one patient record encoded in FeatureColumns order.
type FeatureVector []float64

// Values returns the raw slice for model consumption.
func (v FeatureVector) Values() []float64 {
	return []float64(v)
}
