package ui

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medirisk/adapters/model"
	"medirisk/app"
	"medirisk/internal"
	"medirisk/internal/history"
	"medirisk/internal/testkit"
)

func newTestApp(t *testing.T, loadError string) *App {
	t.Helper()
	kit, err := testkit.NewKit()
	require.NoError(t, err)
	service := app.NewAssessmentService(kit.Registry(), history.NewMemoryStore(10), internal.NewLogger(internal.LogLevelError))
	uiApp, err := NewApp(service, internal.NewLogger(internal.LogLevelError), Config{LoadError: loadError})
	require.NoError(t, err)
	return uiApp
}

func defaultForm() url.Values {
	return url.Values{
		"age":             {"45"},
		"gender":          {"Male"},
		"chest_pain":      {"Typical Angina"},
		"resting_bp":      {"120"},
		"cholesterol":     {"190"},
		"glucose":         {"100"},
		"resting_ecg":     {"Normal"},
		"max_heart_rate":  {"150"},
		"exercise_angina": {"No"},
		"st_depression":   {"1.0"},
		"st_slope":        {"Upsloping"},
		"major_vessels":   {"0"},
		"thalassemia":     {"Normal"},
		"model":           {model.LogisticRegressionName},
	}
}

func postForm(app *App, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleIndex(t *testing.T) {
	app := newTestApp(t, "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Patient Clinical Information")
	assert.Contains(t, body, model.LogisticRegressionName)
	assert.Contains(t, body, model.RandomForestName)
	assert.NotContains(t, body, "Model loading failed")
}

func TestHandleIndex_ShowsLoadError(t *testing.T) {
	app := newTestApp(t, "artifact directory missing")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), "Model loading failed")
}

func TestHandleAssess_RendersResultPanel(t *testing.T) {
	app := newTestApp(t, "")

	rec := postForm(app, defaultForm())

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "RISK")
	assert.Contains(t, body, "Top Contributing Factors")
	assert.Contains(t, body, model.LogisticRegressionName)
}

func TestHandleAssess_UnknownModel(t *testing.T) {
	app := newTestApp(t, "")

	form := defaultForm()
	form.Set("model", "Missing Model")
	rec := postForm(app, form)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Model not loaded properly.")
	// Errors retarget away from the result panel so a prior result survives.
	assert.Equal(t, "#assess-error", rec.Header().Get("HX-Retarget"))
}

func TestHandleAssess_RejectsNonNumericInput(t *testing.T) {
	app := newTestApp(t, "")

	form := defaultForm()
	form.Set("age", "forty-five")
	rec := postForm(app, form)

	assert.Contains(t, rec.Body.String(), "Age must be numeric")
	assert.Equal(t, "#assess-error", rec.Header().Get("HX-Retarget"))
}

func TestHandleHistory(t *testing.T) {
	app := newTestApp(t, "")

	// Record one assessment, then read it back from the history page.
	postForm(app, defaultForm())

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, model.LogisticRegressionName)
	assert.Contains(t, body, "runs")
}

func TestHandleHistoryExport(t *testing.T) {
	app := newTestApp(t, "")
	postForm(app, defaultForm())

	req := httptest.NewRequest(http.MethodGet, "/history/export", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, rec.Body.Len())
}

func TestHandleAbout(t *testing.T) {
	app := newTestApp(t, "")

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "MediRisk")
}
