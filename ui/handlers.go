package ui

import (
	"html/template"
	"net/http"

	"github.com/gomarkdown/markdown"

	"medirisk/app"
	"medirisk/domain/clinical"
	"medirisk/domain/risk"
	"medirisk/internal/errors"
)

// topFactorCount is how many ranked contributions the result panel shows.
const topFactorCount = 5

// factorView is one ranked contribution for template rendering.
type factorView struct {
	Label   string
	Percent float64
}

// resultView carries one assessment into the result-panel fragment. It is
// built fresh per evaluation and passed explicitly to the template; the
// server keeps no current-result state between requests.
type resultView struct {
	Percent    int
	Tier       string
	Color      string
	Pulses     bool
	Model      string
	TopFactors []factorView
}

func newResultView(a *risk.Assessment) resultView {
	top := a.TopContributions(topFactorCount)
	factors := make([]factorView, len(top))
	for i, c := range top {
		factors[i] = factorView{Label: c.Label, Percent: c.Percent()}
	}
	return resultView{
		Percent:    a.PercentValue(),
		Tier:       a.Tier.String(),
		Color:      a.Tier.Color(),
		Pulses:     a.Tier.Pulses(),
		Model:      a.ModelName,
		TopFactors: factors,
	}
}

// indexData is the full payload of the assessment form page.
type indexData struct {
	Record      clinical.PatientRecord
	Models      []string
	LoadError   string
	GenderOpts  []string
	ChestOpts   []string
	ECGOpts     []string
	AnginaOpts  []string
	SlopeOpts   []string
	ThalOpts    []string
	Age         clinical.NumericRange
	RestingBP   clinical.NumericRange
	Cholesterol clinical.NumericRange
	HeartRate   clinical.NumericRange
	Glucose     clinical.NumericRange
	STDep       clinical.NumericRange
	Vessels     clinical.NumericRange
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.renderTemplate(w, "index.html", indexData{
		Record:      clinical.DefaultRecord(),
		Models:      a.assessments.ModelNames(),
		LoadError:   a.loadError,
		GenderOpts:  clinical.GenderOptions,
		ChestOpts:   clinical.ChestPainOptions,
		ECGOpts:     clinical.RestingECGOptions,
		AnginaOpts:  clinical.ExerciseAnginaOptions,
		SlopeOpts:   clinical.STSlopeOptions,
		ThalOpts:    clinical.ThalassemiaOptions,
		Age:         clinical.AgeRange,
		RestingBP:   clinical.RestingBPRange,
		Cholesterol: clinical.CholesterolRange,
		HeartRate:   clinical.MaxHeartRateRange,
		Glucose:     clinical.GlucoseRange,
		STDep:       clinical.STDepressionRange,
		Vessels:     clinical.MajorVesselsRange,
	})
}

// handleAssess runs one evaluation and renders the result panel. On failure
// the error lands in a separate region (HX-Retarget) so the previously
// displayed result stays untouched.
func (a *App) handleAssess(w http.ResponseWriter, r *http.Request) {
	record, modelName, err := parseAssessForm(r)
	if err != nil {
		a.renderAssessError(w, r, err)
		return
	}

	assessment, err := a.assessments.Assess(r.Context(), record, modelName)
	if err != nil {
		a.renderAssessError(w, r, err)
		return
	}

	a.renderTemplate(w, "result_panel.html", newResultView(assessment))
}

func (a *App) renderAssessError(w http.ResponseWriter, r *http.Request, err error) {
	a.logger.Warn("assessment rejected: %v", err)
	message := "Prediction failed."
	switch errors.GetCode(err) {
	case errors.CodeModelNotFound:
		message = "Model not loaded properly."
	case errors.CodeInvalidInput:
		message = err.Error()
	}
	if isHTMX(r) {
		w.Header().Set("HX-Retarget", "#assess-error")
		w.Header().Set("HX-Reswap", "innerHTML")
	}
	a.renderTemplate(w, "assess_error.html", map[string]string{"Message": message})
}

// historyData is the payload of the assessment-history page.
type historyData struct {
	Assessments []*risk.Assessment
	Summary     app.HistorySummary
}

func (a *App) handleHistory(w http.ResponseWriter, r *http.Request) {
	recent, summary, err := a.assessments.HistoryWithSummary(r.Context(), 50)
	if err != nil {
		a.logger.Error("failed to load history: %v", err)
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}
	a.renderTemplate(w, "history.html", historyData{Assessments: recent, Summary: summary})
}

func (a *App) handleFragmentHistory(w http.ResponseWriter, r *http.Request) {
	recent, summary, err := a.assessments.HistoryWithSummary(r.Context(), 50)
	if err != nil {
		a.logger.Error("failed to load history fragment: %v", err)
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}
	a.renderTemplate(w, "history_table.html", historyData{Assessments: recent, Summary: summary})
}

func (a *App) handleAbout(w http.ResponseWriter, r *http.Request) {
	source, err := embeddedFiles.ReadFile("docs/about.md")
	if err != nil {
		a.logger.Error("missing about document: %v", err)
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	rendered := markdown.ToHTML(source, nil, nil)
	a.renderTemplate(w, "about.html", map[string]interface{}{
		"Content": template.HTML(rendered),
	})
}
