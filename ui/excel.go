package ui

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"medirisk/domain/risk"
)

// handleHistoryExport streams the assessment history as an Excel workbook.
func (a *App) handleHistoryExport(w http.ResponseWriter, r *http.Request) {
	recent, err := a.assessments.History(r.Context(), 500)
	if err != nil {
		a.logger.Error("failed to load history for export: %v", err)
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	file, err := buildHistoryWorkbook(recent)
	if err != nil {
		a.logger.Error("failed to build export workbook: %v", err)
		http.Error(w, "Export failed", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="assessments.xlsx"`)
	if err := file.Write(w); err != nil {
		a.logger.Error("failed to stream export workbook: %v", err)
	}
}

func buildHistoryWorkbook(assessments []*risk.Assessment) (*excelize.File, error) {
	const sheet = "Assessments"

	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []interface{}{"ID", "Timestamp", "Model", "Probability", "Risk Tier", "Top Factor"}
	if err := file.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}

	for i, a := range assessments {
		topFactor := ""
		if top := a.TopContributions(1); len(top) > 0 {
			topFactor = fmt.Sprintf("%s (%.2f%%)", top[0].Label, top[0].Percent())
		}
		row := []interface{}{
			a.ID.String(),
			a.CreatedAt.Format("2006-01-02 15:04:05"),
			a.ModelName,
			a.Probability,
			a.Tier.String(),
			topFactor,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return file, nil
}
