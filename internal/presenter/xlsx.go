package presenter

import (
	"fmt"
	"io"

	"HealthFeas/internal/domain/models"

	"github.com/xuri/excelize/v2"
)

// CashFlowSheet is the name of the sheet holding every venture's yearly series.
const CashFlowSheet = "Cash Flows"

// Sheet names cannot contain '/', so they differ from titles.
var sheetNames = map[models.VentureID]string{
	models.VentureDiagnostics:    "Diagnostics",
	models.VentureTeleWellness:   "Tele-Wellness",
	models.VentureCosmeticStudio: "Cosmetic Studio",
}

// SheetName returns the workbook sheet used for a venture.
func SheetName(id models.VentureID) string {
	if n, ok := sheetNames[id]; ok {
		return n
	}
	return string(id)
}

// WriteWorkbook writes an XLSX with one metric sheet per result, in order, and a
// cash flow sheet with one column per venture.
func WriteWorkbook(w io.Writer, results []models.ScenarioResult) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("workbook style: %w", err)
	}

	for i, r := range results {
		name := SheetName(r.Venture)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("new sheet %s: %w", name, err)
		}
		if err := writeMetricSheet(f, name, r, bold); err != nil {
			return err
		}
	}

	if len(results) == 0 {
		if err := f.SetSheetName("Sheet1", CashFlowSheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	} else if _, err := f.NewSheet(CashFlowSheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	if err := writeCashFlowSheet(f, results, bold); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeMetricSheet(f *excelize.File, sheet string, r models.ScenarioResult, bold int) error {
	if err := f.SetCellValue(sheet, "A1", Title(r.Venture)); err != nil {
		return fmt.Errorf("%s title: %w", sheet, err)
	}
	if err := f.SetSheetRow(sheet, "A3", &[]interface{}{"Metric", "Value"}); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	for i, row := range MetricTable(r) {
		cell, err := excelize.CoordinatesToCellName(1, 4+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{row.Metric, row.Value}); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i, err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "B3", bold); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "B", 28)
}

func writeCashFlowSheet(f *excelize.File, results []models.ScenarioResult, bold int) error {
	header := []interface{}{"Year"}
	maxYears := 0
	for _, r := range results {
		header = append(header, Title(r.Venture))
		if n := len(r.Flows); n > maxYears {
			maxYears = n
		}
	}
	if err := f.SetSheetRow(CashFlowSheet, "A1", &header); err != nil {
		return fmt.Errorf("cash flow header: %w", err)
	}

	for t := 0; t < maxYears; t++ {
		row := []interface{}{t}
		for _, r := range results {
			if t < len(r.Flows) {
				row = append(row, r.Flows[t])
			} else {
				row = append(row, nil)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, t+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(CashFlowSheet, cell, &row); err != nil {
			return fmt.Errorf("cash flow year %d: %w", t, err)
		}
	}

	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(CashFlowSheet, "A1", last+"1", bold); err != nil {
		return err
	}
	return f.SetColWidth(CashFlowSheet, "B", maxCol(last), 26)
}

func maxCol(last string) string {
	if last == "A" {
		return "B"
	}
	return last
}
