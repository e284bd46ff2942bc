package report

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	monthsSheet = "Meses"
	kpiSheet    = "Indicadores"
)

// renderWorkforce writes the workforce report as an xlsx workbook: one row
// per month with a cost column per branch, plus a KPI sheet.
func renderWorkforce(w report.Workforce, branchNames map[string]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", monthsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(kpiSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1F4E78"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}

	branchIDs := make([]string, 0)
	seen := map[string]struct{}{}
	for _, m := range w.Months {
		for id := range m.CostByBranch {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				branchIDs = append(branchIDs, id)
			}
		}
	}
	sort.Strings(branchIDs)

	header := []interface{}{"Mes", "Plantilla", "Altas", "Bajas", "Costo", "Bonos"}
	for _, id := range branchIDs {
		name := branchNames[id]
		if name == "" {
			name = id
		}
		header = append(header, "Costo "+name)
	}
	if err := f.SetSheetRow(monthsSheet, "A1", &header); err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(monthsSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}

	for i, m := range w.Months {
		row := []interface{}{
			m.Label,
			m.Headcount,
			m.Hires,
			m.Terminations,
			m.Cost.InexactFloat64(),
			m.Bonuses.InexactFloat64(),
		}
		for _, id := range branchIDs {
			row = append(row, m.CostByBranch[id].InexactFloat64())
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(monthsSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if n := len(w.Months); n > 0 {
		if err := f.SetCellStyle(monthsSheet, "E2", fmt.Sprintf("%s%d", lastCol, n+1), moneyStyle); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(monthsSheet, "A", "A", 18); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(monthsSheet, "B", lastCol, 14); err != nil {
		return nil, err
	}

	kpis := [][]interface{}{
		{"Indicador", "Valor"},
		{"Costo total", w.KPIs.TotalCost.InexactFloat64()},
		{"Bonos totales", w.KPIs.TotalBonuses.InexactFloat64()},
		{"Plantilla promedio", w.KPIs.AverageHeadcount.InexactFloat64()},
		{"Plantilla final", w.KPIs.FinalHeadcount},
		{"Altas", w.KPIs.TotalHires},
		{"Bajas", w.KPIs.TotalTerminations},
	}
	for i, row := range kpis {
		row := row
		if err := f.SetSheetRow(kpiSheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(kpiSheet, "A1", "B1", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(kpiSheet, "A", "A", 22); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
