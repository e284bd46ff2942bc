// Package payslip renders an already computed payroll result as a PDF
// receipt. It performs no calculation of its own.
package payslip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type Line struct {
	Concept string
	Amount  decimal.Decimal
}

type Document struct {
	EmployeeName string
	ExternalID   string
	RFC          string
	CURP         string
	NSS          string
	Position     string
	BranchName   string
	PeriodID     string
	DisplayRange string
	Policy       string

	BaseSalary      decimal.Decimal
	Earnings        []Line
	Deductions      []Line
	TotalEarnings   decimal.Decimal
	ISR             decimal.Decimal
	IMSS            decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal

	SignedAt string
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Render returns the PDF bytes of doc.
func Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Recibo de Nómina "+doc.PeriodID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Recibo de Nómina"))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Periodo: %s (%s)", doc.DisplayRange, doc.PeriodID)))
	pdf.Ln(10)

	header := [][2]string{
		{"Empleado", doc.EmployeeName},
		{"No. empleado", doc.ExternalID},
		{"Puesto", doc.Position},
		{"Sucursal", doc.BranchName},
		{"RFC", doc.RFC},
		{"CURP", doc.CURP},
		{"NSS", doc.NSS},
	}
	for _, row := range header {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	section := func(title string, lines []Line, total string, totalAmount decimal.Decimal) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(0, 8, tr(title), "B", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, l := range lines {
			pdf.CellFormat(140, 6, tr(l.Concept), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, money(l.Amount), "", 1, "R", false, 0, "")
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(140, 7, tr(total), "T", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, money(totalAmount), "T", 1, "R", false, 0, "")
		pdf.Ln(4)
	}

	earnings := append([]Line{{Concept: "Sueldo quincenal", Amount: doc.BaseSalary}}, doc.Earnings...)
	section("Percepciones", earnings, "Total percepciones", doc.TotalEarnings)

	deductions := []Line{
		{Concept: "ISR", Amount: doc.ISR},
		{Concept: "IMSS", Amount: doc.IMSS},
	}
	deductions = append(deductions, doc.Deductions...)
	section("Deducciones", deductions, "Total deducciones", doc.TotalDeductions)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(140, 10, tr("Neto a pagar"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, money(doc.NetPay), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "I", 8)
	if doc.Policy != "" {
		pdf.Cell(0, 5, tr("Retenciones calculadas con la política "+doc.Policy))
		pdf.Ln(5)
	}
	if doc.SignedAt != "" {
		pdf.Cell(0, 5, tr("Firmado electrónicamente: "+doc.SignedAt))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}
