package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// A4 portrait in millimeters; content sits between x=20 and x=190 like the
// documents the practice has always printed.
const (
	pageWidth   = 210.0
	leftMargin  = 20.0
	rightEdge   = 190.0
	contentSpan = rightEdge - leftMargin
)

func newDoc() *gofpdf.Fpdf {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 10)
	doc.AddPage()
	return doc
}

func centered(doc *gofpdf.Fpdf, y float64, size float64, style, text string) {
	doc.SetFont("Helvetica", style, size)
	doc.SetXY(0, y)
	doc.CellFormat(pageWidth, 6, text, "", 0, "C", false, 0, "")
}

func label(doc *gofpdf.Fpdf, x, y float64, text string) {
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(x, y, text)
}

func body(doc *gofpdf.Fpdf, x, y float64, text string) {
	doc.SetFont("Helvetica", "", 10)
	doc.Text(x, y, text)
}

// wrapped prints text across multiple lines within width and returns the y
// position after the last line.
func wrapped(doc *gofpdf.Fpdf, x, y, width float64, size float64, text string) float64 {
	doc.SetFont("Helvetica", "", size)
	lines := doc.SplitText(text, width)
	for _, line := range lines {
		doc.Text(x, y, line)
		y += 5
	}
	return y
}

// letterhead draws the centered clinic block and the prescriber line used by
// the prescription and patient-report documents, then returns nothing; the
// caller continues at fixed offsets matching the practice's templates.
func letterhead(doc *gofpdf.Fpdf, clinic ClinicInfo, doctorLabel string) {
	centered(doc, 16, 18, "B", clinic.Name)
	address := fmt.Sprintf("%s, %s, %s %s", clinic.Address, clinic.City, clinic.State, clinic.Zip)
	centered(doc, 25, 10, "", address)
	centered(doc, 31, 10, "", fmt.Sprintf("Phone: %s | Email: %s", clinic.Phone, clinic.Email))
	if clinic.Website != "" {
		centered(doc, 37, 10, "", "Website: "+clinic.Website)
	}

	doc.SetFont("Helvetica", "B", 11)
	doc.Text(leftMargin, 50, fmt.Sprintf("%s: %s %s", doctorLabel, clinic.DoctorName, clinic.DoctorCredentials))
	doc.Text(leftMargin, 56, "License: "+clinic.LicenseNumber)
}

func divider(doc *gofpdf.Fpdf, y float64) {
	doc.SetLineWidth(0.5)
	doc.Line(leftMargin, y, rightEdge, y)
}

// table draws a grid table with a filled header row starting at y and
// returns the y position below the last row.
func table(doc *gofpdf.Fpdf, y float64, widths []float64, head []string, rows [][]string) float64 {
	doc.SetFillColor(41, 128, 185)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 10)
	doc.SetXY(leftMargin, y)
	for i, h := range head {
		doc.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	y += 8

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		doc.SetXY(leftMargin, y)
		for i, cell := range row {
			doc.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		y += 7
	}
	return y
}

func signatureLine(doc *gofpdf.Fpdf) {
	doc.SetFont("Helvetica", "", 10)
	doc.Text(130, 250, "Signature:")
	doc.Line(150, 250, rightEdge, 250)
}

func footnote(doc *gofpdf.Fpdf, x, y float64, text string) {
	doc.SetFont("Helvetica", "", 8)
	doc.Text(x, y, text)
}

// currency formats an amount the way the practice prints money. Symbols
// outside the core latin set render poorly in the base fonts, so anything
// unrecognized falls back to the currency code.
func currency(amount float64, code string) string {
	symbols := map[string]string{
		"USD": "$", "EUR": "EUR", "GBP": "GBP", "CAD": "CA$", "AUD": "A$",
	}
	symbol, ok := symbols[code]
	if !ok {
		symbol = code
	}
	return fmt.Sprintf("%s %.2f", symbol, amount)
}

func output(doc *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}
