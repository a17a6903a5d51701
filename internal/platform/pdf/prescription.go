package pdf

import "strings"

// RenderPrescription produces the printable prescription sheet.
func RenderPrescription(rx PrescriptionData, clinic ClinicInfo) ([]byte, error) {
	doc := newDoc()

	letterhead(doc, clinic, "Prescribed by")
	centered(doc, 66, 14, "B", "PRESCRIPTION")
	divider(doc, 75)

	label(doc, leftMargin, 85, "Patient Information")
	body(doc, leftMargin, 93, "Patient Name: "+rx.PatientName)
	body(doc, leftMargin, 99, "Date: "+rx.StartDate)

	label(doc, leftMargin, 110, "Medication Details")
	y := table(doc, 115,
		[]float64{55, 35, 45, 35},
		[]string{"Medication", "Dosage", "Frequency", "Duration"},
		[][]string{{rx.Medication, rx.Dosage, rx.Frequency, rx.Duration}})

	label(doc, leftMargin, y+10, "Instructions:")
	after := wrapped(doc, leftMargin, y+18, 155, 10, rx.Instructions)

	if rx.Notes != "" {
		label(doc, 130, after+5, "Additional Notes:")
		wrapped(doc, 130, after+13, 60, 10, rx.Notes)
	}

	signatureLine(doc)
	footnote(doc, leftMargin, 280, "Prescription ID: "+rx.ID)
	footnote(doc, 150, 280, "Status: "+strings.ToUpper(rx.Status))

	return output(doc)
}
