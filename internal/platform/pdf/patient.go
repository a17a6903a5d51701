package pdf

import "fmt"

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// RenderPatientReport produces the patient summary sheet with demographics,
// vitals and medical history.
func RenderPatientReport(p PatientData, clinic ClinicInfo) ([]byte, error) {
	doc := newDoc()

	letterhead(doc, clinic, "Doctor")
	centered(doc, 66, 14, "B", "PATIENT REPORT")
	divider(doc, 75)

	label(doc, leftMargin, 85, "Patient Information")
	body(doc, leftMargin, 93, fmt.Sprintf("Name: %s %s", p.FirstName, p.LastName))
	body(doc, leftMargin, 99, "Date of Birth: "+p.DateOfBirth)
	body(doc, leftMargin, 105, "Gender: "+p.Gender)
	body(doc, leftMargin, 111, "Email: "+p.Email)
	body(doc, leftMargin, 117, "Phone: "+p.Phone)

	label(doc, leftMargin, 127, "Address")
	body(doc, leftMargin, 135, p.Address)
	body(doc, leftMargin, 141, fmt.Sprintf("%s, %s %s", p.City, p.State, p.Zip))

	label(doc, leftMargin, 155, "Medical Information")
	y := table(doc, 160,
		[]float64{60, 110},
		[]string{"Category", "Details"},
		[][]string{
			{"Blood Type", orDefault(p.BloodType, "Not specified")},
			{"Height", orDefault(p.Height, "Not specified")},
			{"Weight", orDefault(p.Weight, "Not specified")},
			{"Allergies", orDefault(p.Allergies, "None reported")},
			{"Current Medications", orDefault(p.Medications, "None reported")},
			{"Medical Conditions", orDefault(p.MedicalConditions, "None reported")},
		})

	label(doc, leftMargin, y+10, "Medical History")
	doc.SetFont("Helvetica", "B", 10)
	doc.Text(leftMargin, y+20, "Family History:")
	after := wrapped(doc, 25, y+28, 155, 10, orDefault(p.FamilyHistory, "No family history recorded"))

	doc.SetFont("Helvetica", "B", 10)
	doc.Text(leftMargin, after+2, "Surgical History:")
	after = wrapped(doc, 25, after+10, 155, 10, orDefault(p.SurgicalHistory, "No surgical history recorded"))

	if p.Notes != "" {
		label(doc, 130, after+2, "Additional Notes:")
		wrapped(doc, 130, after+10, 60, 10, p.Notes)
	}

	signatureLine(doc)
	if p.InsuranceProvider != "" {
		footnote(doc, leftMargin, 270, "Insurance: "+p.InsuranceProvider)
		if p.InsuranceID != "" {
			footnote(doc, leftMargin, 275, "Insurance ID: "+p.InsuranceID)
		}
	}
	footnote(doc, leftMargin, 280, "Patient ID: "+p.ID)

	return output(doc)
}
