package pdf

import (
	"bytes"
	"testing"
	"time"
)

func testClinic() ClinicInfo {
	return ClinicInfo{
		Name:              "DentFlow Clinic",
		Address:           "123 Medical Center Blvd, Suite 200",
		City:              "San Francisco",
		State:             "CA",
		Zip:               "94103",
		Phone:             "+1 (555) 123-4567",
		Email:             "contact@dentflowclinic.com",
		Website:           "https://dentflowclinic.com",
		DoctorName:        "Dr. Sarah Johnson",
		DoctorCredentials: "DDS, MS",
		LicenseNumber:     "DEN12345",
		Currency:          "USD",
		BankName:          "First National Bank",
		AccountName:       "DentFlow Clinic LLC",
		AccountNumber:     "XXXX-XXXX-1234",
		PaymentTerms:      "30",
	}
}

func assertPDF(t *testing.T, out []byte, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("rendered document is empty")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF header: %q", out[:8])
	}
}

func TestRenderPrescription(t *testing.T) {
	out, err := RenderPrescription(PrescriptionData{
		ID:           "9f6c1c1e-0000-0000-0000-000000000001",
		PatientName:  "Jane Doe",
		Medication:   "Amoxicillin",
		Dosage:       "500mg",
		Frequency:    "3x daily",
		Duration:     "7 days",
		StartDate:    "2026-08-29",
		Instructions: "Take with food. Finish the entire course even if symptoms improve.",
		Status:       "active",
		Notes:        "Patient reports mild penicillin sensitivity in family history.",
	}, testClinic())
	assertPDF(t, out, err)
}

func TestRenderPatientReport(t *testing.T) {
	out, err := RenderPatientReport(PatientData{
		ID:          "9f6c1c1e-0000-0000-0000-000000000002",
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1988-04-12",
		Gender:      "female",
		Email:       "jane@example.com",
		Phone:       "555-0101",
		Address:     "42 Elm Street",
		City:        "San Francisco",
		State:       "CA",
		Zip:         "94103",
		Allergies:   "Latex",
	}, testClinic())
	assertPDF(t, out, err)
}

func TestRenderAppointmentSlip(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	out, err := RenderAppointmentSlip(AppointmentData{
		ID:          "9f6c1c1e-0000-0000-0000-000000000003",
		PatientName: "Jane Doe",
		PatientID:   "9f6c1c1e-0000-0000-0000-000000000002",
		Phone:       "555-0101",
		Email:       "jane@example.com",
		Date:        "2026-09-01",
		Time:        "10:00",
		Duration:    "30",
		Type:        "Cleaning",
		Status:      "confirmed",
		Notes:       "Patient prefers morning visits.",
	}, testClinic(), now)
	assertPDF(t, out, err)
}

func TestRenderInvoice(t *testing.T) {
	out, err := RenderInvoice(InvoiceData{
		ID:            "9f6c1c1e-0000-0000-0000-000000000004",
		InvoiceNumber: "INV-20260829-1",
		PatientName:   "Jane Doe",
		Date:          "2026-08-29",
		DueDate:       "2026-09-28",
		Items: []InvoiceItemData{
			{Description: "Cleaning", Quantity: 2, UnitPrice: 50, Amount: 100},
			{Description: "X-Ray", Quantity: 1, UnitPrice: 30, Amount: 30},
		},
		Subtotal:      130,
		Tax:           10,
		Discount:      5,
		Total:         138,
		PaymentStatus: "pending",
	}, testClinic())
	assertPDF(t, out, err)
}

func TestSlipNumberStable(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	a := slipNumber("9f6c1c1e-aaaa", now)
	b := slipNumber("9f6c1c1e-aaaa", now)
	if a != b {
		t.Fatalf("slip number not deterministic for same inputs: %q vs %q", a, b)
	}
	if got := slipNumber("", now); got == "" {
		t.Fatal("empty id should still produce a slip number")
	}
}
