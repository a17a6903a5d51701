// Package pdf renders printable practice documents. Renderers are pure
// functions over plain data values so the domain packages never depend on
// the PDF library.
package pdf

// ClinicInfo is the letterhead block printed on every document, sourced
// from the owner's settings.
type ClinicInfo struct {
	Name              string
	Address           string
	City              string
	State             string
	Zip               string
	Phone             string
	Email             string
	Website           string
	PaymentDetails    string
	DoctorName        string
	DoctorCredentials string
	LicenseNumber     string
	Currency          string
	BankName          string
	AccountName       string
	AccountNumber     string
	PaymentTerms      string
}

type PrescriptionData struct {
	ID           string
	PatientName  string
	Medication   string
	Dosage       string
	Frequency    string
	Duration     string
	StartDate    string
	Instructions string
	Status       string
	Notes        string
}

type PatientData struct {
	ID                string
	FirstName         string
	LastName          string
	DateOfBirth       string
	Gender            string
	Email             string
	Phone             string
	Address           string
	City              string
	State             string
	Zip               string
	BloodType         string
	Height            string
	Weight            string
	Allergies         string
	Medications       string
	MedicalConditions string
	FamilyHistory     string
	SurgicalHistory   string
	InsuranceProvider string
	InsuranceID       string
	Notes             string
}

type AppointmentData struct {
	ID          string
	PatientName string
	PatientID   string
	Phone       string
	Email       string
	Date        string
	Time        string
	Duration    string
	Type        string
	Status      string
	Notes       string
}

type InvoiceItemData struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	Amount      float64
}

type InvoiceData struct {
	ID             string
	InvoiceNumber  string
	PatientName    string
	PatientAddress string
	PatientCity    string
	PatientState   string
	PatientZip     string
	PatientPhone   string
	PatientEmail   string
	Date           string
	DueDate        string
	Items          []InvoiceItemData
	Subtotal       float64
	Tax            float64
	Discount       float64
	Total          float64
	PaymentStatus  string
	PaymentMethod  string
	PaymentDate    string
	Notes          string
}
