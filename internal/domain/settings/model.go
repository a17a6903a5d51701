package settings

import "time"

// ClinicSettings holds the practice identity printed on documents.
type ClinicSettings struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`
	Country        string `json:"country"`
	Website        string `json:"website"`
	PaymentDetails string `json:"paymentDetails,omitempty"`
}

type FinancialSettings struct {
	Currency               string   `json:"currency"`
	TaxRate                string   `json:"taxRate"`
	BankName               string   `json:"bankName"`
	AccountName            string   `json:"accountName"`
	AccountNumber          string   `json:"accountNumber"`
	RoutingNumber          string   `json:"routingNumber"`
	PaymentTerms           string   `json:"paymentTerms"`
	EnableOnlinePayments   bool     `json:"enableOnlinePayments"`
	AcceptedPaymentMethods []string `json:"acceptedPaymentMethods"`
}

type StaffSettings struct {
	PrimaryDoctor            string `json:"primaryDoctor"`
	PrimaryDoctorCredentials string `json:"primaryDoctorCredentials"`
	PracticeType             string `json:"practiceType"`
	LicenseNumber            string `json:"licenseNumber"`
	TaxID                    string `json:"taxId"`
}

type PreferenceSettings struct {
	AppointmentReminders       bool     `json:"appointmentReminders"`
	AutoConfirmAppointments    bool     `json:"autoConfirmAppointments"`
	DefaultAppointmentDuration string   `json:"defaultAppointmentDuration"`
	WorkingHoursStart          string   `json:"workingHoursStart"`
	WorkingHoursEnd            string   `json:"workingHoursEnd"`
	WorkingDays                []string `json:"workingDays"`
	DateFormat                 string   `json:"dateFormat"`
	TimeFormat                 string   `json:"timeFormat"`
}

// AppSettings is the per-owner settings row; each section is a jsonb column.
type AppSettings struct {
	Clinic      ClinicSettings     `json:"clinic"`
	Financial   FinancialSettings  `json:"financial"`
	Staff       StaffSettings      `json:"staff"`
	Preferences PreferenceSettings `json:"preferences"`
	UserID      string             `json:"userId"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// Defaults returns the settings a new owner starts from.
func Defaults() AppSettings {
	return AppSettings{
		Clinic: ClinicSettings{
			Name:    "DentFlow Clinic",
			Email:   "contact@dentflowclinic.com",
			Phone:   "+1 (555) 123-4567",
			Address: "123 Medical Center Blvd, Suite 200",
			City:    "San Francisco",
			State:   "CA",
			Zip:     "94103",
			Country: "US",
			Website: "https://dentflowclinic.com",
		},
		Financial: FinancialSettings{
			Currency:               "USD",
			TaxRate:                "8.5",
			BankName:               "First National Bank",
			AccountName:            "DentFlow Clinic LLC",
			AccountNumber:          "XXXX-XXXX-1234",
			RoutingNumber:          "XXXXX0123",
			PaymentTerms:           "30",
			EnableOnlinePayments:   true,
			AcceptedPaymentMethods: []string{"credit", "debit", "cash", "insurance"},
		},
		Staff: StaffSettings{
			PrimaryDoctor:            "Dr. Sarah Johnson",
			PrimaryDoctorCredentials: "DDS, MS",
			PracticeType:             "General Dentistry",
			LicenseNumber:            "DEN12345",
			TaxID:                    "XX-XXXXXXX",
		},
		Preferences: PreferenceSettings{
			AppointmentReminders:       true,
			AutoConfirmAppointments:    false,
			DefaultAppointmentDuration: "60",
			WorkingHoursStart:          "09:00",
			WorkingHoursEnd:            "17:00",
			WorkingDays:                []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
			DateFormat:                 "MM/DD/YYYY",
			TimeFormat:                 "12h",
		},
	}
}
