package pdf

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dentflow/dentflow/internal/domain/appointment"
	"github.com/dentflow/dentflow/internal/domain/invoice"
	"github.com/dentflow/dentflow/internal/domain/patient"
	"github.com/dentflow/dentflow/internal/domain/prescription"
	"github.com/dentflow/dentflow/internal/domain/settings"
	"github.com/dentflow/dentflow/internal/platform/apperr"
	"github.com/dentflow/dentflow/internal/platform/auth"
)

// Handler hydrates entities and clinic settings, renders the document and
// streams it as application/pdf.
type Handler struct {
	patients      *patient.Service
	appointments  *appointment.Service
	prescriptions *prescription.Service
	invoices      *invoice.Service
	settings      *settings.Service
}

func NewHandler(
	patients *patient.Service,
	appointments *appointment.Service,
	prescriptions *prescription.Service,
	invoices *invoice.Service,
	settingsSvc *settings.Service,
) *Handler {
	return &Handler{
		patients:      patients,
		appointments:  appointments,
		prescriptions: prescriptions,
		invoices:      invoices,
		settings:      settingsSvc,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/patients/:id/report", h.patientReport)
	g.GET("/prescriptions/:id/pdf", h.prescriptionPDF)
	g.GET("/invoices/:id/pdf", h.invoicePDF)
	g.GET("/appointments/:id/slip", h.appointmentSlip)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func clinicInfo(s *settings.AppSettings) ClinicInfo {
	return ClinicInfo{
		Name:              s.Clinic.Name,
		Address:           s.Clinic.Address,
		City:              s.Clinic.City,
		State:             s.Clinic.State,
		Zip:               s.Clinic.Zip,
		Phone:             s.Clinic.Phone,
		Email:             s.Clinic.Email,
		Website:           s.Clinic.Website,
		PaymentDetails:    s.Clinic.PaymentDetails,
		DoctorName:        s.Staff.PrimaryDoctor,
		DoctorCredentials: s.Staff.PrimaryDoctorCredentials,
		LicenseNumber:     s.Staff.LicenseNumber,
		Currency:          s.Financial.Currency,
		BankName:          s.Financial.BankName,
		AccountName:       s.Financial.AccountName,
		AccountNumber:     s.Financial.AccountNumber,
		PaymentTerms:      s.Financial.PaymentTerms,
	}
}

func (h *Handler) clinic(c echo.Context, caller *auth.User) (ClinicInfo, error) {
	s, err := h.settings.GetOrCreate(c.Request().Context(), caller)
	if err != nil {
		return ClinicInfo{}, err
	}
	return clinicInfo(s), nil
}

func (h *Handler) prescriptionPDF(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid prescription id")
	}
	caller := auth.CallerFromContext(c.Request().Context())

	rx, err := h.prescriptions.Get(c.Request().Context(), caller, id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	clinic, err := h.clinic(c, caller)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}

	out, err := RenderPrescription(PrescriptionData{
		ID:           rx.ID.String(),
		PatientName:  rx.PatientName,
		Medication:   rx.Medication,
		Dosage:       rx.Dosage,
		Frequency:    rx.Frequency,
		Duration:     rx.Duration,
		StartDate:    rx.StartDate,
		Instructions: rx.Instructions,
		Status:       rx.Status,
		Notes:        deref(rx.Notes),
	}, clinic)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, "application/pdf", out)
}

func (h *Handler) patientReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	caller := auth.CallerFromContext(c.Request().Context())

	p, err := h.patients.Get(c.Request().Context(), caller, id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	clinic, err := h.clinic(c, caller)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}

	out, err := RenderPatientReport(PatientData{
		ID:                p.ID.String(),
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		DateOfBirth:       p.DateOfBirth,
		Gender:            p.Gender,
		Email:             p.Email,
		Phone:             p.Phone,
		Address:           p.Address,
		City:              p.City,
		State:             p.State,
		Zip:               p.Zip,
		BloodType:         deref(p.BloodType),
		Height:            deref(p.Height),
		Weight:            deref(p.Weight),
		Allergies:         deref(p.Allergies),
		Medications:       deref(p.Medications),
		MedicalConditions: deref(p.MedicalConditions),
		FamilyHistory:     deref(p.FamilyHistory),
		SurgicalHistory:   deref(p.SurgicalHistory),
		InsuranceProvider: deref(p.InsuranceProvider),
		InsuranceID:       deref(p.InsuranceID),
		Notes:             deref(p.Notes),
	}, clinic)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, "application/pdf", out)
}

func (h *Handler) appointmentSlip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	caller := auth.CallerFromContext(c.Request().Context())

	a, err := h.appointments.Get(c.Request().Context(), caller, id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	clinic, err := h.clinic(c, caller)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}

	data := AppointmentData{
		ID:          a.ID.String(),
		PatientName: a.PatientName,
		PatientID:   a.PatientID.String(),
		Date:        a.Date,
		Time:        a.Time,
		Duration:    a.Duration,
		Type:        a.Type,
		Status:      a.Status,
		Notes:       deref(a.Notes),
	}
	// the slip carries the patient's contact details when the record is
	// still present
	if p, perr := h.patients.Get(c.Request().Context(), caller, a.PatientID); perr == nil {
		data.Phone = p.Phone
		data.Email = p.Email
	}

	out, err := RenderAppointmentSlip(data, clinic, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, "application/pdf", out)
}

func (h *Handler) invoicePDF(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid invoice id")
	}
	caller := auth.CallerFromContext(c.Request().Context())

	inv, err := h.invoices.Get(c.Request().Context(), caller, id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	clinic, err := h.clinic(c, caller)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}

	data := InvoiceData{
		ID:            inv.ID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		PatientName:   inv.PatientName,
		Date:          inv.Date,
		DueDate:       inv.DueDate,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Discount:      inv.Discount,
		Total:         inv.Total,
		PaymentStatus: inv.PaymentStatus,
		PaymentMethod: deref(inv.PaymentMethod),
		PaymentDate:   deref(inv.PaymentDate),
		Notes:         deref(inv.Notes),
	}
	for _, it := range inv.Items {
		data.Items = append(data.Items, InvoiceItemData{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}
	if p, perr := h.patients.Get(c.Request().Context(), caller, inv.PatientID); perr == nil {
		data.PatientAddress = p.Address
		data.PatientCity = p.City
		data.PatientState = p.State
		data.PatientZip = p.Zip
		data.PatientPhone = p.Phone
		data.PatientEmail = p.Email
	}

	out, err := RenderInvoice(data, clinic)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, "application/pdf", out)
}
