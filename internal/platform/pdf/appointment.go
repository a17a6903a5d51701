package pdf

import (
	"fmt"
	"strings"
	"time"
)

// RenderAppointmentSlip produces the colored appointment slip handed to the
// patient at booking.
func RenderAppointmentSlip(a AppointmentData, clinic ClinicInfo, now time.Time) ([]byte, error) {
	doc := newDoc()

	// colored header band
	doc.SetFillColor(41, 128, 185)
	doc.Rect(0, 0, pageWidth, 35, "F")
	doc.SetTextColor(255, 255, 255)
	centered(doc, 10, 20, "B", clinic.Name)
	centered(doc, 19, 9, "", fmt.Sprintf("%s | %s", clinic.Phone, clinic.Email))
	centered(doc, 25, 9, "", fmt.Sprintf("%s, %s, %s %s", clinic.Address, clinic.City, clinic.State, clinic.Zip))

	doc.SetFillColor(52, 73, 94)
	doc.Rect(10, 40, 190, 10, "F")
	centered(doc, 42, 12, "B", "APPOINTMENT SLIP")
	doc.SetTextColor(0, 0, 0)

	// left column: patient and appointment details
	doc.SetFillColor(245, 245, 245)
	doc.Rect(10, 55, 115, 60, "F")
	doc.SetFont("Helvetica", "B", 10)
	doc.Text(15, 62, "PATIENT INFORMATION")
	doc.SetFont("Helvetica", "", 9)
	doc.Text(15, 70, "Name: "+a.PatientName)
	doc.Text(15, 77, "Patient ID: "+shortID(a.PatientID))
	doc.Text(15, 84, "Phone: "+a.Phone)
	doc.Text(15, 91, "Email: "+a.Email)

	doc.SetFont("Helvetica", "B", 10)
	doc.Text(15, 101, "APPOINTMENT DETAILS")
	doc.SetFont("Helvetica", "", 9)
	doc.Text(15, 109, "Date: "+a.Date)
	doc.Text(15, 116, "Time: "+a.Time)
	doc.Text(15, 123, "Type: "+a.Type)
	doc.Text(15, 130, fmt.Sprintf("Duration: %s minutes", a.Duration))

	// right column: slip number and status
	doc.SetFillColor(46, 204, 113)
	doc.Rect(130, 55, 70, 25, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 8)
	doc.SetXY(130, 59)
	doc.CellFormat(70, 5, "APPOINTMENT #", "", 0, "C", false, 0, "")
	doc.SetFont("Helvetica", "B", 11)
	doc.SetXY(130, 68)
	doc.CellFormat(70, 6, slipNumber(a.ID, now), "", 0, "C", false, 0, "")

	doc.SetTextColor(0, 0, 0)
	doc.SetFillColor(245, 245, 245)
	doc.Rect(130, 85, 70, 30, "F")
	doc.SetFont("Helvetica", "B", 10)
	doc.SetXY(130, 90)
	doc.CellFormat(70, 5, "STATUS", "", 0, "C", false, 0, "")

	r, g, b := statusColor(a.Status)
	doc.SetFillColor(r, g, b)
	doc.RoundedRect(140, 98, 50, 12, 3, "1234", "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 9)
	doc.SetXY(140, 101)
	doc.CellFormat(50, 6, strings.ToUpper(a.Status), "", 0, "C", false, 0, "")
	doc.SetTextColor(0, 0, 0)

	if strings.TrimSpace(a.Notes) != "" {
		doc.SetFillColor(245, 245, 245)
		doc.Rect(10, 120, 190, 30, "F")
		doc.SetFont("Helvetica", "B", 10)
		doc.Text(15, 128, "NOTES")
		wrapped(doc, 15, 136, 180, 9, a.Notes)
	}

	doc.SetFillColor(234, 242, 248)
	doc.Rect(10, 155, 190, 35, "F")
	doc.SetFont("Helvetica", "B", 10)
	doc.SetXY(10, 160)
	doc.CellFormat(190, 6, "IMPORTANT INFORMATION", "", 0, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.Text(15, 171, "1. Please arrive 15 minutes before your scheduled appointment time.")
	doc.Text(15, 178, "2. Bring your ID and insurance information.")
	doc.Text(15, 185, "3. Contact us 24 hours in advance to reschedule or cancel.")

	// bottom bar
	doc.SetFillColor(52, 73, 94)
	doc.Rect(0, 280, pageWidth, 17, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "", 8)
	doc.Text(15, 287, "Appointment ID: "+a.ID)
	doc.SetXY(0, 284)
	doc.CellFormat(pageWidth, 5, "This is a computer-generated document and does not require a signature", "", 0, "C", false, 0, "")
	doc.Text(160, 292, "Generated: "+now.Format("2006-01-02 15:04"))

	return output(doc)
}

func shortID(id string) string {
	if id == "" {
		return "N/A"
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

func slipNumber(id string, now time.Time) string {
	if id == "" {
		return fmt.Sprintf("APT-%d", now.UnixMilli())
	}
	return fmt.Sprintf("APT-%s-%04d", shortID(id), now.UnixMilli()%10000)
}

func statusColor(status string) (int, int, int) {
	switch status {
	case "confirmed":
		return 46, 204, 113
	case "cancelled":
		return 231, 76, 60
	case "completed":
		return 52, 152, 219
	default: // scheduled
		return 255, 193, 7
	}
}
