package pdf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// RenderInvoice produces the printable invoice with line items, totals and
// payment instructions.
func RenderInvoice(inv InvoiceData, clinic ClinicInfo) ([]byte, error) {
	doc := newDoc()

	centered(doc, 16, 18, "B", clinic.Name)
	address := fmt.Sprintf("%s, %s, %s %s", clinic.Address, clinic.City, clinic.State, clinic.Zip)
	centered(doc, 25, 10, "", address)
	centered(doc, 31, 10, "", fmt.Sprintf("Phone: %s | Email: %s", clinic.Phone, clinic.Email))
	if clinic.Website != "" {
		centered(doc, 37, 10, "", "Website: "+clinic.Website)
	}

	centered(doc, 56, 14, "B", "INVOICE")
	doc.SetFont("Helvetica", "B", 12)
	doc.Text(leftMargin, 70, "Invoice #: "+inv.InvoiceNumber)
	doc.Text(150, 70, "Date: "+inv.Date)
	doc.Text(150, 78, "Due Date: "+inv.DueDate)
	divider(doc, 85)

	label(doc, leftMargin, 95, "Billed From:")
	label(doc, 120, 95, "Billed To:")

	body(doc, leftMargin, 103, clinic.Name)
	body(doc, leftMargin, 111, fmt.Sprintf("%s %s", clinic.DoctorName, clinic.DoctorCredentials))
	body(doc, leftMargin, 119, clinic.Address)
	body(doc, leftMargin, 127, fmt.Sprintf("%s, %s %s", clinic.City, clinic.State, clinic.Zip))
	body(doc, leftMargin, 135, "Phone: "+clinic.Phone)

	body(doc, 120, 103, inv.PatientName)
	body(doc, 120, 111, inv.PatientAddress)
	body(doc, 120, 119, fmt.Sprintf("%s, %s %s", inv.PatientCity, inv.PatientState, inv.PatientZip))
	body(doc, 120, 127, "Phone: "+inv.PatientPhone)
	body(doc, 120, 135, "Email: "+inv.PatientEmail)

	label(doc, leftMargin, 150, "Invoice Items")
	rows := make([][]string, 0, len(inv.Items))
	for _, it := range inv.Items {
		rows = append(rows, []string{
			it.Description,
			strconv.FormatFloat(it.Quantity, 'f', -1, 64),
			currency(it.UnitPrice, clinic.Currency),
			currency(it.Amount, clinic.Currency),
		})
	}
	y := table(doc, 155,
		[]float64{80, 25, 32, 33},
		[]string{"Description", "Quantity", "Unit Price", "Amount"},
		rows)

	doc.SetFont("Helvetica", "", 10)
	doc.Text(140, y+15, "Subtotal:")
	rightAligned(doc, 175, y+15, currency(inv.Subtotal, clinic.Currency))
	if inv.Discount > 0 {
		doc.Text(140, y+23, "Discount:")
		rightAligned(doc, 175, y+23, currency(inv.Discount, clinic.Currency))
	}
	if inv.Tax > 0 {
		taxAmount := inv.Subtotal * inv.Tax / 100
		doc.Text(140, y+31, fmt.Sprintf("Tax (%g%%):", inv.Tax))
		rightAligned(doc, 175, y+31, currency(taxAmount, clinic.Currency))
	}
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(140, y+42, "Total:")
	rightAligned(doc, 175, y+42, currency(inv.Total, clinic.Currency))

	doc.SetFont("Helvetica", "", 10)
	doc.Text(leftMargin, y+23, "Payment Status: "+strings.ToUpper(inv.PaymentStatus))
	if inv.PaymentMethod != "" {
		doc.Text(leftMargin, y+31, "Payment Method: "+inv.PaymentMethod)
	}
	if inv.PaymentDate != "" {
		doc.Text(leftMargin, y+39, "Payment Date: "+inv.PaymentDate)
	}

	paymentY := y + 60.0
	if inv.Notes != "" {
		label(doc, leftMargin, y+55, "Notes:")
		paymentY = wrapped(doc, leftMargin, y+63, 170, 10, inv.Notes) + 10
	}

	label(doc, leftMargin, paymentY, "Payment Instructions:")
	body(doc, leftMargin, paymentY+8, "Please make payment by the due date.")
	if clinic.PaymentDetails != "" {
		wrapped(doc, leftMargin, paymentY+16, 170, 10, clinic.PaymentDetails)
	}
	if clinic.BankName != "" && clinic.AccountNumber != "" {
		body(doc, leftMargin, paymentY+32, "Bank: "+clinic.BankName)
		body(doc, leftMargin, paymentY+40, "Account Name: "+clinic.AccountName)
		body(doc, leftMargin, paymentY+48, "Account Number: "+clinic.AccountNumber)
	}
	if clinic.PaymentTerms != "" {
		body(doc, leftMargin, paymentY+56, fmt.Sprintf("Payment Terms: Net %s days", clinic.PaymentTerms))
	}

	footnote(doc, leftMargin, 280, "Invoice ID: "+inv.ID)

	return output(doc)
}

func rightAligned(doc *gofpdf.Fpdf, x, y float64, text string) {
	doc.Text(x-doc.GetStringWidth(text), y, text)
}
