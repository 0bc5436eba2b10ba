package export

import (
	"bytes"
	"fmt"
	"time"

	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase/readmodel"

	"github.com/go-pdf/fpdf"
)

// InvoicePDF renders a single booking invoice. The total is the derived
// amount: nights stayed times the room's nightly tariff.
func InvoicePDF(hotel config.HotelConfig, b *readmodel.BookingRM, issuedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 10, hotel.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(127, 140, 141)
	pdf.CellFormat(0, 5, hotel.Address, "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetDrawColor(189, 195, 199)
	x, y := pdf.GetXY()
	pdf.Line(x, y, 210-18, y)
	pdf.Ln(6)

	// Customer block
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(52, 73, 94)
	pdf.CellFormat(0, 6, "Invoice ID : "+b.ID.String(), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, "Date : "+issuedAt.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Customer : "+b.CustomerName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Email : "+b.CustomerEmail, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(127, 140, 141)
	pdf.CellFormat(0, 6, "Booking Details", "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Room details
	const dateLayout = "2006-01-02"
	nights := b.Nights()
	total := b.Amount()

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 6, fmt.Sprintf("Room Number : %s   Type : %s", b.RoomNumber, b.RoomType), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Stay : %s to %s", b.CheckIn.Format(dateLayout), b.CheckOut.Format(dateLayout)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Tariff per night : Rs.%.2f", b.Tariff), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total Nights : %d", nights), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Total amount box
	pdf.SetFillColor(253, 237, 236)
	pdf.SetDrawColor(231, 76, 60)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(130, 10, "  Total Amount :", "1", 0, "L", true, 0, "")
	pdf.SetTextColor(231, 76, 60)
	pdf.CellFormat(0, 10, fmt.Sprintf("Rs.%.2f  ", total), "1", 1, "R", true, 0, "")

	// Footer
	pdf.SetY(-40)
	x, y = pdf.GetXY()
	pdf.SetDrawColor(189, 195, 199)
	pdf.Line(x, y, 210-18, y)
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(127, 140, 141)
	pdf.CellFormat(0, 4, "Thank you for staying with "+hotel.Name+"!", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4, "For bookings & inquiries: "+hotel.Contact, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.Bytes(), nil
}
