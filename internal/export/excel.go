package export

import (
	"bytes"
	"fmt"

	"hotelhub/internal/usecase/readmodel"

	"github.com/xuri/excelize/v2"
)

// BookingsSheetHeader is the column order of the bookings export.
var BookingsSheetHeader = []string{
	"ID",
	"Customer Name",
	"Customer Email",
	"Room Number",
	"Room Type",
	"Check-In",
	"Check-Out",
	"Nights",
	"Status",
}

const bookingsSheetName = "Bookings"

// BookingsExcel renders the booking list into an XLSX workbook.
func BookingsExcel(bookings []*readmodel.BookingRM) ([]byte, error) {
	f := excelize.NewFile()
	// Note: Don't defer Close() here, because WriteTo needs the file to be open

	index, err := f.NewSheet(bookingsSheetName)
	if err != nil {
		f.Close() // Close on error
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range BookingsSheetHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(bookingsSheetName, cell, title); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell: %w", err)
		}
		if err := f.SetCellStyle(bookingsSheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to style header cell: %w", err)
		}
	}

	const dateLayout = "2006-01-02"
	for i, b := range bookings {
		values := []any{
			b.ID.String(),
			b.CustomerName,
			b.CustomerEmail,
			b.RoomNumber,
			b.RoomType,
			b.CheckIn.Format(dateLayout),
			b.CheckOut.Format(dateLayout),
			b.Nights(),
			b.Status,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to compute data cell: %w", err)
			}
			if err := f.SetCellValue(bookingsSheetName, cell, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set data cell: %w", err)
			}
		}
	}

	// Widen the ID and email columns; the rest read fine at default width.
	_ = f.SetColWidth(bookingsSheetName, "A", "A", 38)
	_ = f.SetColWidth(bookingsSheetName, "B", "C", 25)
	_ = f.SetColWidth(bookingsSheetName, "D", "E", 15)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}
