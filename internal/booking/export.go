package booking

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReportFileName is the fixed filename of the bookings spreadsheet export.
const ReportFileName = "bookings-report.xlsx"

const reportSheet = "Bookings"

// Date columns in the report use the same layout as the API.
const reportDateLayout = "2006-01-02"

var reportHeader = []string{
	"ID", "Full Name", "Phone", "Emergency Phone", "CNIC", "Address",
	"Tour Category", "Trip Package",
	"Male", "Female", "Children", "Total Guests",
	"Start Date", "End Date", "Trip Days",
	"Special Requests", "Status", "Created At",
}

// WriteReport serializes the booking list into an xlsx workbook with a
// single "Bookings" sheet, one row per record.
func WriteReport(list []*Booking) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet rather than juggling indices.
	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("failed to set report sheet name: %w", err)
	}

	if err := setRow(f, 1, toCells(reportHeader)); err != nil {
		return nil, err
	}

	for i, b := range list {
		cells := []any{
			b.ID, b.FullName, b.Phone, b.EmergencyPhone, b.CNIC, b.Address,
			b.TourCategory, b.TripPackage,
			b.MaleCount, b.FemaleCount, b.ChildrenCount, b.TotalGuests,
			b.StartDate.Format(reportDateLayout), b.EndDate.Format(reportDateLayout), b.TripDays,
			b.SpecialRequests, string(b.Status), b.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := setRow(f, i+2, cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write report workbook: %w", err)
	}
	return buf, nil
}

func setRow(f *excelize.File, row int, cells []any) error {
	for col, v := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetCellValue(reportSheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}

func toCells(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
