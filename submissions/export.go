package submissions

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Submissions"

// ExportFilePrefix is the fixed prefix for generated workbook downloads.
const ExportFilePrefix = "submissions-export-"

// ExportFileName returns the download name for an export generated now.
func ExportFileName(now time.Time) string {
	return ExportFilePrefix + now.Format("2006-01-02") + ".xlsx"
}

var exportHeader = []string{
	"Name",
	"Email",
	"Contact Number",
	"Event Type",
	"Event Date",
	"Event Time",
	"Message",
	"Status",
	"Submitted",
}

// ExportRow flattens a submission into the spreadsheet column order.
func ExportRow(s Submission) []string {
	submitted := ""
	if !s.Submitted.IsZero() {
		submitted = s.Submitted.Format("Jan 2, 2006 3:04 PM")
	}
	return []string{
		s.Name,
		s.Email,
		s.ContactNumber,
		s.EventType,
		s.EventDate,
		s.EventTime,
		s.Message,
		string(s.Status),
		submitted,
	}
}

// BuildWorkbook renders the given (already filtered) list as an .xlsx
// workbook with a header row. The caller owns closing the file.
func BuildWorkbook(list []Submission) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(f, 1, exportHeader); err != nil {
		return nil, err
	}
	for i, s := range list {
		if err := writeRow(f, i+2, ExportRow(s)); err != nil {
			return nil, err
		}
	}

	// Widen the message column so exports are readable without fiddling
	if err := f.SetColWidth(exportSheet, "G", "G", 48); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	return f, nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
