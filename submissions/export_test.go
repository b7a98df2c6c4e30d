package submissions

import (
	"testing"
	"time"
)

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 8, 28, 17, 30, 0, 0, time.UTC)
	got := ExportFileName(now)
	expected := "submissions-export-2026-08-28.xlsx"
	if got != expected {
		t.Errorf("ExportFileName = %q, expected %q", got, expected)
	}
}

func TestExportRow(t *testing.T) {
	sub := Submission{
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		ContactNumber: "+1 555 000 1111",
		EventType:     "wedding",
		EventDate:     "2026-05-01",
		EventTime:     "14:00",
		Message:       "garden ceremony",
		Status:        StatusPending,
		Submitted:     time.Date(2026, 4, 1, 15, 4, 0, 0, time.UTC),
	}

	got := ExportRow(sub)
	expected := []string{
		"Jane Doe", "jane@example.com", "+1 555 000 1111",
		"wedding", "2026-05-01", "14:00",
		"garden ceremony", "pending", "Apr 1, 2026 3:04 PM",
	}

	if len(got) != len(expected) {
		t.Fatalf("ExportRow returned %d columns, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("column %d = %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestExportRowZeroTimestamp(t *testing.T) {
	got := ExportRow(Submission{Name: "No Time"})
	if got[8] != "" {
		t.Errorf("expected empty submitted column for zero timestamp, got %q", got[8])
	}
}

func TestBuildWorkbook(t *testing.T) {
	list := []Submission{
		{Name: "Alice", Email: "a@x.com", Status: StatusNew},
		{Name: "Carol", Email: "carol@z.com", EventType: "wedding", Status: StatusPending},
	}

	f, err := BuildWorkbook(list)
	if err != nil {
		t.Fatalf("BuildWorkbook failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Submissions")
	if err != nil {
		t.Fatalf("reading sheet failed: %v", err)
	}

	// Header plus one row per submission
	if len(rows) != len(list)+1 {
		t.Fatalf("workbook has %d rows, expected %d", len(rows), len(list)+1)
	}
	if rows[0][0] != "Name" || rows[0][7] != "Status" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Alice" || rows[2][0] != "Carol" {
		t.Errorf("rows out of order or wrong: %v / %v", rows[1], rows[2])
	}
	if rows[2][3] != "wedding" {
		t.Errorf("event type column = %q, expected %q", rows[2][3], "wedding")
	}
}

func TestBuildWorkbookEmptyList(t *testing.T) {
	f, err := BuildWorkbook(nil)
	if err != nil {
		t.Fatalf("BuildWorkbook failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Submissions")
	if err != nil {
		t.Fatalf("reading sheet failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("empty export should still have a header row, got %d rows", len(rows))
	}
}
