package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/eunoia-events/site/submissions"
	"github.com/eunoia-events/site/utils"
	"github.com/pocketbase/pocketbase/core"
)

// handleSubmissionsExport streams the currently filtered view as an .xlsx
// download. The same filter parameters as the list endpoint apply, so the
// export always matches what the operator sees.
func handleSubmissionsExport(re *core.RequestEvent, app core.App) error {
	records, err := app.FindAllRecords(utils.CollectionSubmissions)
	if err != nil {
		log.Printf("[Export] Failed to fetch: %v", err)
		return utils.InternalErrorResponse(re, "Failed to fetch submissions. Please try again.")
	}

	list := make([]submissions.Submission, len(records))
	for i, r := range records {
		list[i] = normalizeRecord(r)
	}
	submissions.SortNewestFirst(list)

	q := re.Request.URL.Query()
	visible := submissions.Apply(list, submissions.FilterOptions{
		Status: q.Get("status"),
		Type:   q.Get("type"),
		Search: q.Get("search"),
	})

	workbook, err := submissions.BuildWorkbook(visible)
	if err != nil {
		log.Printf("[Export] Failed to build workbook: %v", err)
		return utils.InternalErrorResponse(re, "Failed to generate export")
	}
	defer workbook.Close()

	filename := submissions.ExportFileName(time.Now())

	h := re.Response.Header()
	h.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	re.Response.WriteHeader(http.StatusOK)

	if err := workbook.Write(re.Response); err != nil {
		// Headers already sent, nothing to do but log
		log.Printf("[Export] Failed to write workbook: %v", err)
		return nil
	}

	utils.LogFromRequest(app, re, "export", utils.CollectionSubmissions, "", "success",
		map[string]any{"rows": len(visible), "filename": filename}, "")

	return nil
}

// exportSubmissionsToFile writes the full collection to an .xlsx file on
// disk. Used by the export-submissions CLI command.
func exportSubmissionsToFile(app core.App, path string) (int, error) {
	records, err := app.FindAllRecords(utils.CollectionSubmissions)
	if err != nil {
		return 0, fmt.Errorf("fetch submissions: %w", err)
	}

	list := make([]submissions.Submission, len(records))
	for i, r := range records {
		list[i] = normalizeRecord(r)
	}
	submissions.SortNewestFirst(list)

	workbook, err := submissions.BuildWorkbook(list)
	if err != nil {
		return 0, fmt.Errorf("build workbook: %w", err)
	}
	defer workbook.Close()

	if err := workbook.SaveAs(path); err != nil {
		return 0, fmt.Errorf("save workbook: %w", err)
	}

	return len(list), nil
}
