package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/eunoia-events/site/submissions"
	"github.com/eunoia-events/site/utils"
	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
)

// normalizeRecord converts a stored record to the canonical shape. The
// store-assigned created column is the canonical creation instant.
func normalizeRecord(record *core.Record) submissions.Submission {
	doc := record.FieldsData()
	doc["created"] = record.GetDateTime("created")
	return submissions.Normalize(record.Id, doc)
}

// handleSubmissionsList returns the filtered submissions list for the
// dashboard. The store does no querying: the full collection is scanned,
// normalized, sorted newest first, then filtered in memory.
func handleSubmissionsList(re *core.RequestEvent, app core.App) error {
	records, err := app.FindAllRecords(utils.CollectionSubmissions)
	if err != nil {
		log.Printf("[Submissions] Failed to fetch: %v", err)
		return utils.InternalErrorResponse(re, "Failed to fetch submissions. Please try again.")
	}

	list := make([]submissions.Submission, len(records))
	for i, r := range records {
		list[i] = normalizeRecord(r)
	}
	submissions.SortNewestFirst(list)

	// Stats reflect the whole collection, not the filtered view
	stats := submissions.CountByStatus(list)

	q := re.Request.URL.Query()
	visible := submissions.Apply(list, submissions.FilterOptions{
		Status: q.Get("status"),
		Type:   q.Get("type"),
		Search: q.Get("search"),
	})

	return utils.DataResponse(re, map[string]any{
		"items":      visible,
		"totalItems": len(visible),
		"stats":      stats,
	})
}

// handleSubmissionStatusUpdate sets a submission's status. Any status may
// follow any other; only the vocabulary itself is enforced.
func handleSubmissionStatusUpdate(re *core.RequestEvent, app core.App) error {
	id := re.Request.PathValue("id")
	if id == "" {
		return utils.BadRequestResponse(re, "Submission ID required")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(re.Request.Body).Decode(&input); err != nil {
		return utils.BadRequestResponse(re, "Invalid request body")
	}

	status := submissions.Status(input.Status)
	if !status.Valid() {
		return utils.BadRequestResponse(re, "Unknown status value")
	}

	record, err := app.FindRecordById(utils.CollectionSubmissions, id)
	if err != nil {
		return utils.NotFoundResponse(re, "Submission not found")
	}

	record.Set(utils.FieldStatus, string(status))
	if err := app.Save(record); err != nil {
		log.Printf("[Submissions] Failed to update status for %s: %v", id, err)
		return utils.InternalErrorResponse(re, "Failed to update status. Please try again.")
	}

	return utils.DataResponse(re, normalizeRecord(record))
}

// handleSubmissionDelete hard-deletes a submission. Deleting an unknown id
// reports an error and changes nothing.
func handleSubmissionDelete(re *core.RequestEvent, app core.App) error {
	id := re.Request.PathValue("id")
	if id == "" {
		return utils.BadRequestResponse(re, "Submission ID required")
	}

	record, err := app.FindRecordById(utils.CollectionSubmissions, id)
	if err != nil {
		return utils.NotFoundResponse(re, "Submission not found")
	}

	if err := app.Delete(record); err != nil {
		log.Printf("[Submissions] Failed to delete %s: %v", id, err)
		return utils.InternalErrorResponse(re, "Failed to delete submission. Please try again.")
	}

	return utils.SuccessResponse(re, "Submission deleted")
}

// handleSubmissionComposeURL builds a web mail compose link for replying to
// a submission. The dashboard opens it in a new tab; nothing is sent here.
func handleSubmissionComposeURL(re *core.RequestEvent, app core.App) error {
	id := re.Request.PathValue("id")
	if id == "" {
		return utils.BadRequestResponse(re, "Submission ID required")
	}

	record, err := app.FindRecordById(utils.CollectionSubmissions, id)
	if err != nil {
		return utils.NotFoundResponse(re, "Submission not found")
	}

	return utils.DataResponse(re, map[string]string{
		"url": composeURL(normalizeRecord(record)),
	})
}

// handleAdminStats returns the dashboard header counts straight from the
// store, without loading records into memory.
func handleAdminStats(re *core.RequestEvent, app core.App) error {
	// Records without a status count as new
	newCount, _ := app.CountRecords(utils.CollectionSubmissions, dbx.NewExp("status = 'new' OR status = ''"))
	read, _ := app.CountRecords(utils.CollectionSubmissions, dbx.NewExp("status = 'read'"))
	responded, _ := app.CountRecords(utils.CollectionSubmissions, dbx.NewExp("status = 'responded'"))
	pending, _ := app.CountRecords(utils.CollectionSubmissions, dbx.NewExp("status = 'pending'"))
	approved, _ := app.CountRecords(utils.CollectionSubmissions, dbx.NewExp("status = 'approved'"))
	denied, _ := app.CountRecords(utils.CollectionSubmissions, dbx.NewExp("status = 'denied'"))
	total, _ := app.CountRecords(utils.CollectionSubmissions)

	thirtyDaysAgo := time.Now().UTC().AddDate(0, 0, -30).Format("2006-01-02 15:04:05.000Z")
	recent, _ := app.CountRecords(utils.CollectionSubmissions, dbx.NewExp("created >= {:since}", dbx.Params{"since": thirtyDaysAgo}))

	subscribers, _ := app.CountRecords(utils.CollectionSubscriptions)

	return utils.DataResponse(re, map[string]any{
		"submissions": map[string]int64{
			"total":     total,
			"new":       newCount,
			"read":      read,
			"responded": responded,
			"pending":   pending,
			"approved":  approved,
			"denied":    denied,
		},
		"recent_submissions": recent,
		"subscribers":        subscribers,
	})
}
