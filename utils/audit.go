package utils

import (
	"log"

	"github.com/pocketbase/pocketbase/core"
)

// AuditEntry represents an audit log entry
type AuditEntry struct {
	Action       string // create, update, delete, login, login_failed, export
	ResourceType string
	ResourceID   string
	IPAddress    string
	UserAgent    string
	Changes      map[string]any
	Status       string // success, failure, error
	ErrorMessage string
}

// LogAudit creates an audit log entry asynchronously to avoid blocking requests
func LogAudit(app core.App, entry AuditEntry) {
	go func() {
		collection, err := app.FindCollectionByNameOrId(CollectionAuditLogs)
		if err != nil {
			log.Printf("[Audit] Collection not found: %v", err)
			return
		}

		record := core.NewRecord(collection)
		record.Set("action", entry.Action)
		record.Set("resource_type", entry.ResourceType)
		record.Set("resource_id", entry.ResourceID)
		record.Set("ip_address", entry.IPAddress)
		record.Set("user_agent", entry.UserAgent)
		record.Set("changes", entry.Changes)
		record.Set("status", entry.Status)
		record.Set("error_message", entry.ErrorMessage)

		if err := app.Save(record); err != nil {
			log.Printf("[Audit] Failed to save audit log: %v", err)
		}
	}()
}

// LogFromRequest creates an audit entry from a request event
func LogFromRequest(app core.App, re *core.RequestEvent, action, resourceType, resourceID, status string, changes map[string]any, errorMessage string) {
	LogAudit(app, AuditEntry{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    re.RealIP(),
		UserAgent:    re.Request.UserAgent(),
		Changes:      changes,
		Status:       status,
		ErrorMessage: errorMessage,
	})
}

// LogRecordChange logs a record change from PocketBase hooks
func LogRecordChange(app core.App, action, resourceType, resourceID string, changes map[string]any) {
	LogAudit(app, AuditEntry{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Changes:      changes,
		Status:       "success",
	})
}
