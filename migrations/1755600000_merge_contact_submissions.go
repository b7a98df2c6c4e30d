package migrations

import (
	"log"

	"github.com/eunoia-events/site/submissions"
	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// The first generation of the site wrote general contact messages to a
// separate "contact-submissions" collection with older field names
// (phone/date/time/timestamp). This migration folds those records into the
// unified submissions collection, resolving the field aliases through the
// same normalizer the handlers use, then drops the old collection.
func init() {
	m.Register(func(app core.App) error {
		legacy, err := app.FindCollectionByNameOrId("contact-submissions")
		if err != nil {
			return nil // Fresh install, nothing to merge
		}

		target, err := app.FindCollectionByNameOrId("submissions")
		if err != nil {
			return err
		}

		records, err := app.FindAllRecords(legacy.Name)
		if err != nil {
			return err
		}

		migrated := 0
		for _, old := range records {
			doc := old.FieldsData()
			doc["created"] = old.GetDateTime("created")
			sub := submissions.Normalize(old.Id, doc)

			record := core.NewRecord(target)
			record.Set("name", sub.Name)
			record.Set("email", sub.Email)
			record.Set("contact_number", sub.ContactNumber)
			record.Set("event_type", sub.EventType)
			record.Set("event_date", sub.EventDate)
			record.Set("event_time", sub.EventTime)
			record.Set("location", sub.Location)
			record.Set("message", sub.Message)
			record.Set("status", string(sub.Status))

			if err := app.SaveNoValidate(record); err != nil {
				log.Printf("[Migration] Failed to migrate contact submission %s: %v", old.Id, err)
				continue
			}

			// Keep the original creation instant; the autodate column was
			// just set to the migration time
			if !sub.Submitted.IsZero() {
				_, err := app.DB().NewQuery("UPDATE submissions SET created = {:created} WHERE id = {:id}").
					Bind(dbx.Params{
						"created": sub.Submitted.UTC().Format("2006-01-02 15:04:05.000Z"),
						"id":      record.Id,
					}).Execute()
				if err != nil {
					log.Printf("[Migration] Failed to backdate %s: %v", record.Id, err)
				}
			}

			migrated++
		}

		if err := app.Delete(legacy); err != nil {
			return err
		}

		log.Printf("[Migration] Merged %d contact submissions into submissions", migrated)
		return nil
	}, nil)
}
