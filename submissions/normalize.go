package submissions

import (
	"time"
)

// Stored field names. The site has gone through two form generations: the
// original contact form wrote phone/date/time/timestamp, the event planning
// form writes contact_number/event_date/event_time and relies on the store's
// created column. Normalize prefers the newer name and falls back to the
// legacy alias so the rest of the system only ever sees one shape.
var (
	contactNumberAliases = []string{"contact_number", "contactNumber", "phone"}
	eventTypeAliases     = []string{"event_type", "eventType"}
	eventDateAliases     = []string{"event_date", "eventDate", "date"}
	eventTimeAliases     = []string{"event_time", "eventTime", "time"}
	submittedAliases     = []string{"created", "createdAt", "timestamp"}
)

// Normalize maps a raw stored document plus its store-assigned id to the
// canonical Submission shape. It is total: absent fields become zero values,
// never errors, and the input document is not mutated.
func Normalize(id string, doc map[string]any) Submission {
	return Submission{
		ID:            id,
		Name:          stringField(doc, "name"),
		Email:         stringField(doc, "email"),
		ContactNumber: stringField(doc, contactNumberAliases...),
		EventType:     stringField(doc, eventTypeAliases...),
		EventDate:     stringField(doc, eventDateAliases...),
		EventTime:     stringField(doc, eventTimeAliases...),
		Location:      stringField(doc, "location"),
		Message:       stringField(doc, "message"),
		Status:        ParseStatus(stringField(doc, "status")),
		Submitted:     timeField(doc, submittedAliases...),
	}
}

// stringField returns the first non-empty string among the given keys.
func stringField(doc map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := doc[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// timeField resolves the creation instant from the first present alias.
// Stored values appear as datetime strings, as Unix seconds, or as the
// {seconds, nanoseconds} object shape older imported documents carry.
func timeField(doc map[string]any, keys ...string) time.Time {
	for _, key := range keys {
		raw, ok := doc[key]
		if !ok || raw == nil {
			continue
		}
		if t := parseStoredTime(raw); !t.IsZero() {
			return t
		}
	}
	return time.Time{}
}

var storedTimeFormats = []string{
	"2006-01-02 15:04:05.000Z",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
}

func parseStoredTime(raw any) time.Time {
	switch v := raw.(type) {
	case string:
		for _, format := range storedTimeFormats {
			if t, err := time.Parse(format, v); err == nil {
				return t
			}
		}
	case float64:
		return time.Unix(int64(v), 0).UTC()
	case int64:
		return time.Unix(v, 0).UTC()
	case map[string]any:
		if secs, ok := v["seconds"].(float64); ok {
			return time.Unix(int64(secs), 0).UTC()
		}
	case interface{ Time() time.Time }:
		// PocketBase types.DateTime
		return v.Time()
	}
	return time.Time{}
}
