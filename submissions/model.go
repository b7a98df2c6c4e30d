// Package submissions holds the canonical submission shape shared by the
// HTTP handlers, the migrations and the import tooling, plus the pure
// filtering and export logic the admin dashboard is built on.
package submissions

import (
	"sort"
	"time"
)

// Status is the closed status vocabulary for a submission.
type Status string

const (
	StatusNew       Status = "new"
	StatusRead      Status = "read"
	StatusResponded Status = "responded"
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDenied    Status = "denied"
)

// Statuses lists every valid status value, in display order.
var Statuses = []Status{
	StatusNew,
	StatusRead,
	StatusResponded,
	StatusPending,
	StatusApproved,
	StatusDenied,
}

// ParseStatus maps a stored status string to the closed vocabulary.
// An empty or unknown value maps to StatusNew, which is how the dashboard
// has always displayed and filtered records without a status.
func ParseStatus(raw string) Status {
	for _, s := range Statuses {
		if raw == string(s) {
			return s
		}
	}
	return StatusNew
}

// Valid reports whether s is part of the status vocabulary.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// EventTypes lists the event type options offered by the planning form.
var EventTypes = []string{
	"wedding",
	"corporate",
	"birthday",
	"anniversary",
	"graduation",
	"baby-shower",
	"other",
}

// ValidEventType reports whether t is one of the planning form options.
func ValidEventType(t string) bool {
	for _, v := range EventTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Submission is the canonical in-memory record, with all legacy field
// aliases already resolved by Normalize.
type Submission struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	EventType     string    `json:"eventType,omitempty"`
	EventDate     string    `json:"eventDate,omitempty"`
	EventTime     string    `json:"eventTime,omitempty"`
	Location      string    `json:"location,omitempty"`
	Message       string    `json:"message,omitempty"`
	Status        Status    `json:"status"`
	Submitted     time.Time `json:"submitted"`
}

// IsEvent reports whether the record came from the event planning form.
// General contact messages carry none of the event fields.
func (s Submission) IsEvent() bool {
	return s.EventType != "" || s.EventDate != "" || s.EventTime != ""
}

// SortNewestFirst orders submissions by creation time, newest first.
// The sort is stable so records with equal timestamps keep their
// relative order from the store.
func SortNewestFirst(list []Submission) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Submitted.After(list[j].Submitted)
	})
}
