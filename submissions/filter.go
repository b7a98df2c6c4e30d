package submissions

import "strings"

// Type filter values accepted by the dashboard.
const (
	FilterAll   = "all"
	TypeEvent   = "event"
	TypeContact = "contact"
)

// FilterOptions is the dashboard's current filter/search state.
// Zero values ("" or "all") mean "no restriction" for that dimension.
type FilterOptions struct {
	Status string // "all" or a status value
	Type   string // "all", "event" or "contact"
	Search string // case-insensitive substring
}

// Apply derives the visible subset of list for the given filter state.
// The three steps compose by logical AND and the relative order of the
// input is preserved; applying the same options twice is a no-op.
func Apply(list []Submission, opts FilterOptions) []Submission {
	out := make([]Submission, 0, len(list))
	for _, s := range list {
		if !matchesStatus(s, opts.Status) {
			continue
		}
		if !matchesType(s, opts.Type) {
			continue
		}
		if !matchesSearch(s, opts.Search) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// An unrecognized status value filters nothing; it is not coerced to a
// real status like stored values are.
func matchesStatus(s Submission, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	want := Status(filter)
	if !want.Valid() {
		return true
	}
	return s.Status == want
}

func matchesType(s Submission, filter string) bool {
	switch filter {
	case TypeEvent:
		return s.IsEvent()
	case TypeContact:
		return !s.IsEvent()
	default:
		return true
	}
}

// matchesSearch checks a case-insensitive substring match against the
// searchable fields; a record is kept if any field matches.
func matchesSearch(s Submission, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range []string{s.Name, s.Email, s.ContactNumber, s.EventType, s.Message} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Stats are the dashboard header counts, derived from the full list.
type Stats struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Read      int `json:"read"`
	Responded int `json:"responded"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Denied    int `json:"denied"`
}

// CountByStatus tallies the list by effective status.
func CountByStatus(list []Submission) Stats {
	stats := Stats{Total: len(list)}
	for _, s := range list {
		switch s.Status {
		case StatusNew:
			stats.New++
		case StatusRead:
			stats.Read++
		case StatusResponded:
			stats.Responded++
		case StatusPending:
			stats.Pending++
		case StatusApproved:
			stats.Approved++
		case StatusDenied:
			stats.Denied++
		}
	}
	return stats
}
