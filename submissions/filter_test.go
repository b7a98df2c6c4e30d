package submissions

import (
	"reflect"
	"testing"
	"time"
)

func sampleList() []Submission {
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return []Submission{
		{ID: "a", Name: "Alice", Email: "a@x.com", Status: StatusNew, Submitted: base.Add(3 * time.Hour)},
		{ID: "b", Name: "Bob", Email: "b@y.com", Message: "alice requested a quote", Status: StatusRead, Submitted: base.Add(2 * time.Hour)},
		{ID: "c", Name: "Carol", Email: "carol@z.com", EventType: "wedding", EventDate: "2026-09-12", Status: StatusPending, Submitted: base.Add(time.Hour)},
		{ID: "d", Name: "Dave", Email: "dave@z.com", EventTime: "18:00", Status: StatusResponded, Submitted: base},
	}
}

func ids(list []Submission) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.ID
	}
	return out
}

func TestApply(t *testing.T) {
	testCases := []struct {
		name     string
		opts     FilterOptions
		expected []string
	}{
		{
			name:     "no filters keeps everything",
			opts:     FilterOptions{},
			expected: []string{"a", "b", "c", "d"},
		},
		{
			name:     "all values keep everything",
			opts:     FilterOptions{Status: FilterAll, Type: FilterAll},
			expected: []string{"a", "b", "c", "d"},
		},
		{
			name:     "status filter",
			opts:     FilterOptions{Status: "read"},
			expected: []string{"b"},
		},
		{
			name:     "unrecognized status value does not filter",
			opts:     FilterOptions{Status: "bogus"},
			expected: []string{"a", "b", "c", "d"},
		},
		{
			name:     "event type filter",
			opts:     FilterOptions{Type: TypeEvent},
			expected: []string{"c", "d"},
		},
		{
			name:     "contact type filter",
			opts:     FilterOptions{Type: TypeContact},
			expected: []string{"a", "b"},
		},
		{
			name:     "search matches name and message across records",
			opts:     FilterOptions{Search: "alice"},
			expected: []string{"a", "b"},
		},
		{
			name:     "search is case insensitive",
			opts:     FilterOptions{Search: "ALICE"},
			expected: []string{"a", "b"},
		},
		{
			name:     "search matches event type",
			opts:     FilterOptions{Search: "wedd"},
			expected: []string{"c"},
		},
		{
			name:     "filters compose by AND",
			opts:     FilterOptions{Status: "pending", Type: TypeEvent, Search: "carol"},
			expected: []string{"c"},
		},
		{
			name:     "AND composition can be empty",
			opts:     FilterOptions{Status: "new", Type: TypeEvent},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Apply(sampleList(), tc.opts))
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Apply returned %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	opts := FilterOptions{Status: FilterAll, Type: TypeEvent, Search: "2026"}
	once := Apply(sampleList(), opts)
	twice := Apply(once, opts)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("applying the same filter twice changed the result: %v vs %v", ids(once), ids(twice))
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	list := sampleList()
	got := Apply(list, FilterOptions{Type: TypeContact})

	// Surviving records must appear in their original relative order
	last := -1
	for _, s := range got {
		idx := -1
		for i, orig := range list {
			if orig.ID == s.ID {
				idx = i
				break
			}
		}
		if idx <= last {
			t.Fatalf("record %s out of order in %v", s.ID, ids(got))
		}
		last = idx
	}
}

func TestStatusDefaultTreatedAsNew(t *testing.T) {
	list := []Submission{
		{ID: "explicit", Status: StatusNew},
		{ID: "absent", Status: ParseStatus("")},
	}
	got := Apply(list, FilterOptions{Status: "new"})
	if len(got) != 2 {
		t.Errorf("expected both records to match status=new, got %v", ids(got))
	}

	stats := CountByStatus(list)
	if stats.New != 2 || stats.Total != 2 {
		t.Errorf("expected stats new=2 total=2, got %+v", stats)
	}
}

func TestIsEvent(t *testing.T) {
	testCases := []struct {
		name     string
		sub      Submission
		expected bool
	}{
		{"no event fields", Submission{Name: "x", ContactNumber: "+1 555"}, false},
		{"event type only", Submission{EventType: "birthday"}, true},
		{"event date only", Submission{EventDate: "2026-01-01"}, true},
		{"event time only", Submission{EventTime: "14:00"}, true},
		{"all event fields", Submission{EventType: "other", EventDate: "2026-01-01", EventTime: "14:00"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sub.IsEvent(); got != tc.expected {
				t.Errorf("IsEvent() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSortNewestFirst(t *testing.T) {
	list := sampleList()
	// Shuffle deterministically
	list[0], list[3] = list[3], list[0]
	list[1], list[2] = list[2], list[1]

	SortNewestFirst(list)

	expected := []string{"a", "b", "c", "d"}
	if got := ids(list); !reflect.DeepEqual(got, expected) {
		t.Errorf("SortNewestFirst produced %v, expected %v", got, expected)
	}
}

func TestCountByStatus(t *testing.T) {
	stats := CountByStatus(sampleList())
	expected := Stats{Total: 4, New: 1, Read: 1, Responded: 1, Pending: 1}
	if stats != expected {
		t.Errorf("CountByStatus = %+v, expected %+v", stats, expected)
	}
}
