package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/noah-isme/campus-reports-api/internal/models"
)

// tally holds the distinct counts folded for one grouping key.
type tally struct {
	Registrations int
	Attendances   int
	FeedbackCount int
	RatingSum     int

	attendedEvents []string
}

// AttendanceRate is the rounded per-row attendance rate.
func (t tally) AttendanceRate() float64 {
	return Rate(t.Attendances, t.Registrations)
}

func (t tally) rawAttendanceRate() float64 {
	if t.Registrations == 0 {
		return 0
	}
	return float64(t.Attendances) / float64(t.Registrations) * 100
}

// compareRating orders two tallies by exact mean rating without floating point error.
func compareRating(a, b tally) int {
	left := int64(a.RatingSum) * int64(max(b.FeedbackCount, 1))
	right := int64(b.RatingSum) * int64(max(a.FeedbackCount, 1))
	if a.FeedbackCount == 0 {
		left = 0
	}
	if b.FeedbackCount == 0 {
		right = 0
	}
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}

// datasetIndex is a tenant-checked view over a snapshot restricted to in-scope events.
type datasetIndex struct {
	scoped        []models.Event
	events        map[string]models.Event
	registrations []models.Registration
	attended      map[string]bool
	feedback      []models.Feedback
}

// indexDataset keeps events accepted by scope, the live registrations against them, the attendances
// backed by those registrations and the feedback left on them. Every record is counted once by id.
// A record belonging to another college is a store fault.
func indexDataset(dataset *models.ReportDataset, scope func(models.Event) bool) (*datasetIndex, error) {
	if dataset == nil {
		return nil, errors.New("report dataset is nil")
	}
	idx := &datasetIndex{
		events:   make(map[string]models.Event, len(dataset.Events)),
		attended: make(map[string]bool),
	}
	for _, event := range dataset.Events {
		if event.CollegeID != dataset.CollegeID {
			return nil, fmt.Errorf("event %s belongs to college %s, expected %s", event.ID, event.CollegeID, dataset.CollegeID)
		}
		if scope != nil && !scope(event) {
			continue
		}
		if _, dup := idx.events[event.ID]; dup {
			continue
		}
		idx.events[event.ID] = event
		idx.scoped = append(idx.scoped, event)
	}
	for _, student := range dataset.Students {
		if student.CollegeID != dataset.CollegeID {
			return nil, fmt.Errorf("user %s belongs to college %s, expected %s", student.ID, student.CollegeID, dataset.CollegeID)
		}
	}

	seenRegistrations := make(map[string]bool, len(dataset.Registrations))
	live := make(map[string]bool, len(dataset.Registrations))
	for _, registration := range dataset.Registrations {
		if !registration.Live() || seenRegistrations[registration.ID] {
			continue
		}
		if _, ok := idx.events[registration.EventID]; !ok {
			continue
		}
		seenRegistrations[registration.ID] = true
		live[registration.ID] = true
		idx.registrations = append(idx.registrations, registration)
	}
	for _, attendance := range dataset.Attendance {
		if live[attendance.RegistrationID] {
			idx.attended[attendance.RegistrationID] = true
		}
	}

	seenFeedback := make(map[string]bool, len(dataset.Feedback))
	for _, fb := range dataset.Feedback {
		if seenFeedback[fb.ID] {
			continue
		}
		if _, ok := idx.events[fb.EventID]; !ok {
			continue
		}
		seenFeedback[fb.ID] = true
		idx.feedback = append(idx.feedback, fb)
	}
	return idx, nil
}

// groupKey selects which entity a fold groups by.
type groupKey int

const (
	byEvent groupKey = iota
	byUser
)

func (g groupKey) ofRegistration(r models.Registration) string {
	if g == byUser {
		return r.UserID
	}
	return r.EventID
}

func (g groupKey) ofFeedback(f models.Feedback) string {
	if g == byUser {
		return f.UserID
	}
	return f.EventID
}

// fold aggregates registrations, attendances and feedback per grouping key.
func (idx *datasetIndex) fold(group groupKey) map[string]tally {
	tallies := make(map[string]tally)
	attendedEvents := make(map[string]map[string]bool)
	for _, registration := range idx.registrations {
		key := group.ofRegistration(registration)
		t := tallies[key]
		t.Registrations++
		if idx.attended[registration.ID] {
			t.Attendances++
			if group == byUser {
				if attendedEvents[key] == nil {
					attendedEvents[key] = make(map[string]bool)
				}
				attendedEvents[key][registration.EventID] = true
			}
		}
		tallies[key] = t
	}
	for _, fb := range idx.feedback {
		key := group.ofFeedback(fb)
		t := tallies[key]
		t.FeedbackCount++
		t.RatingSum += fb.Rating
		tallies[key] = t
	}
	for key, events := range attendedEvents {
		t := tallies[key]
		t.attendedEvents = idx.recentEventNames(events)
		tallies[key] = t
	}
	return tallies
}

// recentEventNames lists distinct event names, most recent start first.
func (idx *datasetIndex) recentEventNames(eventIDs map[string]bool) []string {
	events := make([]models.Event, 0, len(eventIDs))
	for id := range eventIDs {
		events = append(events, idx.events[id])
	}
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].StartDate.Equal(events[j].StartDate) {
			return events[i].StartDate.After(events[j].StartDate)
		}
		return events[i].ID < events[j].ID
	})
	names := make([]string, 0, len(events))
	seen := make(map[string]bool, len(events))
	for _, event := range events {
		if seen[event.Name] {
			continue
		}
		seen[event.Name] = true
		names = append(names, event.Name)
	}
	return names
}
