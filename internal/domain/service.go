package domain

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// TimeRange a single availability window within one weekday, e.g. 09:00-17:00
type TimeRange struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Contains returns true if the interval [start, end) lies entirely inside the window
func (r TimeRange) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(r.Start) && !end.IsAfter(r.End)
}

// Availability weekly schedule of a service: weekday name (lowercase English)
// to an ordered list of non-overlapping windows. A missing or empty day means
// the service cannot be booked on that day.
type Availability map[string][]TimeRange

// WindowsFor returns the availability windows for the given weekday
func (a Availability) WindowsFor(weekday time.Weekday) []TimeRange {
	if a == nil {
		return nil
	}
	return a[WeekdayKey(weekday)]
}

// WeekdayKey converts time.Weekday into the lowercase key used in Availability
func WeekdayKey(weekday time.Weekday) string {
	switch weekday {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	case time.Sunday:
		return "sunday"
	default:
		return ""
	}
}

// Service represents a provider-owned marketplace listing
type Service struct {
	ID              string
	ProviderID      string // владелец, не меняется после создания
	Title           string
	Description     string
	Category        string
	Price           float64
	Currency        string
	DurationMinutes int
	Availability    Availability
	Images          []string
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy returns true if the service belongs to the given provider
func (s *Service) IsOwnedBy(userID string) bool {
	return s.ProviderID == userID
}

// IsBookable returns true if the service can accept new bookings
func (s *Service) IsBookable() bool {
	return s.IsActive
}
