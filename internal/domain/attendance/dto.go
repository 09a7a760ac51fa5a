package attendance

import (
	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/absence"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "latitude and longitude must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID           string   `json:"id"`
	EmployeeCode string   `json:"employee_code"`
	Type         string   `json:"type"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Location     *string  `json:"location,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Elapsed      *string  `json:"elapsed,omitempty"`
	// ElapsedPending distinguishes "not yet computed" from "00:00:00".
	ElapsedPending bool `json:"elapsed_pending"`
	Unplanned      bool `json:"unplanned,omitempty"`
}

type TodayStatusResponse struct {
	Date          string         `json:"date"`
	State         string         `json:"state"`
	Pattern       string         `json:"pattern"`
	Intervals     []IntervalDTO  `json:"intervals,omitempty"`
	EntryAllowed  bool           `json:"entry_allowed"`
	ExitAllowed   bool           `json:"exit_allowed"`
	EntryBlocked  *string        `json:"entry_blocked_reason,omitempty"`
	ExitBlocked   *string        `json:"exit_blocked_reason,omitempty"`
	AbsenceActive *string        `json:"absence_active,omitempty"`
	NextEntryAt   *string        `json:"next_entry_at,omitempty"`
	LastEvent     *EventResponse `json:"last_event,omitempty"`
}

type IntervalDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ListEventsResponse struct {
	Month        string          `json:"month"`
	Events       []EventResponse `json:"events"`
	WorkedTotal  string          `json:"worked_total"`
	PendingExits int             `json:"pending_exits"`
}

type IncidentRequest struct {
	Type   string `json:"type"`
	Date   string `json:"date"` // YYYY-MM-DD
	Motive string `json:"motive"`
}

func (r *IncidentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, absence.TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of the approved absence types",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Motive) {
		errs = append(errs, validator.ValidationError{
			Field:   "motive",
			Message: "motive is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
