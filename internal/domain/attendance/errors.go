package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors. Gate rejections wrap one of the sentinel errors
// below so handlers can map them while keeping the detailed message.
var (
	ErrDuplicateEvent   = errors.New("an event of the same type was already registered")
	ErrWindowViolation  = errors.New("outside the allowed clocking window")
	ErrAbsenceActive    = errors.New("an approved absence covers today")
	ErrDayBlocked       = errors.New("today is an explicit day off")
	ErrNotClockedIn     = errors.New("no open attendance session")
	ErrCycleNotComplete = errors.New("attendance cycle is not complete")
	ErrEventNotFound    = errors.New("attendance event not found")
)

// DuplicateError rejects a second consecutive event of the same type, naming
// the last event so the message can reference it.
type DuplicateError struct {
	LastType EventType
	LastTime string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("a %s was already registered at %s", e.LastType, e.LastTime)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicateEvent }

// WindowError rejects an event outside its allowed window. NextAt carries the
// boundary time the user-facing message should reference, when known.
type WindowError struct {
	Type   EventType
	NextAt string
}

func (e *WindowError) Error() string {
	if e.NextAt == "" {
		return fmt.Sprintf("%s is not allowed at this time", e.Type)
	}
	return fmt.Sprintf("%s is not allowed until %s", e.Type, e.NextAt)
}

func (e *WindowError) Unwrap() error { return ErrWindowViolation }

// AbsenceActiveError rejects clock actions while an absence or medical leave
// covers today.
type AbsenceActiveError struct {
	TypeName string
}

func (e *AbsenceActiveError) Error() string {
	return fmt.Sprintf("clock actions are blocked by an active absence: %s", e.TypeName)
}

func (e *AbsenceActiveError) Unwrap() error { return ErrAbsenceActive }
