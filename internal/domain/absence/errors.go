package absence

import "errors"

// Absence domain errors
var (
	ErrAbsenceNotFound = errors.New("absence record not found")
	ErrInvalidType     = errors.New("unknown absence type")
	ErrInvalidRange    = errors.New("absence end date is before its start date")
)
