package absence

import "context"

// AbsenceRepository reads and writes approved absence records. Records are
// created by the approval workflow (or an incident registration) and are
// read-only afterwards.
type AbsenceRepository interface {
	// ListByYear retrieves the employee's absences overlapping a year.
	ListByYear(ctx context.Context, employeeCode string, year int) ([]Absence, error)

	// Create inserts a new absence record (incident registration).
	Create(ctx context.Context, record Absence) (Absence, error)
}

// MedicalLeaveRepository reads medical leave records. Leave records are
// maintained by an external process and read-only to this service.
type MedicalLeaveRepository interface {
	ListByEmployee(ctx context.Context, employeeCode string) ([]MedicalLeave, error)
}
