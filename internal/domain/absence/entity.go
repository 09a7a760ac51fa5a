package absence

import (
	"time"
)

// Type is the closed set of approved absence types. Each type is counted
// either in whole days or in hours; the two figures are never combined.
type Type string

const (
	TypeVacaciones          Type = "Vacaciones"
	TypeAsuntosPropios      Type = "Asuntos propios"
	TypePermisoNoRetribuido Type = "Permiso no retribuido"
	TypeMatrimonio          Type = "Matrimonio"
	TypeMudanza             Type = "Mudanza"
	TypeConsultaMedica      Type = "Consulta médica"
	TypeHorasSindicales     Type = "Horas sindicales"
	TypeLactancia           Type = "Lactancia"
	TypeDeberInexcusable    Type = "Deber inexcusable"
)

var hourBasedTypes = map[Type]bool{
	TypeConsultaMedica:   true,
	TypeHorasSindicales:  true,
	TypeLactancia:        true,
	TypeDeberInexcusable: true,
}

// HourBased reports whether the type is counted in hours. Unknown types fall
// back to day counting.
func (t Type) HourBased() bool {
	return hourBasedTypes[t]
}

var TypeValues = []string{
	string(TypeVacaciones),
	string(TypeAsuntosPropios),
	string(TypePermisoNoRetribuido),
	string(TypeMatrimonio),
	string(TypeMudanza),
	string(TypeConsultaMedica),
	string(TypeHorasSindicales),
	string(TypeLactancia),
	string(TypeDeberInexcusable),
}

// Absence is an approved absence record. It carries either a single Date or a
// StartDate/EndDate range. ApprovedHours keeps the upstream value verbatim: a
// colon-formatted duration ("04:30:00") or a decimal hour count ("4.5").
type Absence struct {
	ID            string
	EmployeeCode  string
	Type          Type
	Date          *time.Time
	StartDate     *time.Time
	EndDate       *time.Time
	ApprovedDays  *int
	ApprovedHours *string
	Motive        string
	Location      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Covers reports whether day falls on the record's date or inside its range,
// comparing civil dates only.
func (a Absence) Covers(day time.Time) bool {
	day = truncateDay(day)

	if a.Date != nil && truncateDay(*a.Date).Equal(day) {
		return true
	}
	if a.StartDate != nil && a.EndDate != nil {
		start := truncateDay(*a.StartDate)
		end := truncateDay(*a.EndDate)
		return !day.Before(start) && !day.After(end)
	}
	return false
}

// LeaveStatusDischarged marks a medical leave as closed by discharge ("alta").
// A discharged record is inactive no matter what its dates say.
const LeaveStatusDischarged = "alta"

// MedicalLeave is a "baja médica" record. An active leave takes precedence
// over every ordinary absence.
type MedicalLeave struct {
	ID           string
	EmployeeCode string
	StartDate    time.Time
	EndDate      *time.Time // nil = open-ended
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActiveOn reports whether the leave covers day. Discharged records are never
// active; open-ended records are active from their start date onwards.
func (m MedicalLeave) ActiveOn(day time.Time) bool {
	if m.Status == LeaveStatusDischarged {
		return false
	}

	day = truncateDay(day)
	start := truncateDay(m.StartDate)
	if day.Before(start) {
		return false
	}
	if m.EndDate != nil && day.After(truncateDay(*m.EndDate)) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
