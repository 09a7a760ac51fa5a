package absence

import "time"

type StatusKind string

const (
	StatusNone         StatusKind = "none"
	StatusMedicalLeave StatusKind = "medical_leave"
	StatusAbsence      StatusKind = "absence"
)

// CurrentStatus is the result of overlap detection for one day. A non-None
// status blocks both Entry and Exit regardless of the schedule window.
type CurrentStatus struct {
	Kind    StatusKind
	Leave   *MedicalLeave
	Absence *Absence
}

func (s CurrentStatus) Active() bool {
	return s.Kind != StatusNone
}

// TypeName is the user-facing name of whatever is keeping the employee away.
func (s CurrentStatus) TypeName() string {
	switch s.Kind {
	case StatusMedicalLeave:
		return "Baja médica"
	case StatusAbsence:
		return string(s.Absence.Type)
	default:
		return ""
	}
}

// Detect resolves the employee's status for today. Active medical leave wins
// unconditionally and suppresses ordinary absence evaluation; otherwise the
// first absence covering today is reported.
func Detect(today time.Time, leaves []MedicalLeave, absences []Absence) CurrentStatus {
	for i := range leaves {
		if leaves[i].ActiveOn(today) {
			return CurrentStatus{Kind: StatusMedicalLeave, Leave: &leaves[i]}
		}
	}

	for i := range absences {
		if absences[i].Covers(today) {
			return CurrentStatus{Kind: StatusAbsence, Absence: &absences[i]}
		}
	}

	return CurrentStatus{Kind: StatusNone}
}
