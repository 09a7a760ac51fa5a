package absence

// ========================================
// ABSENCE DTOs
// ========================================

type AbsenceResponse struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Date          *string `json:"date,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	ApprovedDays  *int    `json:"approved_days,omitempty"`
	ApprovedHours *string `json:"approved_hours,omitempty"`
	Motive        string  `json:"motive,omitempty"`
	Location      *string `json:"location,omitempty"`
}

type ListResponse struct {
	Year     int               `json:"year"`
	Absences []AbsenceResponse `json:"absences"`
}

// TypeSummaryDTO reports one absence type's period total. Day-based types
// carry days, hour-based types carry an "HH:MM:SS" hour total; the unused
// figure stays at its zero value.
type TypeSummaryDTO struct {
	Type      string `json:"type"`
	HourBased bool   `json:"hour_based"`
	Days      int    `json:"days"`
	Hours     string `json:"hours"`
}

type SummaryResponse struct {
	Year   int              `json:"year"`
	Totals []TypeSummaryDTO `json:"totals"`
}
