package absence

import (
	"context"
	"fmt"
	"sort"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/absence"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/database"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/jwt"
)

type AbsenceServiceImpl struct {
	db *database.DB
	absence.AbsenceRepository
}

func NewAbsenceService(db *database.DB, absenceRepo absence.AbsenceRepository) absence.AbsenceService {
	return &AbsenceServiceImpl{
		db:                db,
		AbsenceRepository: absenceRepo,
	}
}

// ListMine implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListMine(ctx context.Context, year int) (absence.ListResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return absence.ListResponse{}, err
	}

	records, err := s.AbsenceRepository.ListByYear(ctx, identity.EmployeeCode, year)
	if err != nil {
		return absence.ListResponse{}, fmt.Errorf("failed to list absences: %w", err)
	}

	response := absence.ListResponse{Year: year, Absences: make([]absence.AbsenceResponse, 0, len(records))}
	for _, rec := range records {
		response.Absences = append(response.Absences, toAbsenceResponse(rec))
	}

	return response, nil
}

// Summary implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Summary(ctx context.Context, year int) (absence.SummaryResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return absence.SummaryResponse{}, err
	}

	records, err := s.AbsenceRepository.ListByYear(ctx, identity.EmployeeCode, year)
	if err != nil {
		return absence.SummaryResponse{}, fmt.Errorf("failed to list absences: %w", err)
	}

	totals := absence.Aggregate(records)

	response := absence.SummaryResponse{Year: year, Totals: make([]absence.TypeSummaryDTO, 0, len(totals))}
	for typ, total := range totals {
		response.Totals = append(response.Totals, absence.TypeSummaryDTO{
			Type:      string(typ),
			HourBased: typ.HourBased(),
			Days:      total.Days,
			Hours:     total.HoursFormatted(),
		})
	}
	sort.Slice(response.Totals, func(i, j int) bool {
		return response.Totals[i].Type < response.Totals[j].Type
	})

	return response, nil
}

func toAbsenceResponse(rec absence.Absence) absence.AbsenceResponse {
	response := absence.AbsenceResponse{
		ID:            rec.ID,
		Type:          string(rec.Type),
		ApprovedDays:  rec.ApprovedDays,
		ApprovedHours: rec.ApprovedHours,
		Motive:        rec.Motive,
		Location:      rec.Location,
	}
	if rec.Date != nil {
		d := rec.Date.Format("2006-01-02")
		response.Date = &d
	}
	if rec.StartDate != nil {
		d := rec.StartDate.Format("2006-01-02")
		response.StartDate = &d
	}
	if rec.EndDate != nil {
		d := rec.EndDate.Format("2006-01-02")
		response.EndDate = &d
	}
	return response
}
