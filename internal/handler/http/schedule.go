package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/schedule"
	"github.com/nivelia-hr/fichaje-backend-go/internal/handler/http/response"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/jwt"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/validator"
)

type ScheduleHandler interface {
	MyPattern(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

type patternResponse struct {
	Date      string        `json:"date"`
	Pattern   string        `json:"pattern"`
	Intervals []intervalDTO `json:"intervals,omitempty"`
}

type intervalDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MyPattern resolves the effective day pattern for the authenticated
// employee. The date defaults to today.
func (h *ScheduleHandlerImpl) MyPattern(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	scope := schedule.EmployeeScope{
		EmployeeCode: identity.EmployeeCode,
		CenterID:     identity.CenterID,
		GroupCode:    identity.GroupCode,
	}
	pattern, err := h.scheduleService.EffectivePattern(r.Context(), scope, date)
	if err != nil {
		slog.Error("MyPattern service error", "error", err)
		response.HandleError(w, err)
		return
	}

	result := patternResponse{
		Date:    date.Format("2006-01-02"),
		Pattern: string(pattern.Kind),
	}
	for _, iv := range pattern.Intervals {
		result.Intervals = append(result.Intervals, intervalDTO{Start: iv.StartLabel, End: iv.EndLabel})
	}

	response.Success(w, result)
}
