package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/absence"
	"github.com/nivelia-hr/fichaje-backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	ListMine(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

// ListMine implements AbsenceHandler.
func (h *AbsenceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	list, err := h.absenceService.ListMine(r.Context(), year)
	if err != nil {
		slog.Error("ListMine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Summary implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	summary, err := h.absenceService.Summary(r.Context(), year)
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), true
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(w, "year must be a four-digit year", nil)
		return 0, false
	}

	return year, true
}
