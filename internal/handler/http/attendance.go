package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/attendance"
	"github.com/nivelia-hr/fichaje-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	TodayStatus(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	UnplannedExit(w http.ResponseWriter, r *http.Request)
	RegisterIncident(w http.ResponseWriter, r *http.Request)
	ListMyEvents(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// TodayStatus implements AttendanceHandler.
func (h *AttendanceHandlerImpl) TodayStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.attendanceService.TodayStatus(r.Context())
	if err != nil {
		slog.Error("TodayStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClockRequest(w, r)
	if !ok {
		return
	}

	event, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Entry registered", event)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClockRequest(w, r)
	if !ok {
		return
	}

	event, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Exit registered", event)
}

// UnplannedExit implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UnplannedExit(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClockRequest(w, r)
	if !ok {
		return
	}

	event, err := h.attendanceService.UnplannedExit(r.Context(), req)
	if err != nil {
		slog.Error("UnplannedExit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Unplanned exit registered", event)
}

// RegisterIncident implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RegisterIncident(w http.ResponseWriter, r *http.Request) {
	var req attendance.IncidentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RegisterIncident decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.RegisterIncident(r.Context(), req); err != nil {
		slog.Error("RegisterIncident service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Incident registered", nil)
}

// ListMyEvents implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	events, err := h.attendanceService.ListMyEvents(r.Context(), month)
	if err != nil {
		slog.Error("ListMyEvents service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

func decodeClockRequest(w http.ResponseWriter, r *http.Request) (attendance.ClockRequest, bool) {
	var req attendance.ClockRequest

	// An empty body means a clock action without coordinates.
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Clock request decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return attendance.ClockRequest{}, false
		}
	}

	return req, true
}
