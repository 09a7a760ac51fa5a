package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/attendance"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/timemath"
)

const exitBatchSize = 100

// AttendanceJobs computes elapsed working durations on Exit events. Clients
// never compute this themselves: they submit the Exit and poll until the job
// has filled the duration in.
type AttendanceJobs struct {
	eventRepo attendance.EventRepository
}

func NewAttendanceJobs(eventRepo attendance.EventRepository) *AttendanceJobs {
	return &AttendanceJobs{eventRepo: eventRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("compute_exit_durations", 5*time.Second, j.ComputeExitDurations)
}

// ComputeExitDurations fills the elapsed duration on Exit events that close a
// same-day Entry. An Exit with no matching Entry (an unplanned exit after a
// missed clock-in) is left pending for manual review.
func (j *AttendanceJobs) ComputeExitDurations(ctx context.Context) error {
	exits, err := j.eventRepo.ListExitsWithoutElapsed(ctx, exitBatchSize)
	if err != nil {
		return fmt.Errorf("failed to list exits awaiting duration: %w", err)
	}

	computed := 0
	for _, exit := range exits {
		entry, err := j.eventRepo.GetEntryForExit(ctx, exit)
		if err != nil {
			slog.Error("Cron: failed to find entry for exit", "event_id", exit.ID, "error", err)
			continue
		}
		if entry == nil {
			continue
		}

		minutes := timemath.IntervalLength(entry.Minute(), exit.Minute())
		elapsed := timemath.FormatHMS(time.Duration(minutes) * time.Minute)

		if err := j.eventRepo.SetElapsed(ctx, exit.ID, elapsed); err != nil {
			slog.Error("Cron: failed to store elapsed duration", "event_id", exit.ID, "error", err)
			continue
		}
		computed++
	}

	if computed > 0 {
		slog.Info("Cron: computed exit durations", "count", computed)
	}
	return nil
}
