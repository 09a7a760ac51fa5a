package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSumElapsed(t *testing.T) {
	elapsed := func(s string) *string { return &s }
	empty := ""

	events := []Event{
		{Type: EventEntry, Time: "08:00:00"},
		{Type: EventExit, Time: "16:00:00", Elapsed: elapsed("08:00:00")},
		{Type: EventEntry, Time: "09:00:00"},
		{Type: EventExit, Time: "13:30:00", Elapsed: elapsed("04:30:00")},
		{Type: EventExit, Time: "19:00:00"},                   // awaiting computation
		{Type: EventExit, Time: "20:00:00", Elapsed: &empty}, // also pending
	}

	total := SumElapsed(events)
	assert.Equal(t, 12*time.Hour+30*time.Minute, total.Total)
	assert.Equal(t, 2, total.Pending, "pending exits must not count as zero")
	assert.Equal(t, "12:30:00", total.Formatted())
}

func TestSumElapsed_Empty(t *testing.T) {
	total := SumElapsed(nil)
	assert.Equal(t, time.Duration(0), total.Total)
	assert.Equal(t, 0, total.Pending)
	assert.Equal(t, "00:00:00", total.Formatted())
}
