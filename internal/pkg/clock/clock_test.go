package clock

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNetworkClock_UsesAPITime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"datetime":"2025-07-15T08:30:00Z"}`))
	}))
	defer server.Close()

	c := NewNetworkClock(server.URL, time.Second)
	got := c.Now()
	want := time.Date(2025, time.July, 15, 8, 30, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "Now() = %v, want %v", got, want)
}

func TestNetworkClock_FallsBackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewNetworkClock(server.URL, time.Second)
	before := time.Now()
	got := c.Now()
	after := time.Now()
	assert.False(t, got.Before(before.Add(-time.Second)) || got.After(after.Add(time.Second)),
		"fallback time should be close to the local clock")
}

func TestNetworkClock_FallsBackOnBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"datetime":"not a timestamp"}`))
	}))
	defer server.Close()

	c := NewNetworkClock(server.URL, time.Second)
	got := c.Now()
	assert.WithinDuration(t, time.Now(), got, 2*time.Second)
}

func TestNetworkClock_EmptyURLUsesLocalClock(t *testing.T) {
	c := NewNetworkClock("", time.Second)
	assert.WithinDuration(t, time.Now(), c.Now(), 2*time.Second)
}
