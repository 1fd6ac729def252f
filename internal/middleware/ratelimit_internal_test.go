package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_EvictsExpiredClients(t *testing.T) {
	clock := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	l := newRateLimiter(5, time.Minute)
	l.now = func() time.Time { return clock }

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		_, _, ok := l.allow(ip)
		assert.True(t, ok)
	}
	assert.Len(t, l.clients, 3)

	// windows of the first three clients have ended
	clock = clock.Add(2 * time.Minute)
	_, _, ok := l.allow("10.0.0.4")
	assert.True(t, ok)

	assert.Len(t, l.clients, 1)
	assert.Contains(t, l.clients, "10.0.0.4")
}

func TestRateLimiter_KeepsLiveWindows(t *testing.T) {
	clock := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	l := newRateLimiter(2, time.Minute)
	l.now = func() time.Time { return clock }

	l.allow("10.0.0.1")
	l.allow("10.0.0.1")

	clock = clock.Add(30 * time.Second)
	_, _, ok := l.allow("10.0.0.1")
	assert.False(t, ok)
	assert.Len(t, l.clients, 1)

	clock = clock.Add(31 * time.Second)
	remaining, _, ok := l.allow("10.0.0.1")
	assert.True(t, ok)
	assert.Equal(t, 1, remaining)
}
