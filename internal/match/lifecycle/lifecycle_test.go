package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseNow = time.Date(2025, 6, 14, 18, 0, 0, 0, time.Local)

func TestResolve_DeclaredStatuses(t *testing.T) {
	t.Run("completed wins regardless of now", func(t *testing.T) {
		for _, offset := range []time.Duration{-48 * time.Hour, 0, 5 * time.Minute, 72 * time.Hour} {
			snap := Resolve(StatusCompleted, baseNow.Add(offset), baseNow)
			assert.Equal(t, StateCompleted, snap.State)
			assert.Equal(t, "Ended", snap.Label)
		}
	})

	t.Run("declared live wins regardless of now", func(t *testing.T) {
		for _, offset := range []time.Duration{-2 * time.Hour, 0, 30 * time.Minute} {
			snap := Resolve(StatusLive, baseNow.Add(offset), baseNow)
			assert.Equal(t, StateLive, snap.State)
			assert.Equal(t, "In Progress", snap.Label)
		}
	})

	t.Run("empty status defaults to scheduled", func(t *testing.T) {
		snap := Resolve("", baseNow.Add(time.Hour), baseNow)
		assert.Equal(t, StateScheduled, snap.State)
	})
}

func TestResolve_TimeDerivation(t *testing.T) {
	t.Run("eleven minutes out stays scheduled", func(t *testing.T) {
		snap := Resolve(StatusScheduled, baseNow.Add(11*time.Minute), baseNow)
		assert.Equal(t, StateScheduled, snap.State)
	})

	t.Run("nine minutes out is soon", func(t *testing.T) {
		snap := Resolve(StatusScheduled, baseNow.Add(9*time.Minute), baseNow)
		assert.Equal(t, StateSoon, snap.State)
		assert.Equal(t, "09:00", snap.Label)
	})

	t.Run("exactly ten minutes out is soon", func(t *testing.T) {
		snap := Resolve(StatusScheduled, baseNow.Add(SoonThreshold), baseNow)
		assert.Equal(t, StateSoon, snap.State)
		assert.Equal(t, "10:00", snap.Label)
	})

	t.Run("start passed auto-promotes to live", func(t *testing.T) {
		snap := Resolve(StatusScheduled, baseNow.Add(-5*time.Second), baseNow)
		assert.Equal(t, StateLive, snap.State)
		assert.Equal(t, "Starting", snap.Label)
		assert.Negative(t, snap.Remaining)
	})

	t.Run("start equals now auto-promotes", func(t *testing.T) {
		snap := Resolve(StatusScheduled, baseNow, baseNow)
		assert.Equal(t, StateLive, snap.State)
		assert.Equal(t, "Starting", snap.Label)
	})
}

func TestResolve_CountdownLabel(t *testing.T) {
	cases := []struct {
		name      string
		remaining time.Duration
		want      string
	}{
		{"over an hour", 3661 * time.Second, "01:01:01"},
		{"exactly one hour", time.Hour, "01:00:00"},
		{"under an hour", 59*time.Minute + 59*time.Second, "59:59"},
		{"floors sub-second", 90*time.Second + 900*time.Millisecond, "01:30"},
		{"one second", time.Second, "00:01"},
		{"many hours", 25*time.Hour + 30*time.Minute, "25:30:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := Resolve(StatusScheduled, baseNow.Add(tc.remaining), baseNow)
			assert.Equal(t, tc.want, snap.Label)
		})
	}
}

func TestProgress(t *testing.T) {
	t.Run("live and completed force 100", func(t *testing.T) {
		assert.Equal(t, 100, Progress(StatusLive, baseNow.Add(time.Hour), baseNow))
		assert.Equal(t, 100, Progress(StatusCompleted, baseNow.Add(time.Hour), baseNow))
	})

	t.Run("start passed forces 100", func(t *testing.T) {
		assert.Equal(t, 100, Progress(StatusScheduled, baseNow.Add(-time.Minute), baseNow))
	})

	t.Run("three hours out clamps to floor", func(t *testing.T) {
		assert.Equal(t, MinProgress, Progress(StatusScheduled, baseNow.Add(3*time.Hour), baseNow))
	})

	t.Run("one hour out is halfway", func(t *testing.T) {
		assert.Equal(t, 50, Progress(StatusScheduled, baseNow.Add(time.Hour), baseNow))
	})

	t.Run("just before start approaches 100", func(t *testing.T) {
		got := Progress(StatusScheduled, baseNow.Add(time.Second), baseNow)
		assert.GreaterOrEqual(t, got, 99)
		assert.LessOrEqual(t, got, 100)
	})
}

func TestParseStart(t *testing.T) {
	t.Run("valid date and time", func(t *testing.T) {
		start, err := ParseStart("2025-06-14", "19:30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 14, 19, 30, 0, 0, time.Local), start)
	})

	t.Run("wrong date field count", func(t *testing.T) {
		_, err := ParseStart("2025-06", "19:30")
		assert.Error(t, err)
	})

	t.Run("non-numeric date field", func(t *testing.T) {
		_, err := ParseStart("2025-junk-14", "19:30")
		assert.Error(t, err)
	})

	t.Run("wrong time field count", func(t *testing.T) {
		_, err := ParseStart("2025-06-14", "19")
		assert.Error(t, err)
	})

	t.Run("non-numeric time field", func(t *testing.T) {
		_, err := ParseStart("2025-06-14", "xx:30")
		assert.Error(t, err)
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusScheduled.Valid())
	assert.True(t, StatusLive.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, Status("").Valid())
	assert.False(t, Status("postponed").Valid())
	assert.Equal(t, StatusScheduled, Status("").Normalize())
	assert.Equal(t, StatusLive, StatusLive.Normalize())
}
