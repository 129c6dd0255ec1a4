package board

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashevelyov/matchboard/internal/match/lifecycle"
	"github.com/ashevelyov/matchboard/internal/match/model"
)

type update struct {
	snap     lifecycle.Snapshot
	progress int
}

func collect() (chan update, func(lifecycle.Snapshot, int)) {
	ch := make(chan update, 16)
	return ch, func(snap lifecycle.Snapshot, progress int) {
		ch <- update{snap: snap, progress: progress}
	}
}

func receive(t *testing.T, ch chan update) update {
	t.Helper()
	select {
	case u := <-ch:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("no update received")
		return update{}
	}
}

func TestTicker_EmitsImmediatelyAndPerTick(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 14, 19, 20, 0, 0, time.Local))
	match := model.Match{
		ID:        "m1",
		Date:      "2025-06-14",
		StartTime: "19:30",
	}

	ch, onChange := collect()
	ticker := NewTicker(clock, match, onChange)
	defer ticker.Stop()

	first := receive(t, ch)
	assert.Equal(t, lifecycle.StateSoon, first.snap.State)
	assert.Equal(t, "10:00", first.snap.Label)

	// Wait for the ticker to be armed before advancing the fake clock.
	clock.BlockUntil(1)
	clock.Advance(TickInterval)

	second := receive(t, ch)
	assert.Equal(t, "09:59", second.snap.Label)
}

func TestTicker_CrossesIntoLive(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 14, 19, 29, 59, 0, time.Local))
	match := model.Match{ID: "m1", Date: "2025-06-14", StartTime: "19:30"}

	ch, onChange := collect()
	ticker := NewTicker(clock, match, onChange)
	defer ticker.Stop()

	first := receive(t, ch)
	assert.Equal(t, lifecycle.StateSoon, first.snap.State)

	clock.BlockUntil(1)
	clock.Advance(TickInterval)

	second := receive(t, ch)
	assert.Equal(t, lifecycle.StateLive, second.snap.State)
	assert.Equal(t, "Starting", second.snap.Label)
	assert.Equal(t, 100, second.progress)
}

func TestTicker_StopReleasesTimer(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 14, 12, 0, 0, 0, time.Local))
	match := model.Match{ID: "m1", Date: "2025-06-14", StartTime: "19:30"}

	ch, onChange := collect()
	ticker := NewTicker(clock, match, onChange)

	receive(t, ch)
	clock.BlockUntil(1)

	ticker.Stop()

	// Advancing after Stop produces no further updates.
	clock.Advance(10 * TickInterval)
	select {
	case u := <-ch:
		t.Fatalf("unexpected update after stop: %+v", u)
	case <-time.After(50 * time.Millisecond):
	}

	assert.NotPanics(t, func() { ticker.Stop() })
}

func TestTicker_UnparseableScheduleEmitsNothing(t *testing.T) {
	clock := clockwork.NewFakeClock()
	match := model.Match{ID: "m1", Date: "garbage", StartTime: "19:30"}

	ch, onChange := collect()
	ticker := NewTicker(clock, match, onChange)

	// Stop must not hang even though the run loop exited early.
	ticker.Stop()

	select {
	case u := <-ch:
		t.Fatalf("unexpected update: %+v", u)
	default:
	}
}

func TestTicker_DeclaredLiveStaysLive(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 14, 12, 0, 0, 0, time.Local))
	match := model.Match{
		ID:        "m1",
		Date:      "2025-06-14",
		StartTime: "19:30",
		Status:    lifecycle.StatusLive,
	}

	ch, onChange := collect()
	ticker := NewTicker(clock, match, onChange)
	defer ticker.Stop()

	first := receive(t, ch)
	require.Equal(t, lifecycle.StateLive, first.snap.State)
	assert.Equal(t, "In Progress", first.snap.Label)
	assert.Equal(t, 100, first.progress)
}
