package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ashevelyov/matchboard/internal/match/model"
)

var mount = time.Date(2025, 6, 14, 15, 30, 0, 0, time.Local)

func match(id, date string) model.Match {
	return model.Match{ID: id, Date: date, StartTime: "19:00"}
}

func TestNewWindow(t *testing.T) {
	w := NewWindow(mount)

	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.Local), w.Day(0))
	assert.Equal(t, time.Date(2025, 6, 20, 0, 0, 0, 0, time.Local), w.Day(6))

	days := w.Days()
	assert.Len(t, days, WindowDays)
	assert.Equal(t, "2025-06-14", days[0])
	assert.Equal(t, "2025-06-20", days[6])
}

func TestWindow_Filter(t *testing.T) {
	w := NewWindow(mount)

	t.Run("groups by calendar day", func(t *testing.T) {
		matches := []model.Match{
			match("a", "2025-06-14"),
			match("b", "2025-06-15"),
			match("c", "2025-06-15"),
			match("d", "2025-06-20"),
		}

		assert.Len(t, w.Filter(matches, 0), 1)
		assert.Len(t, w.Filter(matches, 1), 2)
		assert.Len(t, w.Filter(matches, 6), 1)
		assert.Empty(t, w.Filter(matches, 3))
	})

	t.Run("date outside window matches nothing", func(t *testing.T) {
		matches := []model.Match{match("a", "2025-06-21"), match("b", "2025-06-13")}
		for day := 0; day < WindowDays; day++ {
			assert.Empty(t, w.Filter(matches, day))
		}
	})

	t.Run("unparseable date excluded from every bucket", func(t *testing.T) {
		matches := []model.Match{
			match("bad1", "2025-13-40"),
			match("bad2", "not-a-date-at-all"),
			match("bad3", "2025-06"),
			match("ok", "2025-06-14"),
		}

		for day := 0; day < WindowDays; day++ {
			assert.NotPanics(t, func() {
				got := w.Filter(matches, day)
				for _, m := range got {
					assert.Equal(t, "ok", m.ID)
				}
			})
		}
		assert.Len(t, w.Filter(matches, 0), 1)
	})

	t.Run("invalid day index returns empty", func(t *testing.T) {
		matches := []model.Match{match("a", "2025-06-14")}
		assert.Empty(t, w.Filter(matches, -1))
		assert.Empty(t, w.Filter(matches, WindowDays))
	})

	t.Run("day identity ignores time of day", func(t *testing.T) {
		// Window anchored late in the day still buckets by date only.
		late := NewWindow(time.Date(2025, 6, 14, 23, 59, 59, 0, time.Local))
		got := late.Filter([]model.Match{match("a", "2025-06-14")}, 0)
		assert.Len(t, got, 1)
	})
}

func TestWindow_Stable(t *testing.T) {
	// The window is a value computed once; re-filtering later against the
	// same window must not shift day 0.
	w := NewWindow(mount)
	matches := []model.Match{match("a", "2025-06-14")}

	first := w.Filter(matches, 0)
	second := w.Filter(matches, 0)
	assert.Equal(t, first, second)
	assert.Equal(t, "2025-06-14", w.Days()[0])
}
