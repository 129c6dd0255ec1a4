// Package board drives the schedule view: one ticker per displayed match
// card, recomputing the lifecycle snapshot every second. Tickers are
// scoped resources: started when a card appears, stopped unconditionally
// when it goes away, never leaked across re-renders.
package board

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ashevelyov/matchboard/internal/match/lifecycle"
	"github.com/ashevelyov/matchboard/internal/match/model"
)

// TickInterval is how often a card recomputes its snapshot.
const TickInterval = time.Second

// Ticker recomputes one match's display snapshot on a fixed period.
// The clock is injected so tests can drive ticks deterministically.
type Ticker struct {
	clock    clockwork.Clock
	match    model.Match
	onChange func(lifecycle.Snapshot, int)

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewTicker creates a ticker for the match. onChange receives the fresh
// snapshot and progress percentage, first immediately and then once per
// tick, from the ticker's goroutine.
func NewTicker(clock clockwork.Clock, match model.Match, onChange func(lifecycle.Snapshot, int)) *Ticker {
	t := &Ticker{
		clock:    clock,
		match:    match,
		onChange: onChange,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *Ticker) run() {
	defer close(t.done)

	start, err := t.match.StartInstant()
	if err != nil {
		// Unparseable schedule data: nothing to count down to. The card
		// shows nothing rather than crashing the board.
		return
	}

	t.emit(start)

	ticker := t.clock.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			t.emit(start)
		case <-t.stop:
			return
		}
	}
}

func (t *Ticker) emit(start time.Time) {
	now := t.clock.Now()
	snap := lifecycle.Resolve(t.match.Status, start, now)
	t.onChange(snap, lifecycle.Progress(t.match.Status, start, now))
}

// Stop releases the ticker. It is safe to call more than once and returns
// after the ticker goroutine has exited.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stop)
	})
	<-t.done
}
