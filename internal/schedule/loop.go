// Package schedule drives the animation loop.
//
// A [Loop] ticks at a fixed frame interval on an injectable clock and
// hands each [Frame] to a draw callback. Stop cancels the loop and waits
// for the ticker goroutine to exit, so no draw runs after Stop returns.
// Every Start issues a fresh token; consumers that queue frames (such as
// the TUI message loop) compare tokens to drop frames from a stopped run.
package schedule

import (
	"context"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 30

// Frame is one scheduled redraw.
type Frame struct {
	Token uint64
	Seq   uint64
	Phase float64 // seconds of animated time, monotonic across restarts
	At    time.Time
}

// Loop is a cancellable frame scheduler.
type Loop struct {
	clk      clock.WithTicker
	interval time.Duration

	mu      sync.Mutex
	token   uint64
	cancel  context.CancelFunc
	done    chan struct{}
	started time.Time
	offset  time.Duration
}

// New returns a loop ticking fps times per second on clk. A nil clk uses
// the real clock.
func New(clk clock.WithTicker, fps int) *Loop {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Loop{clk: clk, interval: time.Second / time.Duration(fps)}
}

func (l *Loop) Interval() time.Duration { return l.interval }

// Start begins calling draw once per tick and returns the run's token.
// Starting a running loop stops the previous run first.
func (l *Loop) Start(draw func(Frame)) uint64 {
	l.Stop()

	l.mu.Lock()
	defer l.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	l.token++
	l.cancel = cancel
	l.done = make(chan struct{})
	l.started = l.clk.Now()

	ticker := l.clk.NewTicker(l.interval)
	go l.run(ctx, ticker, draw, l.token, l.offset, l.started, l.done)
	return l.token
}

func (l *Loop) run(ctx context.Context, ticker clock.Ticker, draw func(Frame), token uint64, offset time.Duration, started time.Time, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	var seq uint64
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C():
			// Both cases may be ready at once; cancellation wins.
			if ctx.Err() != nil {
				return
			}
			seq++
			draw(Frame{
				Token: token,
				Seq:   seq,
				Phase: (offset + now.Sub(started)).Seconds(),
				At:    now,
			})
		}
	}
}

// Stop cancels the current run and blocks until its goroutine has exited.
// It is safe to call on a stopped loop.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	if cancel != nil {
		l.offset += l.clk.Since(l.started)
	}
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether a run is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

// Token is the identifier of the current (or most recent) run.
func (l *Loop) Token() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.token
}

// Current reports whether token belongs to the active run.
func (l *Loop) Current(token uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil && token == l.token
}

// Phase is the animated time accumulated so far.
func (l *Loop) Phase() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	d := l.offset
	if l.cancel != nil {
		d += l.clk.Since(l.started)
	}
	return d.Seconds()
}
