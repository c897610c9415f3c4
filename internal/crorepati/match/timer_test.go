package match

import (
	"errors"
	"testing"
	"time"
)

func TestStartMainTimerGuards(t *testing.T) {
	s, _, _ := newPlayingSession(t, testQuestions(1, 10), "Tigers")

	if err := s.StartMainTimer(); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if err := s.StartMainTimer(); !errors.Is(err, ErrTimerAlreadyStarted) {
		t.Fatalf("expected ErrTimerAlreadyStarted, got %v", err)
	}

	if err := s.SelectAnswer(0); err != nil {
		t.Fatalf("select answer: %v", err)
	}
	if err := s.StartMainTimer(); !errors.Is(err, ErrAnswerRevealed) {
		t.Fatalf("expected ErrAnswerRevealed, got %v", err)
	}
}

func TestMainTimerCountdown(t *testing.T) {
	s, sched, notifier := newPlayingSession(t, testQuestions(1, 10), "Tigers")

	// the clock never runs before the manual start
	sched.Tick()
	if got := s.Snapshot().TimeLeft; got != 10 {
		t.Fatalf("tick before start moved the clock: %d", got)
	}

	if err := s.StartMainTimer(); err != nil {
		t.Fatalf("start timer: %v", err)
	}
	if len(notifier.timerStarts) != 1 || notifier.timerStarts[0] != 10 {
		t.Fatalf("expected timer-started at 10, got %v", notifier.timerStarts)
	}

	for i := 1; i <= 9; i++ {
		sched.Tick()
		if got := s.Snapshot().TimeLeft; got != 10-i {
			t.Fatalf("after %d ticks expected %d, got %d", i, 10-i, got)
		}
	}

	// the last tick submits the null answer exactly once
	sched.Tick()
	snap := s.Snapshot()
	if snap.TimeLeft != 0 {
		t.Fatalf("expected timeLeft 0, got %d", snap.TimeLeft)
	}
	if !snap.AnswerRevealed || snap.SelectedAnswer != NoAnswer {
		t.Fatalf("expired turn not resolved: revealed=%v selected=%d", snap.AnswerRevealed, snap.SelectedAnswer)
	}
	if snap.TimerActive {
		t.Fatalf("timer still active at zero")
	}
	if snap.Teams[0].Score != 0 {
		t.Fatalf("timeout must not score, got %d", snap.Teams[0].Score)
	}
	if len(notifier.timeUps) != 1 || notifier.timeUps[0] != "Tigers" {
		t.Fatalf("expected one time-up for Tigers, got %v", notifier.timeUps)
	}

	sched.Tick()
	sched.Tick()
	snap = s.Snapshot()
	if snap.TimeLeft != 0 || len(notifier.timeUps) != 1 {
		t.Fatalf("ticks after expiry mutated state: timeLeft=%d timeUps=%v", snap.TimeLeft, notifier.timeUps)
	}
}

func TestTickAfterAnswerDropped(t *testing.T) {
	s, sched, notifier := newPlayingSession(t, testQuestions(1, 10), "Tigers")

	if err := s.StartMainTimer(); err != nil {
		t.Fatalf("start timer: %v", err)
	}
	sched.Tick()
	if err := s.SelectAnswer(0); err != nil {
		t.Fatalf("select answer: %v", err)
	}
	if notifier.timerStops != 1 {
		t.Fatalf("expected one timer-stopped notification, got %d", notifier.timerStops)
	}

	sched.Tick()
	if got := s.Snapshot().TimeLeft; got != 9 {
		t.Fatalf("tick after reveal moved the clock: %d", got)
	}
}

func TestZeroTimeLimitQuestion(t *testing.T) {
	s, sched, _ := newPlayingSession(t, testQuestions(1, 0), "Tigers")

	if err := s.StartMainTimer(); !errors.Is(err, ErrNoTimeLimit) {
		t.Fatalf("expected ErrNoTimeLimit, got %v", err)
	}

	sched.Tick()
	snap := s.Snapshot()
	if snap.TimeLeft != 0 || snap.AnswerRevealed {
		t.Fatalf("clockless question auto-resolved: %+v", snap)
	}

	// the turn still resolves through a host-submitted null answer
	if err := s.SelectAnswer(NoAnswer); err != nil {
		t.Fatalf("null answer: %v", err)
	}
	if snap := s.Snapshot(); !snap.AnswerRevealed || snap.SelectedAnswer != NoAnswer {
		t.Fatalf("null answer not recorded: %+v", snap)
	}
}

func TestTickerScheduler(t *testing.T) {
	sched := NewTickerScheduler(time.Millisecond)

	ticks := make(chan struct{}, 1)
	stop := sched.Schedule(func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatalf("no tick delivered")
	}

	stop()
	stop() // idempotent
}

func TestCountdownGeneration(t *testing.T) {
	sched := newManualScheduler()

	var seen []uint64
	c := countdown{}
	c.arm(sched, func(gen uint64) { seen = append(seen, gen) })
	first := c.gen
	sched.Tick()

	c.invalidate()
	if c.active {
		t.Fatalf("invalidate left the countdown active")
	}

	c.arm(sched, func(gen uint64) { seen = append(seen, gen) })
	sched.Tick()

	if len(seen) != 2 {
		t.Fatalf("expected 2 ticks, got %d", len(seen))
	}
	if seen[0] != first || seen[1] == first {
		t.Fatalf("generation not advanced across re-arm: %v", seen)
	}
}
