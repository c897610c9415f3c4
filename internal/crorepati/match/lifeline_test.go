package match

import (
	"errors"
	"testing"
)

func TestFiftyFifty(t *testing.T) {
	list := testQuestions(2, 10)
	s, sched, _ := newPlayingSession(t, list, "Tigers", "Lions")

	if err := s.StartMainTimer(); err != nil {
		t.Fatalf("start timer: %v", err)
	}
	sched.Tick()

	if err := s.UseLifeline(LifelineFiftyFifty); err != nil {
		t.Fatalf("use 50:50: %v", err)
	}

	snap := s.Snapshot()
	if len(snap.HiddenOptions) != 2 {
		t.Fatalf("expected 2 hidden options, got %v", snap.HiddenOptions)
	}
	if snap.OptionHidden(list[0].CorrectAnswerIndex) {
		t.Fatalf("50:50 hid the correct option")
	}
	if snap.HiddenOptions[0] == snap.HiddenOptions[1] {
		t.Fatalf("50:50 hid the same option twice: %v", snap.HiddenOptions)
	}
	if snap.ActiveTeam().Lifelines.FiftyFifty {
		t.Fatalf("50:50 not consumed")
	}

	// no dialog, the clock keeps running
	if !snap.TimerActive {
		t.Fatalf("50:50 stopped the timer")
	}
	sched.Tick()
	if got := s.Snapshot().TimeLeft; got != 8 {
		t.Fatalf("expected timeLeft 8, got %d", got)
	}

	if err := s.UseLifeline(LifelineFiftyFifty); !errors.Is(err, ErrLifelineUsed) {
		t.Fatalf("expected ErrLifelineUsed on reuse, got %v", err)
	}

	// hidden options are a turn-local effect; the other team's lifeline
	// is untouched
	if err := s.SelectAnswer(NoAnswer); err != nil {
		t.Fatalf("resolve turn: %v", err)
	}
	if err := s.ProceedToNextTurn(); err != nil {
		t.Fatalf("proceed: %v", err)
	}
	snap = s.Snapshot()
	if len(snap.HiddenOptions) != 0 || snap.FiftyFiftyUsedThisTurn {
		t.Fatalf("50:50 effect leaked into next turn: %+v", snap)
	}
	if !snap.ActiveTeam().Lifelines.FiftyFifty {
		t.Fatalf("next team lost its 50:50")
	}
	if err := s.UseLifeline(LifelineFiftyFifty); err != nil {
		t.Fatalf("next team's 50:50: %v", err)
	}
}

func TestFiftyFiftyTwoOptions(t *testing.T) {
	list := testQuestions(1, 10)
	list[0].Options = []string{"yes", "no"}
	list[0].CorrectAnswerIndex = 0
	s, _, _ := newPlayingSession(t, list, "Tigers")

	if err := s.UseLifeline(LifelineFiftyFifty); err != nil {
		t.Fatalf("use 50:50: %v", err)
	}

	snap := s.Snapshot()
	if len(snap.HiddenOptions) != 1 || snap.HiddenOptions[0] != 1 {
		t.Fatalf("expected only the one incorrect option hidden, got %v", snap.HiddenOptions)
	}
}

func TestPhoneAFriendSuspendResume(t *testing.T) {
	list := testQuestions(1, 30)
	s, sched, notifier := newPlayingSession(t, list, "Tigers")

	if err := s.StartMainTimer(); err != nil {
		t.Fatalf("start timer: %v", err)
	}
	for i := 0; i < 10; i++ {
		sched.Tick()
	}
	if got := s.Snapshot().TimeLeft; got != 20 {
		t.Fatalf("expected timeLeft 20, got %d", got)
	}

	if err := s.UseLifeline(LifelinePhoneAFriend); err != nil {
		t.Fatalf("use phone a friend: %v", err)
	}

	snap := s.Snapshot()
	if snap.ActiveDialog != LifelinePhoneAFriend {
		t.Fatalf("dialog not open: %v", snap.ActiveDialog)
	}
	if snap.TimerActive {
		t.Fatalf("main timer still active inside dialog")
	}
	if notifier.timerStops != 1 {
		t.Fatalf("expected one timer-stopped notification, got %d", notifier.timerStops)
	}
	if snap.PhoneAFriendTimer.Active || snap.PhoneAFriendTimer.Seconds != DefaultLifelineSeconds {
		t.Fatalf("sub-timer must wait for its own start: %+v", snap.PhoneAFriendTimer)
	}

	// intents are gated while the dialog is open
	if err := s.SelectAnswer(0); !errors.Is(err, ErrLifelineDialogOpen) {
		t.Fatalf("expected ErrLifelineDialogOpen on select, got %v", err)
	}
	if err := s.StartMainTimer(); !errors.Is(err, ErrLifelineDialogOpen) {
		t.Fatalf("expected ErrLifelineDialogOpen on timer start, got %v", err)
	}
	if err := s.UseLifeline(LifelineAskYourTeam); !errors.Is(err, ErrLifelineDialogOpen) {
		t.Fatalf("expected ErrLifelineDialogOpen on second lifeline, got %v", err)
	}

	// ticks inside the dialog never touch the main clock
	sched.Tick()
	sched.Tick()
	if got := s.Snapshot().TimeLeft; got != 20 {
		t.Fatalf("main clock moved inside dialog: %d", got)
	}

	if err := s.StartLifelineTimer(LifelinePhoneAFriend); err != nil {
		t.Fatalf("start sub-timer: %v", err)
	}
	sched.Tick()
	sched.Tick()
	sched.Tick()
	snap = s.Snapshot()
	if snap.PhoneAFriendTimer.Seconds != DefaultLifelineSeconds-3 || !snap.PhoneAFriendTimer.Active {
		t.Fatalf("sub-timer not ticking: %+v", snap.PhoneAFriendTimer)
	}
	if snap.TimeLeft != 20 {
		t.Fatalf("sub-timer ticks moved the main clock: %d", snap.TimeLeft)
	}

	if err := s.CloseLifelineDialog(LifelinePhoneAFriend); err != nil {
		t.Fatalf("close dialog: %v", err)
	}

	snap = s.Snapshot()
	if snap.ActiveDialog != 0 {
		t.Fatalf("dialog still open")
	}
	if !snap.TimerActive {
		t.Fatalf("main timer did not resume")
	}
	if snap.PhoneAFriendTimer.Active {
		t.Fatalf("sub-timer still active after close")
	}
	if len(notifier.timerStarts) != 2 || notifier.timerStarts[1] != 20 {
		t.Fatalf("expected resume notification at 20, got %v", notifier.timerStarts)
	}

	sched.Tick()
	if got := s.Snapshot().TimeLeft; got != 19 {
		t.Fatalf("expected timeLeft 19 after resume, got %d", got)
	}

	if err := s.UseLifeline(LifelinePhoneAFriend); !errors.Is(err, ErrLifelineUsed) {
		t.Fatalf("expected ErrLifelineUsed on reuse, got %v", err)
	}
}

func TestDialogNoResumeWithoutManualStart(t *testing.T) {
	s, sched, _ := newPlayingSession(t, testQuestions(1, 30), "Tigers")

	if err := s.UseLifeline(LifelineAskYourTeam); err != nil {
		t.Fatalf("use ask your team: %v", err)
	}
	if err := s.CloseLifelineDialog(LifelineAskYourTeam); err != nil {
		t.Fatalf("close dialog: %v", err)
	}

	snap := s.Snapshot()
	if snap.TimerActive {
		t.Fatalf("main timer resumed without a manual start this turn")
	}
	sched.Tick()
	if got := s.Snapshot().TimeLeft; got != 30 {
		t.Fatalf("clock moved without a start: %d", got)
	}

	// the manual start is still available afterwards
	if err := s.StartMainTimer(); err != nil {
		t.Fatalf("start timer after dialog: %v", err)
	}
}

func TestSubTimerExpires(t *testing.T) {
	s, sched, _ := newPlayingSession(t, testQuestions(1, 30), "Tigers")

	if err := s.UseLifeline(LifelineAskYourTeam); err != nil {
		t.Fatalf("use ask your team: %v", err)
	}
	if err := s.StartLifelineTimer(LifelineAskYourTeam); err != nil {
		t.Fatalf("start sub-timer: %v", err)
	}
	if err := s.StartLifelineTimer(LifelineAskYourTeam); !errors.Is(err, ErrTimerAlreadyStarted) {
		t.Fatalf("expected ErrTimerAlreadyStarted, got %v", err)
	}

	for i := 0; i < DefaultLifelineSeconds; i++ {
		sched.Tick()
	}

	snap := s.Snapshot()
	if snap.AskYourTeamTimer.Seconds != 0 || snap.AskYourTeamTimer.Active {
		t.Fatalf("sub-timer did not stop at zero: %+v", snap.AskYourTeamTimer)
	}
	if snap.ActiveDialog != LifelineAskYourTeam {
		t.Fatalf("sub-timer expiry closed the dialog")
	}

	// expiry only disables the start control
	if err := s.StartLifelineTimer(LifelineAskYourTeam); !errors.Is(err, ErrNoTimeLeft) {
		t.Fatalf("expected ErrNoTimeLeft, got %v", err)
	}

	if err := s.CloseLifelineDialog(LifelineAskYourTeam); err != nil {
		t.Fatalf("close dialog: %v", err)
	}
}

func TestLifelineDialogGuards(t *testing.T) {
	s, _, _ := newPlayingSession(t, testQuestions(1, 30), "Tigers")

	if err := s.StartLifelineTimer(LifelinePhoneAFriend); !errors.Is(err, ErrLifelineDialogNotOpen) {
		t.Fatalf("expected ErrLifelineDialogNotOpen, got %v", err)
	}
	if err := s.CloseLifelineDialog(LifelinePhoneAFriend); !errors.Is(err, ErrLifelineDialogNotOpen) {
		t.Fatalf("expected ErrLifelineDialogNotOpen, got %v", err)
	}

	if err := s.UseLifeline(LifelinePhoneAFriend); err != nil {
		t.Fatalf("use phone a friend: %v", err)
	}

	// kind must match the open dialog
	if err := s.StartLifelineTimer(LifelineAskYourTeam); !errors.Is(err, ErrLifelineDialogNotOpen) {
		t.Fatalf("expected ErrLifelineDialogNotOpen for wrong kind, got %v", err)
	}
	if err := s.CloseLifelineDialog(LifelineAskYourTeam); !errors.Is(err, ErrLifelineDialogNotOpen) {
		t.Fatalf("expected ErrLifelineDialogNotOpen for wrong kind, got %v", err)
	}
}

func TestLifelineAfterReveal(t *testing.T) {
	s, _, _ := newPlayingSession(t, testQuestions(1, 30), "Tigers")

	if err := s.SelectAnswer(NoAnswer); err != nil {
		t.Fatalf("resolve turn: %v", err)
	}

	for _, kind := range []LifelineKind{LifelineFiftyFifty, LifelinePhoneAFriend, LifelineAskYourTeam} {
		if err := s.UseLifeline(kind); !errors.Is(err, ErrAnswerRevealed) {
			t.Fatalf("expected ErrAnswerRevealed for %s, got %v", kind, err)
		}
	}
}

func TestSampleIncorrect(t *testing.T) {
	q := testQuestions(1, 10)[0]

	for i := 0; i < 100; i++ {
		hidden := sampleIncorrect(q, 2)
		if len(hidden) != 2 {
			t.Fatalf("expected 2 hidden, got %v", hidden)
		}
		if hidden[0] == hidden[1] {
			t.Fatalf("duplicate hidden option: %v", hidden)
		}
		for _, idx := range hidden {
			if idx == q.CorrectAnswerIndex {
				t.Fatalf("correct option hidden: %v", hidden)
			}
			if idx < 0 || idx >= len(q.Options) {
				t.Fatalf("hidden index out of range: %v", hidden)
			}
		}
	}
}
