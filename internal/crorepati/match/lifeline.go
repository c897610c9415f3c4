package match

import (
	"github.com/crorepati-games/crorepati/internal/crorepati/questions"
	"github.com/valyala/fastrand"
)

// UseLifeline consumes the active team's lifeline. The flag flips
// permanently on invocation, whatever follows. 50:50 is synchronous and
// leaves the clock running; the two dialog lifelines suspend the main timer
// and open their dialog with a fresh, not-yet-started sub-timer.
func (s *Session) UseLifeline(kind LifelineKind) error {
	s.mtx.Lock()
	events, err := s.useLifelineLocked(kind)
	s.mtx.Unlock()
	s.emit(events)
	return err
}

func (s *Session) useLifelineLocked(kind LifelineKind) ([]event, error) {
	if s.phase != PhasePlaying {
		return nil, ErrInvalidPhase
	}
	if s.answerRevealed {
		return nil, ErrAnswerRevealed
	}
	if s.dialog != 0 {
		return nil, ErrLifelineDialogOpen
	}

	team := s.teams[s.activeTeamIndex]
	if !team.Lifelines.Available(kind) {
		return nil, ErrLifelineUsed
	}

	switch kind {
	case LifelineFiftyFifty:
		if !s.answersVisible {
			return nil, ErrAnswersHidden
		}
		if s.fiftyFiftyUsed {
			return nil, ErrLifelineUsed
		}

		team.Lifelines.consume(kind)
		s.fiftyFiftyUsed = true
		s.hiddenOptions = sampleIncorrect(s.questions[s.currentQuestionIndex], 2)
		s.logger.Infof("%s used 50:50, hidden options %v", team.Name, s.hiddenOptions)
		return nil, nil
	case LifelinePhoneAFriend, LifelineAskYourTeam:
		team.Lifelines.consume(kind)

		var events []event
		s.mainWasActive = s.main.active
		if s.main.active {
			events = append(events, func(n Notifier) error { return n.TimerStopped() })
		}
		s.main.invalidate()

		s.dialog = kind
		sub := s.subTimer(kind)
		sub.invalidate()
		sub.seconds = s.config.LifelineSeconds

		s.logger.Infof("%s opened %s dialog", team.Name, kind)
		return events, nil
	}

	return nil, ErrUnknownLifeline
}

// StartLifelineTimer mirrors the main timer's manual-start policy inside a
// lifeline dialog.
func (s *Session) StartLifelineTimer(kind LifelineKind) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.dialog == 0 || s.dialog != kind {
		return ErrLifelineDialogNotOpen
	}

	sub := s.subTimer(kind)
	if sub.active {
		return ErrTimerAlreadyStarted
	}
	if sub.seconds <= 0 {
		return ErrNoTimeLeft
	}

	sub.arm(s.config.Scheduler, func(gen uint64) {
		s.subTick(kind, gen)
	})

	return nil
}

// subTick decrements a dialog sub-timer. Reaching zero only disables its
// start control; nothing downstream depends on it.
func (s *Session) subTick(kind LifelineKind, gen uint64) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	sub := s.subTimer(kind)
	if gen != sub.gen || !sub.active || s.dialog != kind {
		return
	}

	if sub.seconds > 0 {
		sub.seconds--
	}
	if sub.seconds == 0 {
		sub.invalidate()
	}
}

// CloseLifelineDialog resumes the main timer only when it was running at
// the moment the dialog opened, had been manually started this turn, the
// answer is still open and time remains. Otherwise the clock stays stopped.
func (s *Session) CloseLifelineDialog(kind LifelineKind) error {
	s.mtx.Lock()
	events, err := s.closeLifelineDialogLocked(kind)
	s.mtx.Unlock()
	s.emit(events)
	return err
}

func (s *Session) closeLifelineDialogLocked(kind LifelineKind) ([]event, error) {
	if s.dialog == 0 || s.dialog != kind {
		return nil, ErrLifelineDialogNotOpen
	}

	s.subTimer(kind).invalidate()
	s.dialog = 0

	var events []event
	if s.mainWasActive && s.timerStarted && !s.answerRevealed && s.timeLeft > 0 {
		s.main.arm(s.config.Scheduler, s.mainTick)
		secondsLeft := s.timeLeft
		events = append(events, func(n Notifier) error { return n.TimerStarted(secondsLeft) })
	}
	s.mainWasActive = false

	return events, nil
}

func (s *Session) subTimer(kind LifelineKind) *countdown {
	if kind == LifelinePhoneAFriend {
		return &s.phone
	}
	return &s.ask
}

// sampleIncorrect picks min(max, incorrectCount) incorrect option indices
// at random without replacement. The correct index is never among them.
func sampleIncorrect(q questions.Question, max int) []int {
	incorrect := make([]int, 0, len(q.Options)-1)
	for i := range q.Options {
		if i != q.CorrectAnswerIndex {
			incorrect = append(incorrect, i)
		}
	}

	n := max
	if len(incorrect) < n {
		n = len(incorrect)
	}

	hidden := make([]int, 0, n)
	for len(hidden) < n {
		j := int(fastrand.Uint32n(uint32(len(incorrect))))
		hidden = append(hidden, incorrect[j])
		incorrect = append(incorrect[:j], incorrect[j+1:]...)
	}

	return hidden
}
