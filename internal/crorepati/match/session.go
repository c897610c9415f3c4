// Package match holds the turn and phase state machine of the game: whose
// turn it is, which question is live, and the single authoritative countdown
// with its lifeline sub-timers. All mutation goes through intent methods on
// Session; the presentation layer only ever sees read-only snapshots.
package match

import (
	"fmt"
	"sync"
	"time"

	"github.com/crorepati-games/crorepati/internal/crorepati/questions"
	"github.com/crorepati-games/crorepati/internal/logging"
	"go.uber.org/zap"
)

type Phase uint8

const (
	PhaseTitleScreen Phase = iota + 1
	PhaseHostIntroduction
	PhaseSetup
	PhaseRules
	PhasePlaying
	PhaseScoreboard
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseTitleScreen:
		return "TITLE_SCREEN"
	case PhaseHostIntroduction:
		return "HOST_INTRODUCTION"
	case PhaseSetup:
		return "SETUP"
	case PhaseRules:
		return "RULES"
	case PhasePlaying:
		return "PLAYING"
	case PhaseScoreboard:
		return "SCOREBOARD"
	case PhaseGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

// NoAnswer is the selected-answer sentinel for "no answer, timed out".
const NoAnswer = -1

var (
	ErrInvalidPhase          = fmt.Errorf("action not allowed in this phase")
	ErrNoTeams               = fmt.Errorf("at least one team name is required")
	ErrTooManyTeams          = fmt.Errorf("too many teams")
	ErrTimerNotStarted       = fmt.Errorf("timer has not been started")
	ErrTimerAlreadyStarted   = fmt.Errorf("timer already started")
	ErrNoTimeLeft            = fmt.Errorf("no time left")
	ErrNoTimeLimit           = fmt.Errorf("question has no time limit")
	ErrAnswerRevealed        = fmt.Errorf("answer already revealed")
	ErrAnswerNotRevealed     = fmt.Errorf("answer not yet revealed")
	ErrOptionOutOfRange      = fmt.Errorf("option index out of range")
	ErrLifelineUsed          = fmt.Errorf("lifeline already used")
	ErrLifelineDialogOpen    = fmt.Errorf("a lifeline dialog is open")
	ErrLifelineDialogNotOpen = fmt.Errorf("lifeline dialog is not open")
	ErrAnswersHidden         = fmt.Errorf("answer options are not visible")
	ErrUnknownLifeline       = fmt.Errorf("unknown lifeline")
)

// event is a deferred notifier call, fired after the mutex is released so a
// slow or re-entrant notifier can never hold up or deadlock the machine.
type event func(n Notifier) error

func NewSession(config Config) *Session {
	config.withDefaults()

	logger := config.Logger
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	return &Session{
		config:         config,
		logger:         logger.Named("match"),
		phase:          PhaseTitleScreen,
		selectedAnswer: NoAnswer,
	}
}

// Session is the single owner of all game state. Every tick and every user
// intent is serialized through mtx, so a tick that raced a manual answer for
// the same turn is dropped by the answerRevealed guard.
type Session struct {
	config Config
	logger *zap.SugaredLogger

	mtx sync.RWMutex

	phase     Phase
	teams     []*Team
	questions []questions.Question

	currentQuestionIndex int
	activeTeamIndex      int

	timeLeft       int
	main           countdown
	timerStarted   bool
	answersVisible bool
	answerRevealed bool
	selectedAnswer int

	fiftyFiftyUsed bool
	hiddenOptions  []int

	dialog        LifelineKind
	phone         countdown
	ask           countdown
	mainWasActive bool

	startedAt time.Time
}

// Close silences all timers. The session cannot be used afterwards except
// through ResetGame.
func (s *Session) Close() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.main.invalidate()
	s.phone.invalidate()
	s.ask.invalidate()
}

// ProceedToNextPhase walks the menu edges of the phase graph: title to host
// introduction, host introduction to setup, rules to playing (drawing the
// question sequence if needed) and scoreboard back to playing.
func (s *Session) ProceedToNextPhase() error {
	s.mtx.Lock()
	err := s.proceedToNextPhaseLocked()
	s.mtx.Unlock()
	return err
}

func (s *Session) proceedToNextPhaseLocked() error {
	switch s.phase {
	case PhaseTitleScreen:
		s.phase = PhaseHostIntroduction
	case PhaseHostIntroduction:
		s.phase = PhaseSetup
	case PhaseRules:
		if len(s.teams) == 0 {
			return ErrNoTeams
		}
		if len(s.questions) == 0 {
			drawn, err := s.config.Source.Draw(len(s.teams))
			if err != nil {
				return fmt.Errorf("draw questions: %w", err)
			}
			s.questions = drawn
		}
		s.phase = PhasePlaying
		s.initTurnLocked()
	case PhaseScoreboard:
		s.currentQuestionIndex++
		s.phase = PhasePlaying
		s.initTurnLocked()
	default:
		return ErrInvalidPhase
	}

	s.logger.Debugf("phase is now %s", s.phase)
	return nil
}

// StartGame builds the team registry from the submitted names and moves to
// the rules screen. Setup may be re-entered after a finished game, so all
// per-game state is reset here before fresh teams are created.
func (s *Session) StartGame(teamNames []string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.phase != PhaseSetup {
		return ErrInvalidPhase
	}

	names := normalizeTeamNames(teamNames)
	if len(names) == 0 {
		return ErrNoTeams
	}
	if len(names) > s.config.MaxTeams {
		return fmt.Errorf("%w: %d entered, at most %d allowed", ErrTooManyTeams, len(names), s.config.MaxTeams)
	}

	s.resetRoundLocked()
	for _, name := range names {
		s.teams = append(s.teams, newTeam(name))
	}
	s.startedAt = time.Now()
	s.phase = PhaseRules

	s.logger.Infof("game started with %d teams", len(s.teams))
	return nil
}

// StartMainTimer is the manual-start gate: the clock never starts on its
// own, and it starts at most once per question turn.
func (s *Session) StartMainTimer() error {
	s.mtx.Lock()
	events, err := s.startMainTimerLocked()
	s.mtx.Unlock()
	s.emit(events)
	return err
}

func (s *Session) startMainTimerLocked() ([]event, error) {
	if s.phase != PhasePlaying {
		return nil, ErrInvalidPhase
	}
	if s.answerRevealed {
		return nil, ErrAnswerRevealed
	}
	if s.dialog != 0 {
		return nil, ErrLifelineDialogOpen
	}
	if s.timerStarted {
		return nil, ErrTimerAlreadyStarted
	}

	q := s.questions[s.currentQuestionIndex]
	if q.TimeLimit <= 0 {
		return nil, ErrNoTimeLimit
	}
	if s.timeLeft <= 0 {
		return nil, ErrNoTimeLeft
	}

	s.timerStarted = true
	s.main.arm(s.config.Scheduler, s.mainTick)

	secondsLeft := s.timeLeft
	return []event{func(n Notifier) error { return n.TimerStarted(secondsLeft) }}, nil
}

// mainTick runs once per second while the main countdown is armed. A stale
// generation means the countdown was stopped after this tick was scheduled;
// the tick is dropped without touching state.
func (s *Session) mainTick(gen uint64) {
	s.mtx.Lock()
	if gen != s.main.gen || !s.main.active ||
		s.phase != PhasePlaying || s.dialog != 0 || s.answerRevealed || s.timeLeft <= 0 {
		s.mtx.Unlock()
		return
	}

	s.timeLeft--

	var events []event
	if s.timeLeft == 0 {
		events = s.resolveLocked(NoAnswer)
	}
	s.mtx.Unlock()
	s.emit(events)
}

// SelectAnswer commits the active team's choice. Pass NoAnswer to record a
// timeout. Duplicate submissions for a resolved turn are rejected, which
// also settles the race between a manual click and the expiring clock.
func (s *Session) SelectAnswer(option int) error {
	s.mtx.Lock()
	events, err := s.selectAnswerLocked(option)
	s.mtx.Unlock()
	s.emit(events)
	return err
}

func (s *Session) selectAnswerLocked(option int) ([]event, error) {
	if s.phase != PhasePlaying {
		return nil, ErrInvalidPhase
	}
	if s.answerRevealed {
		return nil, ErrAnswerRevealed
	}
	if s.dialog != 0 {
		return nil, ErrLifelineDialogOpen
	}

	if option != NoAnswer {
		if !s.timerStarted {
			return nil, ErrTimerNotStarted
		}
		q := s.questions[s.currentQuestionIndex]
		if option < 0 || option >= len(q.Options) {
			return nil, ErrOptionOutOfRange
		}
	}

	return s.resolveLocked(option), nil
}

// resolveLocked fixes the turn outcome: stops the clock, records the
// selection and pays out on a correct answer. Score mutates exactly once
// per resolved turn.
func (s *Session) resolveLocked(option int) []event {
	if s.answerRevealed {
		return nil
	}

	var events []event
	if s.main.active {
		events = append(events, func(n Notifier) error { return n.TimerStopped() })
	}
	s.main.invalidate()

	s.selectedAnswer = option
	s.answerRevealed = true

	q := s.questions[s.currentQuestionIndex]
	team := s.teams[s.activeTeamIndex]
	name := team.Name

	switch {
	case option == NoAnswer:
		s.logger.Infof("time up for %s on %s", name, q.ID)
		events = append(events, func(n Notifier) error { return n.TimeUp(name) })
	case option == q.CorrectAnswerIndex:
		team.Score += q.MoneyValue
		amount := q.MoneyValue
		s.logger.Infof("%s answered %s correctly for %d", name, q.ID, amount)
		events = append(events, func(n Notifier) error { return n.AnswerCorrect(name, amount) })
	default:
		s.logger.Infof("%s answered %s incorrectly", name, q.ID)
		events = append(events, func(n Notifier) error { return n.AnswerIncorrect(name) })
	}

	return events
}

// ProceedToNextTurn advances question and team together after a reveal.
// When the next question would complete a full round-robin and questions
// remain, the scoreboard interstitial is shown first: the team index
// pre-advances here and the question index advances when the host continues
// past the scoreboard.
func (s *Session) ProceedToNextTurn() error {
	s.mtx.Lock()
	events, done, err := s.proceedToNextTurnLocked()
	s.mtx.Unlock()
	s.emit(events)

	if done && s.config.DoneFn != nil {
		if err := s.config.DoneFn(s.Snapshot()); err != nil {
			s.logger.Errorf("done function: %v", err)
		}
	}

	return err
}

func (s *Session) proceedToNextTurnLocked() ([]event, bool, error) {
	if s.phase != PhasePlaying {
		return nil, false, ErrInvalidPhase
	}
	if !s.answerRevealed {
		return nil, false, ErrAnswerNotRevealed
	}

	next := s.currentQuestionIndex + 1
	teamCount := len(s.teams)

	switch {
	case next >= len(s.questions):
		return s.gameOverLocked(), true, nil
	case next%teamCount == 0:
		s.activeTeamIndex = (s.activeTeamIndex + 1) % teamCount
		s.main.invalidate()
		s.phase = PhaseScoreboard
	default:
		s.currentQuestionIndex = next
		s.activeTeamIndex = (s.activeTeamIndex + 1) % teamCount
		s.initTurnLocked()
	}

	return nil, false, nil
}

func (s *Session) gameOverLocked() []event {
	s.main.invalidate()
	s.phone.invalidate()
	s.ask.invalidate()
	s.dialog = 0
	s.phase = PhaseGameOver

	winner := s.teams[0]
	for _, team := range s.teams[1:] {
		if team.Score > winner.Score {
			winner = team
		}
	}

	name, score := winner.Name, winner.Score
	s.logger.Infof("game over, winner %s with %d", name, score)
	return []event{func(n Notifier) error { return n.GameOver(name, score) }}
}

// ResetGame is the only back-edge out of the final screen: a full reset of
// teams, round context and timers, back to the title.
func (s *Session) ResetGame() {
	s.mtx.Lock()
	var events []event
	if s.main.active {
		events = append(events, func(n Notifier) error { return n.TimerStopped() })
	}
	s.resetRoundLocked()
	s.phase = PhaseTitleScreen
	s.mtx.Unlock()
	s.emit(events)
}

// initTurnLocked runs whenever question or team index changes while
// playing, or on first entry. The clock never auto-starts and all answer
// options become visible immediately; only selection waits for the manual
// timer start.
func (s *Session) initTurnLocked() {
	q := s.questions[s.currentQuestionIndex]

	s.main.invalidate()
	s.timeLeft = q.TimeLimit
	s.timerStarted = false
	s.answerRevealed = false
	s.selectedAnswer = NoAnswer
	s.fiftyFiftyUsed = false
	s.hiddenOptions = nil
	s.answersVisible = true

	s.dialog = 0
	s.phone.invalidate()
	s.phone.seconds = s.config.LifelineSeconds
	s.ask.invalidate()
	s.ask.seconds = s.config.LifelineSeconds
	s.mainWasActive = false
}

func (s *Session) resetRoundLocked() {
	s.main.invalidate()
	s.phone.invalidate()
	s.ask.invalidate()

	s.teams = nil
	s.questions = nil
	s.currentQuestionIndex = 0
	s.activeTeamIndex = 0
	s.timeLeft = 0
	s.timerStarted = false
	s.answersVisible = false
	s.answerRevealed = false
	s.selectedAnswer = NoAnswer
	s.fiftyFiftyUsed = false
	s.hiddenOptions = nil
	s.dialog = 0
	s.phone.seconds = s.config.LifelineSeconds
	s.ask.seconds = s.config.LifelineSeconds
	s.mainWasActive = false
}

func (s *Session) emit(events []event) {
	for _, ev := range events {
		if err := ev(s.config.Notifier); err != nil {
			s.logger.Errorf("notifier: %v", err)
		}
	}
}
