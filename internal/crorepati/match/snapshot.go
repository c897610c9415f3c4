package match

import (
	"sort"
	"time"

	"github.com/crorepati-games/crorepati/internal/crorepati/questions"
)

type LifelineTimerView struct {
	Seconds int
	Active  bool
}

// Snapshot is the read-only view handed to the presentation layer after
// every accepted action. Slices and the question are copies; mutating a
// snapshot never touches the session.
type Snapshot struct {
	Phase Phase

	Teams           []Team
	ActiveTeamIndex int

	Question             *questions.Question
	CurrentQuestionIndex int
	QuestionCount        int

	TimeLeft     int
	TimerActive  bool
	TimerStarted bool

	AnswersVisible bool
	AnswerRevealed bool
	SelectedAnswer int

	FiftyFiftyUsedThisTurn bool
	HiddenOptions          []int

	ActiveDialog      LifelineKind
	PhoneAFriendTimer LifelineTimerView
	AskYourTeamTimer  LifelineTimerView

	StartedAt time.Time

	// Inconsistent marks the unrecoverable-without-reset case: playing
	// with no current question or no active team.
	Inconsistent bool
}

func (s *Session) Snapshot() Snapshot {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	snap := Snapshot{
		Phase:                  s.phase,
		ActiveTeamIndex:        s.activeTeamIndex,
		CurrentQuestionIndex:   s.currentQuestionIndex,
		QuestionCount:          len(s.questions),
		TimeLeft:               s.timeLeft,
		TimerActive:            s.main.active,
		TimerStarted:           s.timerStarted,
		AnswersVisible:         s.answersVisible,
		AnswerRevealed:         s.answerRevealed,
		SelectedAnswer:         s.selectedAnswer,
		FiftyFiftyUsedThisTurn: s.fiftyFiftyUsed,
		ActiveDialog:           s.dialog,
		PhoneAFriendTimer:      LifelineTimerView{Seconds: s.phone.seconds, Active: s.phone.active},
		AskYourTeamTimer:       LifelineTimerView{Seconds: s.ask.seconds, Active: s.ask.active},
		StartedAt:              s.startedAt,
	}

	snap.Teams = make([]Team, len(s.teams))
	for i, team := range s.teams {
		snap.Teams[i] = *team
	}

	if len(s.hiddenOptions) > 0 {
		snap.HiddenOptions = make([]int, len(s.hiddenOptions))
		copy(snap.HiddenOptions, s.hiddenOptions)
	}

	if s.currentQuestionIndex < len(s.questions) {
		q := s.questions[s.currentQuestionIndex]
		snap.Question = &q
	}

	if s.phase == PhasePlaying && (snap.Question == nil || len(s.teams) == 0) {
		snap.Inconsistent = true
	}

	return snap
}

// ActiveTeam returns the team whose turn it is, or nil outside a game.
func (snap Snapshot) ActiveTeam() *Team {
	if snap.ActiveTeamIndex < 0 || snap.ActiveTeamIndex >= len(snap.Teams) {
		return nil
	}
	return &snap.Teams[snap.ActiveTeamIndex]
}

// Standings returns the teams ordered by score, highest first. Teams with
// equal scores keep their turn order.
func (snap Snapshot) Standings() []Team {
	standings := make([]Team, len(snap.Teams))
	copy(standings, snap.Teams)
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})
	return standings
}

// OptionHidden reports whether 50:50 removed the given option this turn.
func (snap Snapshot) OptionHidden(index int) bool {
	for _, hidden := range snap.HiddenOptions {
		if hidden == index {
			return true
		}
	}
	return false
}
