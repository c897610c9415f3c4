package match

import (
	"time"

	"github.com/crorepati-games/crorepati/internal/crorepati/questions"
	"go.uber.org/zap"
)

const (
	DefaultMaxTeams        = 6
	DefaultLifelineSeconds = 30
)

// QuestionSource draws the question sequence for a game, teamCount questions
// per difficulty tier in ascending money value.
type QuestionSource interface {
	Draw(teamCount int) ([]questions.Question, error)
}

type Config struct {
	Source QuestionSource

	// Upper bound on teams at setup. Defaults to DefaultMaxTeams.
	MaxTeams int

	// Length of the phone-a-friend and ask-your-team dialog sub-timers.
	// Defaults to DefaultLifelineSeconds.
	LifelineSeconds int

	// Scheduler defaults to a 1 Hz ticker. Tests swap in a manual one.
	Scheduler TickScheduler

	Notifier Notifier

	// DoneFn runs once when the game reaches the final screen, with the
	// final snapshot. Errors are logged and swallowed.
	DoneFn func(snapshot Snapshot) error

	Logger *zap.SugaredLogger
}

func (c *Config) withDefaults() {
	if c.MaxTeams <= 0 {
		c.MaxTeams = DefaultMaxTeams
	}
	if c.LifelineSeconds <= 0 {
		c.LifelineSeconds = DefaultLifelineSeconds
	}
	if c.Scheduler == nil {
		c.Scheduler = NewTickerScheduler(time.Second)
	}
	if c.Notifier == nil {
		c.Notifier = NopNotifier{}
	}
}
