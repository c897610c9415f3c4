package match

// Notifier receives fire-and-forget side-channel events: sound cues and
// host-facing banners. Errors are logged and swallowed, never fatal, and no
// game state depends on them.
type Notifier interface {
	TimerStarted(secondsLeft int) error
	TimerStopped() error
	AnswerCorrect(team string, amount int) error
	AnswerIncorrect(team string) error
	TimeUp(team string) error
	GameOver(winner string, score int) error
}

type NopNotifier struct{}

var _ Notifier = NopNotifier{}

func (NopNotifier) TimerStarted(int) error          { return nil }
func (NopNotifier) TimerStopped() error             { return nil }
func (NopNotifier) AnswerCorrect(string, int) error { return nil }
func (NopNotifier) AnswerIncorrect(string) error    { return nil }
func (NopNotifier) TimeUp(string) error             { return nil }
func (NopNotifier) GameOver(string, int) error      { return nil }
