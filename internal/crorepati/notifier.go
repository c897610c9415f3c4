package crorepati

import (
	"fmt"
	"io"
	"time"

	"github.com/crorepati-games/crorepati/internal/crorepati/match"
	"github.com/crorepati-games/crorepati/internal/crorepati/resource"
	"github.com/crorepati-games/crorepati/internal/util"
)

// NewTerminalNotifier returns the stand-in for the audio collaborator: it
// prints banners to the host terminal and pauses briefly for dramatic
// effect. Failures propagate as errors and the session logs and drops them.
func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{w: w}
}

type TerminalNotifier struct {
	w io.Writer
}

var _ match.Notifier = (*TerminalNotifier)(nil)

func (t *TerminalNotifier) TimerStarted(secondsLeft int) error {
	_, err := fmt.Fprintf(t.w, "\n(tick) timer running, %d seconds\n", secondsLeft)
	return err
}

func (t *TerminalNotifier) TimerStopped() error {
	_, err := fmt.Fprintln(t.w, "\n(tick) timer stopped")
	return err
}

func (t *TerminalNotifier) AnswerCorrect(team string, amount int) error {
	if _, err := fmt.Fprintf(t.w, "\n"+resource.TextCorrectMsg+"\n", team, formatMoney(amount)); err != nil {
		return err
	}
	util.Sleep(time.Second)
	return nil
}

func (t *TerminalNotifier) AnswerIncorrect(team string) error {
	if _, err := fmt.Fprintf(t.w, "\n"+resource.TextIncorrectMsg+"\n", team); err != nil {
		return err
	}
	util.Sleep(time.Second)
	return nil
}

func (t *TerminalNotifier) TimeUp(team string) error {
	if _, err := fmt.Fprintf(t.w, "\n"+resource.TextTimeUpMsg+"\n", team); err != nil {
		return err
	}
	util.Sleep(time.Second)
	return nil
}

func (t *TerminalNotifier) GameOver(winner string, score int) error {
	_, err := fmt.Fprintf(t.w, "\n"+resource.TextGameOverMsg+" (%s)\n", winner, formatMoney(score))
	return err
}
