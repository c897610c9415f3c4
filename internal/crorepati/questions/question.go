// Package questions holds the question model and the bank the game draws
// from: questions grouped into tiers by money value, ascending, so every
// team answers at each difficulty level before the stakes rise.
package questions

import "fmt"

var (
	ErrNoQuestions = fmt.Errorf("question bank is empty")
	ErrBadQuestion = fmt.Errorf("malformed question")
	ErrTierShort   = fmt.Errorf("not enough questions in tier")
)

// Question is immutable once loaded. OriginalText is set only when an
// enrichment step rewrote Text.
type Question struct {
	ID                 string `json:"id"`
	Text               string `json:"text"`
	OriginalText       string `json:"originalText,omitempty"`
	Options            []string
	CorrectAnswerIndex int `json:"correctAnswerIndex"`
	MoneyValue         int `json:"moneyValue"`
	// Seconds for the turn. Zero means the question has no clock.
	TimeLimit int `json:"timeLimit"`
}

func (q Question) validate() error {
	if q.ID == "" || q.Text == "" {
		return fmt.Errorf("%w: %q has empty id or text", ErrBadQuestion, q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: %q has %d options", ErrBadQuestion, q.ID, len(q.Options))
	}
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		return fmt.Errorf("%w: %q correct index %d out of range", ErrBadQuestion, q.ID, q.CorrectAnswerIndex)
	}
	if q.MoneyValue <= 0 {
		return fmt.Errorf("%w: %q money value %d", ErrBadQuestion, q.ID, q.MoneyValue)
	}
	if q.TimeLimit < 0 {
		return fmt.Errorf("%w: %q time limit %d", ErrBadQuestion, q.ID, q.TimeLimit)
	}

	return nil
}
