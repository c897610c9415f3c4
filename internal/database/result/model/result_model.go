package model

import (
	"time"

	"github.com/google/uuid"
)

// Result is the archived outcome of one finished game. It is written once
// when the game reaches the final screen and is never read back into a
// running game.
type Result struct {
	ID uuid.UUID `json:"id"`

	Teams  []TeamResult `json:"teams"`
	Winner string       `json:"winner"`

	QuestionsPlayed int `json:"questionsPlayed"`

	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

type TeamResult struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func NewResult(teams []TeamResult, winner string, questionsPlayed int, startedAt time.Time) Result {
	return Result{
		ID:              uuid.New(),
		Teams:           teams,
		Winner:          winner,
		QuestionsPlayed: questionsPlayed,
		StartedAt:       startedAt,
		FinishedAt:      time.Now(),
	}
}
