package variation

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/crorepati-games/crorepati/internal/cache/cachelru"
	"github.com/crorepati-games/crorepati/internal/crorepati/questions"
)

type stubSource []questions.Question

func (s stubSource) Draw(int) ([]questions.Question, error) {
	out := make([]questions.Question, len(s))
	copy(out, s)
	return out, nil
}

func stubQuestions(n int) stubSource {
	list := make([]questions.Question, n)
	for i := range list {
		list[i] = questions.Question{
			ID:                 fmt.Sprintf("q%d", i+1),
			Text:               fmt.Sprintf("question %d", i+1),
			Options:            []string{"a", "b", "c", "d"},
			CorrectAnswerIndex: 0,
			MoneyValue:         100,
			TimeLimit:          30,
		}
	}
	return list
}

func TestDrawVariesAll(t *testing.T) {
	t.Parallel()

	varier := VarierFunc(func(_ context.Context, text string) (string, error) {
		return "varied: " + text, nil
	})

	src := NewSource(stubQuestions(5), varier, 1)
	drawn, err := src.Draw(1)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	for _, q := range drawn {
		if !strings.HasPrefix(q.Text, "varied: ") {
			t.Errorf("question %s not varied: %q", q.ID, q.Text)
		}
		if q.OriginalText == "" {
			t.Errorf("question %s lost its original text", q.ID)
		}
	}
}

func TestDrawFallsBackOnError(t *testing.T) {
	t.Parallel()

	varier := VarierFunc(func(_ context.Context, _ string) (string, error) {
		return "", fmt.Errorf("model unavailable")
	})

	src := NewSource(stubQuestions(3), varier, 1)
	drawn, err := src.Draw(1)
	if err != nil {
		t.Fatalf("draw must not fail on varier errors: %v", err)
	}

	for i, q := range drawn {
		if q.Text != fmt.Sprintf("question %d", i+1) {
			t.Errorf("question %s text changed on failure: %q", q.ID, q.Text)
		}
		if q.OriginalText != "" {
			t.Errorf("question %s marked varied on failure", q.ID)
		}
	}
}

func TestDrawDisabled(t *testing.T) {
	t.Parallel()

	varier := VarierFunc(func(_ context.Context, _ string) (string, error) {
		t.Error("varier must not be called when chance is 0")
		return "", nil
	})

	src := NewSource(stubQuestions(3), varier, 0)
	drawn, err := src.Draw(1)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if drawn[0].Text != "question 1" {
		t.Errorf("expected pass-through got %q", drawn[0].Text)
	}

	src = NewSource(stubQuestions(3), nil, 1)
	if _, err := src.Draw(1); err != nil {
		t.Fatalf("draw with nil varier: %v", err)
	}
}

func TestDrawUsesCache(t *testing.T) {
	t.Parallel()

	c, err := cachelru.NewLRU(16)
	if err != nil {
		t.Fatalf("new lru: %v", err)
	}

	var calls int
	varier := VarierFunc(func(_ context.Context, text string) (string, error) {
		calls++
		return "varied: " + text, nil
	})

	src := NewSource(stubQuestions(1), varier, 1, WithCache(c))
	if _, err := src.Draw(1); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 varier call got %d", calls)
	}

	drawn, err := src.Draw(1)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected cache hit, got %d varier calls", calls)
	}
	if drawn[0].Text != "varied: question 1" {
		t.Errorf("cached variation not applied: %q", drawn[0].Text)
	}
}
