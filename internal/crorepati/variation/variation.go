// Package variation is the optional question-rewording enrichment. It
// decorates a question source: drawn questions are reworded with some
// chance, concurrently, and any failure falls back to the original text
// without ever blocking the game.
package variation

import (
	"context"
	"time"

	"github.com/crorepati-games/crorepati/internal/cache"
	"github.com/crorepati-games/crorepati/internal/crorepati/questions"
	"github.com/crorepati-games/crorepati/internal/logging"
	"github.com/valyala/fastrand"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultTimeout = 10 * time.Second

type Varier interface {
	Vary(ctx context.Context, text string) (string, error)
}

type VarierFunc func(ctx context.Context, text string) (string, error)

func (f VarierFunc) Vary(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

type QuestionSource interface {
	Draw(teamCount int) ([]questions.Question, error)
}

type Option func(*Source)

func WithCache(c cache.Cache) Option {
	return func(s *Source) { s.cache = c }
}

func WithTimeout(timeout time.Duration) Option {
	return func(s *Source) { s.timeout = timeout }
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Source) { s.logger = logger }
}

// NewSource wraps inner. A nil varier or a non-positive chance disables the
// enrichment and Draw passes straight through. Chance is in [0, 1].
func NewSource(inner QuestionSource, varier Varier, chance float64, opts ...Option) *Source {
	s := &Source{
		inner:   inner,
		varier:  varier,
		chance:  chance,
		timeout: defaultTimeout,
		logger:  logging.DefaultLogger().Named("variation"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type Source struct {
	inner   QuestionSource
	varier  Varier
	chance  float64
	cache   cache.Cache
	timeout time.Duration
	logger  *zap.SugaredLogger
}

func (s *Source) Draw(teamCount int) ([]questions.Question, error) {
	drawn, err := s.inner.Draw(teamCount)
	if err != nil {
		return nil, err
	}

	if s.varier == nil || s.chance <= 0 {
		return drawn, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	g := errgroup.Group{}
	for i := range drawn {
		i := i
		g.Go(func() error {
			s.varyOne(ctx, &drawn[i])
			return nil
		})
	}
	_ = g.Wait()

	return drawn, nil
}

func (s *Source) varyOne(ctx context.Context, q *questions.Question) {
	if s.chance < 1 && fastrand.Uint32n(1000) >= uint32(s.chance*1000) {
		return
	}

	if s.cache != nil {
		if v, ok := s.cache.Get(q.ID); ok {
			s.apply(q, v.(string))
			return
		}
	}

	varied, err := s.varier.Vary(ctx, q.Text)
	if err != nil {
		s.logger.Warnf("vary question %s, using original: %v", q.ID, err)
		return
	}

	if s.cache != nil && varied != "" {
		s.cache.Add(q.ID, varied)
	}
	s.apply(q, varied)
}

func (s *Source) apply(q *questions.Question, varied string) {
	if varied == "" || varied == q.Text {
		return
	}
	q.OriginalText = q.Text
	q.Text = varied
}
