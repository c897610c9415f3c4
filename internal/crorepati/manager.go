package crorepati

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crorepati-games/crorepati/internal/crorepati/match"
	"github.com/crorepati-games/crorepati/internal/crorepati/resource"
	resultDb "github.com/crorepati-games/crorepati/internal/database/result/database"
	resultModel "github.com/crorepati-games/crorepati/internal/database/result/model"
	"github.com/crorepati-games/crorepati/internal/logging"
)

// NewManager wires the session to the host terminal: it reads intents from
// in, renders snapshots to out and archives finished games. resultDb may be
// nil, in which case finished games are not recorded.
func NewManager(config *Config, source match.QuestionSource, results *resultDb.DB, in io.Reader, out io.Writer) *Manager {
	m := &Manager{
		config:  config,
		results: results,
		in:      in,
		out:     out,
	}

	m.session = match.NewSession(match.Config{
		Source:          source,
		MaxTeams:        config.MaxTeams,
		LifelineSeconds: config.LifelineSeconds,
		Notifier:        NewTerminalNotifier(out),
		DoneFn:          m.archive,
	})

	return m
}

type Manager struct {
	config  *Config
	session *match.Session
	results *resultDb.DB
	in      io.Reader
	out     io.Writer
}

// Session exposes the engine for wiring and tests.
func (m *Manager) Session() *match.Session {
	return m.session
}

func (m *Manager) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx).Named("manager")
	defer m.session.Close()

	scanner := bufio.NewScanner(m.in)
	for {
		renderSnapshot(m.out, m.session.Snapshot(), m.config.MaxTeams)
		fmt.Fprint(m.out, "\n> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read intent: %w", err)
			}
			return nil
		}
		if ctx.Err() != nil {
			logger.Infof("shutting down")
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "q" {
			return nil
		}

		if err := m.dispatch(line); err != nil {
			fmt.Fprintf(m.out, "\n%s\n", noticeFor(err))
		}
	}
}

// dispatch maps one host input line onto an intent for the current phase.
// Guard rejections come back as errors and never corrupt state.
func (m *Manager) dispatch(line string) error {
	snap := m.session.Snapshot()

	switch line {
	case "r":
		m.session.ResetGame()
		return nil
	case "h":
		return m.history()
	}

	switch snap.Phase {
	case match.PhaseTitleScreen, match.PhaseHostIntroduction, match.PhaseRules, match.PhaseScoreboard:
		return m.session.ProceedToNextPhase()
	case match.PhaseSetup:
		if line == "" {
			return nil
		}
		return m.session.StartGame(strings.Split(line, ","))
	case match.PhasePlaying:
		return m.dispatchTurn(snap, line)
	case match.PhaseGameOver:
		// only r and h do anything on the final screen
		return nil
	}

	return nil
}

func (m *Manager) dispatchTurn(snap match.Snapshot, line string) error {
	switch line {
	case "":
		// re-render only, refreshes the timer display
		return nil
	case "t":
		return m.session.StartMainTimer()
	case "f":
		if err := m.session.UseLifeline(match.LifelineFiftyFifty); err != nil {
			return err
		}
		fmt.Fprintln(m.out, resource.TextFiftyFiftyMsg)
		return nil
	case "p":
		if err := m.session.UseLifeline(match.LifelinePhoneAFriend); err != nil {
			return err
		}
		fmt.Fprintln(m.out, resource.TextPhoneAFriendMsg)
		return nil
	case "k":
		if err := m.session.UseLifeline(match.LifelineAskYourTeam); err != nil {
			return err
		}
		fmt.Fprintln(m.out, resource.TextAskYourTeamMsg)
		return nil
	case "s":
		return m.session.StartLifelineTimer(snap.ActiveDialog)
	case "c":
		return m.session.CloseLifelineDialog(snap.ActiveDialog)
	case "n":
		return m.session.ProceedToNextTurn()
	}

	if option, err := strconv.Atoi(line); err == nil {
		return m.session.SelectAnswer(option - 1)
	}
	if snap.Question != nil && len(line) == 1 {
		for i := range snap.Question.Options {
			if i < len(optionLabels) && strings.EqualFold(line, optionLabels[i]) {
				return m.session.SelectAnswer(i)
			}
		}
	}

	return nil
}

func (m *Manager) history() error {
	if m.results == nil {
		fmt.Fprintln(m.out, resource.TextHistoryEmptyMsg)
		return nil
	}

	list, err := m.results.FetchAll()
	if err != nil && !errors.Is(err, resultDb.ErrEntryNotFound) {
		return fmt.Errorf("fetch results: %w", err)
	}

	renderHistory(m.out, list)
	return nil
}

// archive runs as the session's DoneFn when the game reaches the final
// screen. Failures are logged by the session and never affect the game.
func (m *Manager) archive(snap match.Snapshot) error {
	if m.results == nil {
		return nil
	}

	standings := snap.Standings()
	if len(standings) == 0 {
		return nil
	}

	teams := make([]resultModel.TeamResult, len(standings))
	for i, team := range standings {
		teams[i] = resultModel.TeamResult{Name: team.Name, Score: team.Score}
	}

	result := resultModel.NewResult(teams, standings[0].Name, snap.QuestionCount, snap.StartedAt)
	if err := m.results.Add(result); err != nil {
		return fmt.Errorf("archive result: %w", err)
	}

	return nil
}

// noticeFor keeps guard rejections friendly on the host terminal.
func noticeFor(err error) string {
	switch {
	case errors.Is(err, match.ErrTimerNotStarted):
		return resource.TextTimerNotStartedMsg
	case errors.Is(err, match.ErrNoTeams):
		return resource.TextNoTeamsMsg
	default:
		return err.Error()
	}
}
