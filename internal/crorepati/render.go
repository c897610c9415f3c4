package crorepati

import (
	"fmt"
	"io"
	"strconv"

	"github.com/crorepati-games/crorepati/internal/crorepati/match"
	"github.com/crorepati-games/crorepati/internal/crorepati/resource"
	"github.com/crorepati-games/crorepati/internal/database/result/model"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

func renderSnapshot(w io.Writer, snap match.Snapshot, maxTeams int) {
	switch snap.Phase {
	case match.PhaseTitleScreen:
		fmt.Fprintln(w, resource.TextTitleMsg)
		fmt.Fprintln(w, resource.TextMenuHelpMsg)
	case match.PhaseHostIntroduction:
		fmt.Fprintln(w, resource.TextHostIntroMsg)
		fmt.Fprintln(w, "\npress enter to continue")
	case match.PhaseSetup:
		fmt.Fprintf(w, resource.TextSetupMsg+"\n", maxTeams)
	case match.PhaseRules:
		fmt.Fprintln(w, resource.TextRulesMsg)
		fmt.Fprintln(w, "\npress enter to start the game")
	case match.PhasePlaying:
		renderTurn(w, snap)
	case match.PhaseScoreboard:
		fmt.Fprintln(w, resource.TextScoreboardMsg)
		renderStandings(w, snap)
		fmt.Fprintln(w, "\npress enter for the next round")
	case match.PhaseGameOver:
		winner := snap.Standings()
		if len(winner) > 0 {
			fmt.Fprintf(w, resource.TextGameOverMsg+"\n\n", winner[0].Name)
		}
		renderStandings(w, snap)
		fmt.Fprintln(w, "\n"+resource.TextMenuHelpMsg)
	}
}

func renderTurn(w io.Writer, snap match.Snapshot) {
	if snap.Inconsistent {
		fmt.Fprintln(w, resource.TextInconsistentMsg)
		return
	}

	q := snap.Question
	team := snap.ActiveTeam()

	fmt.Fprintf(w, resource.TextNextTeamMsg+"\n\n", team.Name, formatMoney(q.MoneyValue))
	fmt.Fprintf(w, "Question %d of %d: %s\n\n", snap.CurrentQuestionIndex+1, snap.QuestionCount, q.Text)

	for i, opt := range q.Options {
		label := strconv.Itoa(i + 1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		switch {
		case snap.OptionHidden(i):
			fmt.Fprintf(w, "  %s) -\n", label)
		case snap.AnswerRevealed && i == q.CorrectAnswerIndex:
			fmt.Fprintf(w, "> %s) %s  (correct)\n", label, opt)
		case snap.AnswerRevealed && i == snap.SelectedAnswer:
			fmt.Fprintf(w, "> %s) %s  (your answer)\n", label, opt)
		default:
			fmt.Fprintf(w, "  %s) %s\n", label, opt)
		}
	}

	switch {
	case q.TimeLimit == 0:
		fmt.Fprintln(w, "\nno clock on this question")
	case snap.TimerActive:
		fmt.Fprintf(w, "\ntime left: %ds (running)\n", snap.TimeLeft)
	case snap.TimerStarted:
		fmt.Fprintf(w, "\ntime left: %ds (stopped)\n", snap.TimeLeft)
	default:
		fmt.Fprintf(w, "\ntime left: %ds (press t to start)\n", snap.TimeLeft)
	}

	if snap.ActiveDialog != 0 {
		renderDialog(w, snap)
		return
	}

	fmt.Fprintf(w, "lifelines: 50:50 %s | phone %s | team %s\n",
		mark(team.Lifelines.FiftyFifty && !snap.FiftyFiftyUsedThisTurn),
		mark(team.Lifelines.PhoneAFriend),
		mark(team.Lifelines.AskYourTeam),
	)

	if snap.AnswerRevealed {
		fmt.Fprintln(w, "\npress n for the next turn")
	}

	renderStandings(w, snap)
	fmt.Fprintln(w, "\n"+resource.TextPlayingHelpMsg)
}

func renderDialog(w io.Writer, snap match.Snapshot) {
	timer := snap.AskYourTeamTimer
	title := "Ask Your Team: confer!"
	if snap.ActiveDialog == match.LifelinePhoneAFriend {
		timer = snap.PhoneAFriendTimer
		title = "Phone a Friend: make the call!"
	}

	fmt.Fprintf(w, "\n[%s]\n", title)
	switch {
	case timer.Active:
		fmt.Fprintf(w, "huddle timer: %ds (running)\n", timer.Seconds)
	case timer.Seconds == 0:
		fmt.Fprintln(w, "huddle timer: time up")
	default:
		fmt.Fprintf(w, "huddle timer: %ds (press s to start)\n", timer.Seconds)
	}
	fmt.Fprintln(w, "press c to close the dialog")
}

func renderStandings(w io.Writer, snap match.Snapshot) {
	fmt.Fprintln(w, "\nscores:")
	for i, team := range snap.Standings() {
		fmt.Fprintf(w, "  %d. %s - %s\n", i+1, team.Name, formatMoney(team.Score))
	}
}

func renderHistory(w io.Writer, results []model.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, resource.TextHistoryEmptyMsg)
		return
	}

	for _, result := range results {
		fmt.Fprintf(w, "%s: %s won", result.FinishedAt.Format("2006-01-02 15:04"), result.Winner)
		for _, team := range result.Teams {
			fmt.Fprintf(w, " | %s %s", team.Name, formatMoney(team.Score))
		}
		fmt.Fprintln(w)
	}
}

func mark(available bool) string {
	if available {
		return "available"
	}
	return "used"
}

// formatMoney renders 1250000 as $1,250,000.
func formatMoney(amount int) string {
	digits := strconv.Itoa(amount)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return "$" + string(out)
}
