package resource

import "github.com/enescakir/emoji"

const (
	ProjectName    = "Crorepati Challenge"
	ProjectVersion = "1.0.0"
)

const Graffiti = `
   ___                             _   _
  / __\_ __ ___  _ __ ___ _ __   __ _| |_(_)
 / / | '__/ _ \| '__/ _ \ '_ \ / _` + "`" + ` | __| |
/ /__| | | (_) | | |  __/ |_) | (_| | |_| |
\____/_|  \___/|_|  \___| .__/ \__,_|\__|_|
                        |_|  challenge
`

// manage text messages
var (
	TextTitleMsg = emoji.VideoGame.String() + " Welcome to " + ProjectName + "! Press enter to play"

	TextHostIntroMsg = emoji.Microphone.String() + ` Good evening, teams!

Tonight every team climbs the money ladder one question at a time. The
questions get harder, the stakes get higher, and three lifelines stand
between you and going home empty-handed. Play boldly!`

	TextRulesMsg = emoji.Bookmark.String() + ` Rules

1. Teams take turns answering multiple-choice questions.
2. Every team answers one question at each money level before the
   stakes rise.
3. The clock starts only when the host says so - and it only starts
   once per question.
4. A correct answer adds the question's money value to your total.
   A wrong answer or a timeout adds nothing.
5. Each team may use each lifeline once per game:
   ` + emoji.Scissors.String() + ` 50:50 removes two wrong options,
   ` + emoji.TelephoneReceiver.String() + ` Phone a Friend and ` + emoji.SpeakingHead.String() + ` Ask Your Team open a 30 second huddle.
6. Highest total when the questions run out wins.`

	TextSetupMsg           = emoji.BustsInSilhouette.String() + " Enter team names separated by commas (1-%d teams)"
	TextNoTeamsMsg         = "At least one non-empty team name is required"
	TextNextTeamMsg        = emoji.GameDie.String() + " %s, you're up! Playing for %s"
	TextTimerNotStartedMsg = "Start the timer before selecting an answer"
	TextCorrectMsg         = emoji.PartyPopper.String() + " Correct! %s wins %s"
	TextIncorrectMsg       = emoji.CrossMark.String() + " Incorrect. Better luck next time, %s"
	TextTimeUpMsg          = emoji.AlarmClock.String() + " Time's up, %s! No answer counted"
	TextFiftyFiftyMsg      = emoji.Scissors.String() + " 50:50 used! Two incorrect options removed"
	TextPhoneAFriendMsg    = emoji.TelephoneReceiver.String() + " Phone a Friend! Dialog open, start the timer when ready"
	TextAskYourTeamMsg     = emoji.SpeakingHead.String() + " Ask Your Team! Dialog open, start the timer when ready"
	TextScoreboardMsg      = emoji.BarChart.String() + " Scores after this round"
	TextGameOverMsg        = emoji.Trophy.String() + " Game over! Congratulations, %s!"
	TextInconsistentMsg    = emoji.Warning.String() + " Game in inconsistent state. Press r to restart"
	TextHistoryEmptyMsg    = "No finished games in the archive yet"
)

// keyboard shortcuts shown to the host
var (
	TextPlayingHelpMsg = `commands: t start timer | 1-4 answer | f 50:50 | p phone a friend |
k ask your team | s start lifeline timer | c close dialog | n next | q quit`
	TextMenuHelpMsg = "commands: enter proceed | h history | r reset | q quit"
)
