package match

import (
	"strings"

	"github.com/google/uuid"
)

type LifelineKind uint8

const (
	LifelineFiftyFifty LifelineKind = iota + 1
	LifelinePhoneAFriend
	LifelineAskYourTeam
)

func (k LifelineKind) String() string {
	switch k {
	case LifelineFiftyFifty:
		return "fiftyFifty"
	case LifelinePhoneAFriend:
		return "phoneAFriend"
	case LifelineAskYourTeam:
		return "askYourTeam"
	}
	return "unknown"
}

// Lifelines are each consumable once per team per game. A flag flips to
// false the instant the lifeline is invoked, regardless of outcome.
type Lifelines struct {
	FiftyFifty   bool `json:"fiftyFifty"`
	PhoneAFriend bool `json:"phoneAFriend"`
	AskYourTeam  bool `json:"askYourTeam"`
}

func (l Lifelines) Available(kind LifelineKind) bool {
	switch kind {
	case LifelineFiftyFifty:
		return l.FiftyFifty
	case LifelinePhoneAFriend:
		return l.PhoneAFriend
	case LifelineAskYourTeam:
		return l.AskYourTeam
	}
	return false
}

func (l *Lifelines) consume(kind LifelineKind) {
	switch kind {
	case LifelineFiftyFifty:
		l.FiftyFifty = false
	case LifelinePhoneAFriend:
		l.PhoneAFriend = false
	case LifelineAskYourTeam:
		l.AskYourTeam = false
	}
}

type Team struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	Lifelines Lifelines `json:"lifelines"`
}

func newTeam(name string) *Team {
	return &Team{
		ID:        uuid.New(),
		Name:      name,
		Lifelines: Lifelines{FiftyFifty: true, PhoneAFriend: true, AskYourTeam: true},
	}
}

// normalizeTeamNames trims and drops empty entries, preserving order.
func normalizeTeamNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}
