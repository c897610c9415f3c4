package questions

import (
	"fmt"
	"sort"

	"github.com/valyala/fastrand"
)

func NewBank(list []Question) (*Bank, error) {
	if len(list) == 0 {
		return nil, ErrNoQuestions
	}

	byValue := map[int][]Question{}
	for _, q := range list {
		if err := q.validate(); err != nil {
			return nil, err
		}
		byValue[q.MoneyValue] = append(byValue[q.MoneyValue], q)
	}

	values := make([]int, 0, len(byValue))
	for v := range byValue {
		values = append(values, v)
	}
	sort.Ints(values)

	tiers := make([][]Question, 0, len(values))
	for _, v := range values {
		tiers = append(tiers, byValue[v])
	}

	return &Bank{tiers: tiers}, nil
}

// Bank groups questions into tiers of equal money value, ascending.
type Bank struct {
	tiers [][]Question
}

func (b *Bank) Len() int {
	var n int
	for _, tier := range b.tiers {
		n += len(tier)
	}
	return n
}

func (b *Bank) TierCount() int {
	return len(b.tiers)
}

// Validate checks the configuration precondition that every tier can serve
// a full round for up to maxTeams teams.
func (b *Bank) Validate(maxTeams int) error {
	for _, tier := range b.tiers {
		if len(tier) < maxTeams {
			return fmt.Errorf("%w: tier %d has %d questions, need %d",
				ErrTierShort, tier[0].MoneyValue, len(tier), maxTeams)
		}
	}

	return nil
}

// Draw returns teamCount questions per tier in ascending money value, so a
// full round-robin happens at every difficulty level. Questions within a
// tier come out in random order.
func (b *Bank) Draw(teamCount int) ([]Question, error) {
	if teamCount < 1 {
		return nil, fmt.Errorf("draw for %d teams", teamCount)
	}

	drawn := make([]Question, 0, teamCount*len(b.tiers))
	for _, tier := range b.tiers {
		if len(tier) < teamCount {
			return nil, fmt.Errorf("%w: tier %d has %d questions, need %d",
				ErrTierShort, tier[0].MoneyValue, len(tier), teamCount)
		}

		shuffled := make([]Question, len(tier))
		copy(shuffled, tier)
		for i := len(shuffled) - 1; i > 0; i-- {
			j := int(fastrand.Uint32n(uint32(i + 1)))
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		}

		drawn = append(drawn, shuffled[:teamCount]...)
	}

	return drawn, nil
}
