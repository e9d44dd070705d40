package cfr

import (
	"math"
	"math/rand"

	"github.com/majkelelele/kuhncfr/internal/sampling"
	"github.com/majkelelele/kuhncfr/kuhn"
)

// actionProbs chooses the action probabilities used at an information state.
type actionProbs func(s *InfoState) [kuhn.NumActions]float64

// ExpectedValue returns the exact value of the game to player 0 when both
// players follow the average strategies in the table.
func ExpectedValue(table *Table) float64 {
	return profileValue(table, averageProbs)
}

// BestResponseValue returns the value to the given player of the best
// response to the opponent's average strategy.
//
// Each player has six information states, so the best response is found
// by evaluating every one of the 2^6 pure strategies.
func BestResponseValue(table *Table, player int) float64 {
	index := make(map[kuhn.InfoSetKey]uint)
	for _, s := range table.order {
		if s.key.Player == player {
			index[s.key] = uint(len(index))
		}
	}

	sgn := 1.0
	if player == 1 {
		sgn = -1.0
	}

	best := math.Inf(-1)
	nPure := 1 << uint(len(index))
	for pure := 0; pure < nPure; pure++ {
		v := sgn * profileValue(table, func(s *InfoState) [kuhn.NumActions]float64 {
			i, ok := index[s.key]
			if !ok {
				return s.averageStrategy()
			}

			var probs [kuhn.NumActions]float64
			probs[(pure>>i)&1] = 1.0
			return probs
		})

		best = math.Max(best, v)
	}

	return best
}

// Exploitability returns the average amount that a best-responding
// opponent gains against the table's average strategies. It is zero
// at a Nash equilibrium.
func Exploitability(table *Table) float64 {
	return (BestResponseValue(table, 0) + BestResponseValue(table, 1)) / 2
}

// Simulate plays n games in which both players sample their actions from
// the average strategies, and returns the mean payoff to player 0.
func Simulate(table *Table, n int, rng *rand.Rand) float64 {
	dealer := kuhn.NewDealer(rng)
	var total float64
	for i := 0; i < n; i++ {
		deal := dealer.Deal()
		h := kuhn.History{}
		for {
			s, ok := table.Lookup(h, deal)
			if !ok {
				total += kuhn.Utility(h, deal, 0)
				break
			}

			a := sampling.SampleOne(s.AverageStrategy(), rng.Float64())
			h = h.Append(kuhn.Actions[a])
		}
	}

	return total / float64(n)
}

func averageProbs(s *InfoState) [kuhn.NumActions]float64 {
	return s.averageStrategy()
}

// profileValue returns the expected value to player 0, over all deals,
// of both players following the given action probabilities.
func profileValue(table *Table, probs actionProbs) float64 {
	deals := kuhn.AllDeals()
	var total float64
	for _, deal := range deals {
		total += historyValue(table, deal, kuhn.History{}, probs)
	}

	return total / float64(len(deals))
}

func historyValue(table *Table, deal kuhn.Deal, h kuhn.History, probs actionProbs) float64 {
	s, ok := table.Lookup(h, deal)
	if !ok {
		return kuhn.Utility(h, deal, 0)
	}

	var ev float64
	for i, p := range probs(s) {
		if p == 0 {
			continue
		}

		ev += p * historyValue(table, deal, h.Append(kuhn.Actions[i]), probs)
	}

	return ev
}
