package cfr

import (
	"github.com/majkelelele/kuhncfr/internal/f64"
	"github.com/majkelelele/kuhncfr/kuhn"
)

// Vanilla performs full traversals of the game tree for one deal at a time,
// updating the regrets and strategies of every InfoState it visits.
type Vanilla struct {
	table *Table
	deal  kuhn.Deal

	// Evaluates terminal histories.
	utility func(h kuhn.History, deal kuhn.Deal, player int) float64
}

func NewVanilla(table *Table) *Vanilla {
	return &Vanilla{
		table:   table,
		utility: kuhn.Utility,
	}
}

// Run traverses every history reachable under the given deal and returns
// the expected value of the game to player 0 under the current strategies.
func (v *Vanilla) Run(deal kuhn.Deal) float64 {
	v.deal = deal
	return v.runHelper(kuhn.History{}, 1.0, 1.0)
}

// runHelper returns the value of history h to the player whose turn it is
// after h. Terminal histories are labeled with the player who would act
// next, so that the parent's negation gives the value to the parent.
func (v *Vanilla) runHelper(h kuhn.History, reachP0, reachP1 float64) float64 {
	state, ok := v.table.Lookup(h, v.deal)
	if !ok {
		return v.utility(h, v.deal, h.Player())
	}

	return v.handlePlayerNode(state, h, reachP0, reachP1)
}

func (v *Vanilla) handlePlayerNode(state *InfoState, h kuhn.History, reachP0, reachP1 float64) float64 {
	player := h.Player()
	var actionUtils [kuhn.NumActions]float64
	for i, a := range kuhn.Actions {
		child := h.Append(a)
		p := state.currentStrategy[i]
		if player == 0 {
			actionUtils[i] = -1 * v.runHelper(child, p*reachP0, reachP1)
		} else {
			actionUtils[i] = -1 * v.runHelper(child, reachP0, p*reachP1)
		}
	}

	nodeUtil := f64.DotUnitary(state.currentStrategy[:], actionUtils[:])

	// The opponent's reach does not depend on this node's action choice.
	reachP := reachProb(player, reachP0, reachP1)
	counterFactualP := counterFactualProb(player, reachP0, reachP1)
	for i, a := range kuhn.Actions {
		state.Accumulate(a, counterFactualP*(actionUtils[i]-nodeUtil), reachP)
	}

	state.update()
	return nodeUtil
}

func reachProb(player int, reachP0, reachP1 float64) float64 {
	if player == 0 {
		return reachP0
	}

	return reachP1
}

// The probability of reaching this node, assuming that the current player
// tried to reach it.
func counterFactualProb(player int, reachP0, reachP1 float64) float64 {
	if player == 0 {
		return reachP1
	}

	return reachP0
}
