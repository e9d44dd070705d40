// Package cfr computes approximate Nash equilibrium strategies for Kuhn
// poker with vanilla counterfactual regret minimization.
//
// A Trainer owns a Table of information states, shuffles a new deal on
// every iteration, and runs a full traversal of the game tree for that deal.
// The average strategies of the Table converge to an equilibrium.
package cfr

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/majkelelele/kuhncfr/kuhn"
)

type Trainer struct {
	params Params

	table   *Table
	dealer  *kuhn.Dealer
	vanilla *Vanilla
}

// NewTrainer creates a Trainer with a fresh Table.
func NewTrainer(params Params) (*Trainer, error) {
	return NewTrainerWithTable(params, NewTable())
}

// NewTrainerWithTable creates a Trainer that continues training the given
// Table, e.g. one restored from a checkpoint.
func NewTrainerWithTable(params Params, table *Table) (*Trainer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(params.Seed))
	return &Trainer{
		params:  params,
		table:   table,
		dealer:  kuhn.NewDealer(rng),
		vanilla: NewVanilla(table),
	}, nil
}

func (t *Trainer) Table() *Table {
	return t.table
}

// Iter returns the total number of iterations the Table has been trained for.
func (t *Trainer) Iter() int {
	return t.table.iter
}

// RunIteration deals a new game and performs one CFR traversal of it.
// It returns the expected value of the game to player 0.
func (t *Trainer) RunIteration() float64 {
	deal := t.dealer.Deal()
	ev := t.vanilla.Run(deal)
	t.table.iter++
	return ev
}

// Train runs the configured number of iterations and returns the average
// expected value of the game to player 0 over those iterations.
func (t *Trainer) Train() float64 {
	nIter := t.params.Iterations
	var expectedValue float64
	for i := 1; i <= nIter; i++ {
		expectedValue += t.RunIteration()
		if nIter/10 > 0 && i%(nIter/10) == 0 {
			glog.V(1).Infof("[iter=%d] Expected game value: %.4f", i, expectedValue/float64(i))
		}
	}

	return expectedValue / float64(nIter)
}

// StrategyResult is the average strategy of one information state.
type StrategyResult struct {
	Key kuhn.InfoSetKey
	// Probability of each action, rounded to 3 decimal places.
	AverageStrategy [kuhn.NumActions]float64
}

// Results returns the average strategy of every information state.
func (t *Trainer) Results() []StrategyResult {
	return t.table.Results()
}

// Report writes the average strategy of every information state to w.
func (t *Trainer) Report(w io.Writer) error {
	return t.table.Report(w)
}

// Results returns the average strategy of every information state, in
// the order the states were created.
func (t *Table) Results() []StrategyResult {
	result := make([]StrategyResult, 0, len(t.order))
	for _, s := range t.order {
		r := StrategyResult{Key: s.key}
		for i, p := range s.averageStrategy() {
			r.AverageStrategy[i] = round(p, 3)
		}

		result = append(result, r)
	}

	return result
}

// Report writes one line per information state with its average strategy.
func (t *Table) Report(w io.Writer) error {
	for _, r := range t.Results() {
		_, err := fmt.Fprintf(w, "%8s: pass=%.3f bet=%.3f\n",
			r.Key, r.AverageStrategy[kuhn.Pass], r.AverageStrategy[kuhn.Bet])
		if err != nil {
			return errors.Wrap(err, "write report")
		}
	}

	return nil
}

func round(x float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(x*scale) / scale
}
