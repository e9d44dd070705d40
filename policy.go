package cfr

import (
	"fmt"

	"github.com/majkelelele/kuhncfr/internal/f64"
	"github.com/majkelelele/kuhncfr/kuhn"
)

// Table implements tabular CFR by storing accumulated regrets and strategy
// sums for every information state of Kuhn poker.
//
// All states are created up front and the table never grows. A Table is
// owned by a single Trainer and is not safe for concurrent use.
type Table struct {
	iter int

	states map[kuhn.InfoSetKey]*InfoState
	// Information states in construction order, used for reporting.
	order []*InfoState
}

// NewTable creates a Table with one InfoState for each card at each
// decision point of the game.
func NewTable() *Table {
	t := &Table{
		states: make(map[kuhn.InfoSetKey]*InfoState),
	}

	for _, h := range kuhn.DecisionHistories() {
		for _, card := range kuhn.Cards {
			key := kuhn.InfoSetKey{
				Player:  h.Player(),
				Card:    card,
				History: h,
			}

			s := newInfoState(key)
			t.states[key] = s
			t.order = append(t.order, s)
		}
	}

	return t
}

// Iter returns the number of training iterations accumulated in the table.
func (t *Table) Iter() int {
	return t.iter
}

// SetIter sets the iteration count, e.g. when restoring a checkpoint.
func (t *Table) SetIter(iter int) {
	t.iter = iter
}

func (t *Table) Len() int {
	return len(t.order)
}

// Get returns the InfoState with the given key, if it exists.
func (t *Table) Get(key kuhn.InfoSetKey) (*InfoState, bool) {
	s, ok := t.states[key]
	return s, ok
}

// Lookup returns the InfoState of the player to act after history h,
// holding their card from the given deal. It returns false if no player
// acts after h, i.e. the game is over.
func (t *Table) Lookup(h kuhn.History, deal kuhn.Deal) (*InfoState, bool) {
	player := h.Player()
	return t.Get(kuhn.InfoSetKey{
		Player:  player,
		Card:    deal.Card(player),
		History: h,
	})
}

// States returns all information states in construction order.
func (t *Table) States() []*InfoState {
	result := make([]*InfoState, len(t.order))
	copy(result, t.order)
	return result
}

// InfoState holds the accumulated regret and strategy of one decision point.
type InfoState struct {
	key kuhn.InfoSetKey

	currentStrategy [kuhn.NumActions]float64
	regretSum       [kuhn.NumActions]float64
	strategySum     [kuhn.NumActions]float64
}

func newInfoState(key kuhn.InfoSetKey) *InfoState {
	s := &InfoState{key: key}
	s.regretMatching()
	return s
}

// String implements fmt.Stringer.
func (s *InfoState) String() string {
	return fmt.Sprintf("%v: regrets=%v strategy=%v", s.key, s.regretSum, s.currentStrategy)
}

func (s *InfoState) Key() kuhn.InfoSetKey {
	return s.key
}

// Strategy returns the current strategy: action probabilities proportional
// to positive accumulated regret, or uniform if no regret is positive.
func (s *InfoState) Strategy() []float64 {
	result := make([]float64, kuhn.NumActions)
	copy(result, s.currentStrategy[:])
	return result
}

// Accumulate adds the counterfactual regret of one action, and the current
// probability of that action weighted by the owner's reach probability.
func (s *InfoState) Accumulate(a kuhn.Action, counterfactualRegret, reachP float64) {
	s.regretSum[a] += counterfactualRegret
	s.strategySum[a] += reachP * s.currentStrategy[a]
}

// AverageStrategy returns the average strategy over all iterations.
func (s *InfoState) AverageStrategy() []float64 {
	avgStrat := s.averageStrategy()
	return avgStrat[:]
}

func (s *InfoState) averageStrategy() [kuhn.NumActions]float64 {
	var avgStrat [kuhn.NumActions]float64
	total := f64.Sum(s.strategySum[:])
	if total > 0 {
		f64.ScalUnitaryTo(avgStrat[:], 1.0/total, s.strategySum[:])
	} else {
		f64.Fill(1.0/kuhn.NumActions, avgStrat[:])
	}

	return avgStrat
}

func (s *InfoState) RegretSum() [kuhn.NumActions]float64 {
	return s.regretSum
}

func (s *InfoState) StrategySum() [kuhn.NumActions]float64 {
	return s.strategySum
}

// Restore replaces the accumulated sums, e.g. when loading a checkpoint.
func (s *InfoState) Restore(regretSum, strategySum [kuhn.NumActions]float64) {
	s.regretSum = regretSum
	s.strategySum = strategySum
	s.regretMatching()
}

func (s *InfoState) update() {
	s.regretMatching()
}

func (s *InfoState) regretMatching() {
	s.currentStrategy = s.regretSum
	f64.ClampNegative(s.currentStrategy[:])
	total := f64.Sum(s.currentStrategy[:])
	if total > 0 {
		f64.ScalUnitary(1.0/total, s.currentStrategy[:])
	} else {
		f64.Fill(1.0/kuhn.NumActions, s.currentStrategy[:])
	}
}
