// Package tree enumerates the game tree of Kuhn poker.
//
// The tree has a chance node that deals player 0's card, three chance nodes
// that deal player 1's card, and below each of the six deals the same
// public tree of action histories.
package tree

import (
	"github.com/majkelelele/kuhncfr/kuhn"
)

// numChanceNodes is the number of chance nodes above the six deals.
const numChanceNodes = 1 + kuhn.NumCards

// Visit calls visitor on root and on every history that extends it,
// stopping at terminal histories.
func Visit(root kuhn.History, visitor func(h kuhn.History)) {
	visitor(root)
	if kuhn.IsTerminal(root) {
		return
	}

	for _, a := range kuhn.Actions {
		Visit(root.Append(a), visitor)
	}
}

// VisitDeals calls visitor on every history of the game under every deal.
func VisitDeals(visitor func(deal kuhn.Deal, h kuhn.History)) {
	for _, deal := range kuhn.AllDeals() {
		Visit(kuhn.History{}, func(h kuhn.History) {
			visitor(deal, h)
		})
	}
}

// VisitInfoSets calls visitor once for every distinct information state.
func VisitInfoSets(visitor func(key kuhn.InfoSetKey)) {
	seen := make(map[kuhn.InfoSetKey]struct{})
	VisitDeals(func(deal kuhn.Deal, h kuhn.History) {
		if kuhn.IsTerminal(h) {
			return
		}

		player := h.Player()
		key := kuhn.InfoSetKey{
			Player:  player,
			Card:    deal.Card(player),
			History: h,
		}

		if _, ok := seen[key]; ok {
			return
		}

		visitor(key)
		seen[key] = struct{}{}
	})
}

func CountTerminalNodes() int {
	total := 0
	VisitDeals(func(deal kuhn.Deal, h kuhn.History) {
		if kuhn.IsTerminal(h) {
			total++
		}
	})

	return total
}

func CountNodes() int {
	total := numChanceNodes
	VisitDeals(func(deal kuhn.Deal, h kuhn.History) { total++ })
	return total
}

func CountInfoSets() int {
	total := 0
	VisitInfoSets(func(key kuhn.InfoSetKey) { total++ })
	return total
}
