// Package kuhn implements the rules of two-player Kuhn poker, adapted from:
// https://justinsermeno.com/posts/cfr/.
//
// Each player antes 1 and is dealt one of three cards. Player 0 acts first
// and may pass or bet 1; the game ends after at most three actions.
package kuhn

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	player0 = 0
	player1 = 1

	// NumPlayers is the number of players in the game.
	NumPlayers = 2
)

type Action uint8

const (
	Pass Action = iota
	Bet
)

// NumActions is the number of legal actions at every decision point.
const NumActions = 2

// Actions lists the legal actions in index order.
var Actions = [NumActions]Action{Pass, Bet}

var actionStr = [...]string{
	"p",
	"b",
}

func (a Action) String() string {
	return actionStr[a]
}

type Card uint8

const (
	Jack Card = iota
	Queen
	King
)

// NumCards is the size of the deck.
const NumCards = 3

// Cards is the full deck in rank order.
var Cards = [NumCards]Card{Jack, Queen, King}

var cardStr = [...]string{
	"J",
	"Q",
	"K",
}

func (c Card) String() string {
	return cardStr[c]
}

// MaxHistoryLen is the longest possible sequence of actions in a game.
const MaxHistoryLen = 3

// History records the actions taken so far in a game.
// It is presized, rather than a slice, so that it is comparable
// and may be used directly within a map key.
type History struct {
	actions [MaxHistoryLen]Action
	n       uint8
}

// NewHistory returns the History consisting of the given actions.
func NewHistory(actions ...Action) History {
	var h History
	for _, a := range actions {
		h = h.Append(a)
	}
	return h
}

func (h History) Len() int {
	return int(h.n)
}

func (h History) Get(i int) Action {
	if i >= h.Len() {
		panic(fmt.Errorf("index out of range: %d %v", i, h))
	}

	return h.actions[i]
}

// Append returns a copy of h extended by the given action.
func (h History) Append(a Action) History {
	if h.Len() >= MaxHistoryLen {
		panic(fmt.Errorf("history exceeded max length: %v", h))
	}

	h.actions[h.n] = a
	h.n++
	return h
}

// Player returns the player whose turn it is after this history.
func (h History) Player() int {
	return h.Len() % NumPlayers
}

// String implements fmt.Stringer, e.g. "pb".
func (h History) String() string {
	buf := make([]byte, 0, MaxHistoryLen)
	for _, a := range h.actions[:h.n] {
		buf = append(buf, a.String()...)
	}
	return string(buf)
}

// Digits returns the history with each action written as its index,
// e.g. "01" for Pass, Bet.
func (h History) Digits() string {
	buf := make([]byte, 0, MaxHistoryLen)
	for _, a := range h.actions[:h.n] {
		buf = append(buf, '0'+byte(a))
	}
	return string(buf)
}

var (
	passPass    = NewHistory(Pass, Pass)
	betPass     = NewHistory(Bet, Pass)
	betBet      = NewHistory(Bet, Bet)
	passBetPass = NewHistory(Pass, Bet, Pass)
	passBetBet  = NewHistory(Pass, Bet, Bet)
)

// TerminalHistories returns every history that ends the game.
func TerminalHistories() []History {
	return []History{passPass, betPass, betBet, passBetPass, passBetBet}
}

// DecisionHistories returns the public histories at which a player acts:
// player 0's opening, player 1 facing a bet, player 1 after a pass, and
// player 0 facing a bet after having passed.
func DecisionHistories() []History {
	return []History{
		{},
		NewHistory(Bet),
		NewHistory(Pass),
		NewHistory(Pass, Bet),
	}
}

// IsTerminal returns true if the game is over after the given history.
func IsTerminal(h History) bool {
	switch h {
	case passPass, betPass, betBet, passBetPass, passBetBet:
		return true
	}

	return false
}

// Payoff returns the amount won by player 0 at the end of the game.
// Player 1 receives the negation. It panics if h is not terminal.
func Payoff(h History, card0, card1 Card) float64 {
	switch h {
	case passPass:
		// Showdown with no bets.
		return showdown(1.0, card0, card1)
	case betPass:
		// Player 1 folded.
		return 1.0
	case betBet, passBetBet:
		// Showdown with 1 bet.
		return showdown(2.0, card0, card1)
	case passBetPass:
		// Player 0 folded.
		return -1.0
	}

	panic("unknown terminal history: " + h.Digits())
}

func showdown(stake float64, card0, card1 Card) float64 {
	if card0 > card1 {
		return stake
	}

	return -stake
}

// Utility returns the payoff of a terminal history for the given player.
func Utility(h History, deal Deal, player int) float64 {
	u := Payoff(h, deal.Card(player0), deal.Card(player1))
	if player == player1 {
		return -u
	}

	return u
}

// InfoSetKey identifies a decision point as observed by the acting player:
// their private card and the public history.
type InfoSetKey struct {
	Player  int
	Card    Card
	History History
}

// String implements fmt.Stringer, e.g. "P1:Q:b", or "P0:K" at the
// start of the game.
func (k InfoSetKey) String() string {
	if k.History.Len() == 0 {
		return fmt.Sprintf("P%d:%s", k.Player, k.Card)
	}

	return fmt.Sprintf("P%d:%s:%s", k.Player, k.Card, k.History)
}

// ParseHistory is the inverse of History.Digits.
func ParseHistory(digits string) (History, error) {
	if len(digits) > MaxHistoryLen {
		return History{}, errors.Errorf("history %q exceeds max length %d", digits, MaxHistoryLen)
	}

	var h History
	for _, c := range []byte(digits) {
		a := Action(c - '0')
		if c < '0' || a >= NumActions {
			return History{}, errors.Errorf("invalid action %q in history %q", c, digits)
		}

		h = h.Append(a)
	}

	return h, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h History) MarshalBinary() ([]byte, error) {
	return []byte(h.Digits()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *History) UnmarshalBinary(data []byte) error {
	parsed, err := ParseHistory(string(data))
	if err != nil {
		return err
	}

	*h = parsed
	return nil
}
