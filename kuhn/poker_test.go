package kuhn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayoff(t *testing.T) {
	testCases := []struct {
		history History
		card0   Card
		card1   Card
		want    float64
	}{
		{NewHistory(Pass, Pass), King, Jack, 1},
		{NewHistory(Pass, Pass), Jack, Queen, -1},
		{NewHistory(Bet, Pass), Jack, King, 1},
		{NewHistory(Bet, Bet), Queen, Jack, 2},
		{NewHistory(Bet, Bet), Queen, King, -2},
		{NewHistory(Pass, Bet, Pass), King, Jack, -1},
		{NewHistory(Pass, Bet, Bet), King, Queen, 2},
		{NewHistory(Pass, Bet, Bet), Jack, Queen, -2},
	}

	for _, tc := range testCases {
		got := Payoff(tc.history, tc.card0, tc.card1)
		if got != tc.want {
			t.Errorf("Payoff(%s, %v, %v) = %v, expected %v",
				tc.history, tc.card0, tc.card1, got, tc.want)
		}
	}
}

func TestUtility_ZeroSum(t *testing.T) {
	for _, h := range TerminalHistories() {
		for _, deal := range AllDeals() {
			u0 := Utility(h, deal, 0)
			u1 := Utility(h, deal, 1)
			assert.Equal(t, -u0, u1, "history %s, deal %v", h, deal)
		}
	}
}

func TestPayoff_DependsOnlyOnRank(t *testing.T) {
	higher := [][2]Card{{Queen, Jack}, {King, Jack}, {King, Queen}}
	for _, h := range TerminalHistories() {
		want := Payoff(h, higher[0][0], higher[0][1])
		wantLower := Payoff(h, higher[0][1], higher[0][0])
		for _, pair := range higher[1:] {
			assert.Equal(t, want, Payoff(h, pair[0], pair[1]), "history %s", h)
			assert.Equal(t, wantLower, Payoff(h, pair[1], pair[0]), "history %s", h)
		}
	}
}

func TestPayoff_UnknownHistory(t *testing.T) {
	nonTerminal := append(DecisionHistories(), NewHistory(Bet, Pass).Append(Bet))
	for _, h := range nonTerminal {
		assert.Panics(t, func() { Payoff(h, King, Jack) }, "history %q", h.Digits())
	}
}

func TestIsTerminal(t *testing.T) {
	var visit func(h History)
	nTerminal, nDecision := 0, 0
	visit = func(h History) {
		if IsTerminal(h) {
			nTerminal++
			return
		}

		nDecision++
		for _, a := range Actions {
			visit(h.Append(a))
		}
	}

	visit(History{})
	if nTerminal != 5 {
		t.Errorf("expected %d terminal histories, got %d", 5, nTerminal)
	}

	if nDecision != len(DecisionHistories()) {
		t.Errorf("expected %d decision histories, got %d", len(DecisionHistories()), nDecision)
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory(Pass, Bet)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 0, h.Player())
	assert.Equal(t, "pb", h.String())
	assert.Equal(t, "01", h.Digits())
	assert.Equal(t, Bet, h.Get(1))
	assert.Equal(t, NewHistory(Pass, Bet), h, "histories must be comparable by value")

	full := h.Append(Pass)
	assert.Equal(t, 1, full.Player())
	assert.Equal(t, 2, h.Len(), "Append must not modify the receiver")
	assert.Panics(t, func() { full.Append(Bet) })
	assert.Panics(t, func() { h.Get(2) })
}

func TestInfoSetKey_String(t *testing.T) {
	assert.Equal(t, "P0:K", InfoSetKey{Player: 0, Card: King}.String())
	assert.Equal(t, "P0:J:pb", InfoSetKey{
		Player:  0,
		Card:    Jack,
		History: NewHistory(Pass, Bet),
	}.String())
	assert.Equal(t, "P1:Q:b", InfoSetKey{
		Player:  1,
		Card:    Queen,
		History: NewHistory(Bet),
	}.String())
}

func TestParseHistory(t *testing.T) {
	for _, h := range append(DecisionHistories(), TerminalHistories()...) {
		parsed, err := ParseHistory(h.Digits())
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, h, parsed)
	}

	for _, invalid := range []string{"2", "0a", "0101"} {
		_, err := ParseHistory(invalid)
		assert.Error(t, err, "history %q", invalid)
	}
}
