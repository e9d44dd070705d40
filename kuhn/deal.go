package kuhn

import (
	"fmt"
	"math/rand"
)

// Deal is one permutation of the deck. Player 0 holds the first card,
// player 1 the second, and the third is not seen by either player.
type Deal struct {
	cards [NumCards]Card
}

// NewDeal returns the Deal in which each player holds the given card.
func NewDeal(p0Card, p1Card Card) Deal {
	if p0Card == p1Card {
		panic(fmt.Errorf("both players cannot be dealt %v", p0Card))
	}

	d := Deal{cards: [NumCards]Card{p0Card, p1Card}}
	for _, c := range Cards {
		if c != p0Card && c != p1Card {
			d.cards[2] = c
		}
	}

	return d
}

// Card returns the private card held by the given player.
func (d Deal) Card(player int) Card {
	return d.cards[player]
}

// Unseen returns the card that was not dealt to either player.
func (d Deal) Unseen() Card {
	return d.cards[2]
}

// String implements fmt.Stringer.
func (d Deal) String() string {
	return fmt.Sprintf("[Cards: P0 - %s, P1 - %s, unseen - %s]",
		d.Card(player0), d.Card(player1), d.Unseen())
}

// AllDeals returns the six equally likely deals.
func AllDeals() []Deal {
	var result []Deal
	for _, p0Card := range Cards {
		for _, p1Card := range Cards {
			if p0Card == p1Card {
				continue // Both players can't be dealt the same card.
			}

			result = append(result, NewDeal(p0Card, p1Card))
		}
	}

	return result
}

// Dealer shuffles a single deck for every new game.
type Dealer struct {
	rng  *rand.Rand
	deck [NumCards]Card
}

// NewDealer returns a Dealer that draws its randomness from rng.
func NewDealer(rng *rand.Rand) *Dealer {
	return &Dealer{
		rng:  rng,
		deck: Cards,
	}
}

// Deal shuffles the deck with Fisher-Yates and returns the result.
func (d *Dealer) Deal() Deal {
	for i := len(d.deck) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.deck[i], d.deck[j] = d.deck[j], d.deck[i]
	}

	return Deal{cards: d.deck}
}
