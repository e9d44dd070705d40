package cfr

import (
	"github.com/pkg/errors"
)

// Params are the configuration options for a Trainer.
type Params struct {
	// Number of deal + traversal iterations to run.
	Iterations int
	// Seed for the random source used to shuffle the deck.
	Seed int64
}

// DefaultParams returns the Params used when none are configured.
func DefaultParams() Params {
	return Params{
		Iterations: 100000,
		Seed:       42,
	}
}

// Validate returns an error if the Params cannot be used for training.
func (p Params) Validate() error {
	if p.Iterations <= 0 {
		return errors.Errorf("iterations must be positive, got %d", p.Iterations)
	}

	return nil
}
