package dice

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Set holds the dice available to a single game or turn.
type Set struct {
	FourSided Dice
	SixSided  Dice
}

// NewRandomSet returns fair four- and six-sided dice drawing from one
// generator seeded with seed.
func NewRandomSet(seed uint64) Set {
	rng := rand.New(rand.NewSource(seed))
	return Set{
		FourSided: newRandom(FourSided, rng),
		SixSided:  newRandom(SixSided, rng),
	}
}

// Uniform returns a set that uses d whatever the number of sides asked for.
func Uniform(d Dice) Set {
	return Set{FourSided: d, SixSided: d}
}

// Pick returns the die with the given number of sides.
func (s Set) Pick(sides int) Dice {
	switch sides {
	case FourSided:
		return s.FourSided
	case SixSided:
		return s.SixSided
	default:
		panic(fmt.Sprintf("no %d-sided die in set", sides))
	}
}
