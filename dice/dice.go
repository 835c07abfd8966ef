package dice

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	FourSided = 4
	SixSided  = 6
)

// ErrExhausted is returned by a sequence die rolled past its last outcome.
var ErrExhausted = errors.New("exhausted sequence")

// Dice produces one face value per roll.
type Dice interface {
	Roll() (int, error)
}

type random struct {
	sides int
	rng   *rand.Rand
}

// newRandom returns a fair die with the given number of sides.
func newRandom(sides int, rng *rand.Rand) *random {
	if sides < 1 {
		panic(fmt.Sprintf("die must have at least one side, got %d", sides))
	}
	return &random{sides: sides, rng: rng}
}

func (r *random) Roll() (int, error) {
	return r.rng.Intn(r.sides) + 1, nil
}

type sequence struct {
	outcomes []int
	next     int
	wrap     bool
}

// NewSequence returns a die that replays outcomes in order and fails with
// ErrExhausted once they run out.
func NewSequence(outcomes ...int) Dice {
	return newSequence(outcomes, false)
}

// NewCycle returns a die that replays outcomes in order, starting over
// after the last one.
func NewCycle(outcomes ...int) Dice {
	return newSequence(outcomes, true)
}

func newSequence(outcomes []int, wrap bool) *sequence {
	if len(outcomes) == 0 {
		panic("test dice need at least one outcome")
	}
	for _, o := range outcomes {
		if o < 1 {
			panic(fmt.Sprintf("dice outcome must be positive, got %d", o))
		}
	}
	return &sequence{outcomes: append([]int(nil), outcomes...), wrap: wrap}
}

func (s *sequence) Roll() (int, error) {
	if s.next == len(s.outcomes) {
		if !s.wrap {
			return 0, fmt.Errorf("roll %d of %d: %w", s.next+1, len(s.outcomes), ErrExhausted)
		}
		s.next = 0
	}
	outcome := s.outcomes[s.next]
	s.next++
	return outcome, nil
}
