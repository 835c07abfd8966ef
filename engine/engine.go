package engine

import (
	"errors"

	"hog/dice"
	"hog/game"
)

var ErrTurnLimit = errors.New("turn limit reached")

// Result holds the final scores of a match.
type Result struct {
	Score0 int
	Score1 int
	Turns  int
}

// Winner returns 0 if player 0 finished ahead and 1 otherwise.
func (r Result) Winner() int {
	if r.Score0 > r.Score1 {
		return 0
	}
	return 1
}

// Play runs a match between strategy0 and strategy1 under the standard rules.
func Play(strategy0, strategy1 game.Strategy, set dice.Set) (Result, error) {
	e := LocalEngine([]game.Strategy{strategy0, strategy1}, game.NewStandardRules())
	return e.Run(set)
}
