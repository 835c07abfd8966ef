package game

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrStrategyContract = errors.New("strategy contract violation")
)

// Strategy maps the current player's score and the opponent's score to the
// number of dice to roll this turn, between 0 and meta.MAX_ROLLS.
// Strategies must be deterministic in their inputs.
type Strategy func(score, opponentScore int) int
