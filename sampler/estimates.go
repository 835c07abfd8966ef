package sampler

import (
	"fmt"

	"hog/dice"
	"hog/engine"
	"hog/game"
	"hog/meta"
)

type turn struct {
	numRolls int
	sides    int
}

func rollTrial(set dice.Set, t turn) (float64, error) {
	score, err := game.RollDice(t.numRolls, set.Pick(t.sides))
	return float64(score), err
}

// TurnScore estimates the average score of rolling numRolls dice with the
// given number of sides.
func TurnScore(s *Sampler, numRolls, sides int) (float64, error) {
	return Averaged(s, rollTrial)(turn{numRolls: numRolls, sides: sides})
}

// MaxScoringNumRolls returns the dice count from 1 to meta.MAX_ROLLS with the
// highest average turn score. Ties go to the larger count.
func MaxScoringNumRolls(s *Sampler, sides int) (int, error) {
	best, bestAverage := 0, 0.0
	for numRolls := 1; numRolls <= meta.MAX_ROLLS; numRolls++ {
		average, err := TurnScore(s, numRolls, sides)
		if err != nil {
			return 0, fmt.Errorf("average of %d dice: %w", numRolls, err)
		}
		if average >= bestAverage {
			best, bestAverage = numRolls, average
		}
	}
	return best, nil
}

type matchup struct {
	strategy0 game.Strategy
	strategy1 game.Strategy
}

func winnerTrial(set dice.Set, m matchup) (float64, error) {
	result, err := engine.Play(m.strategy0, m.strategy1, set)
	if err != nil {
		return 0, err
	}
	return float64(result.Winner()), nil
}

// WinRate estimates the fraction of games strategy wins against baseline,
// averaged over playing first and playing second.
func WinRate(s *Sampler, strategy, baseline game.Strategy) (float64, error) {
	winner := Averaged(s, winnerTrial)

	asFirst, err := winner(matchup{strategy0: strategy, strategy1: baseline})
	if err != nil {
		return 0, fmt.Errorf("playing first: %w", err)
	}
	asSecond, err := winner(matchup{strategy0: baseline, strategy1: strategy})
	if err != nil {
		return 0, fmt.Errorf("playing second: %w", err)
	}

	// Winner is 1 when player 1 wins
	return ((1 - asFirst) + asSecond) / 2, nil
}
