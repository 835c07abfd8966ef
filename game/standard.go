package game

import (
	"hog/dice"
	"hog/meta"
)

type StandardRules struct {
	GoalScore      int
	HogWildModulus int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		GoalScore:      meta.GOAL_SCORE,
		HogWildModulus: meta.HOG_WILD_MODULUS,
	}
}

func (sr *StandardRules) Goal() int {
	return sr.GoalScore
}

// SelectDice applies Hog wild: four-sided dice when the combined score is a
// multiple of the modulus, six-sided otherwise.
func (sr *StandardRules) SelectDice(score, opponentScore int) int {
	if (score+opponentScore)%sr.HogWildModulus == 0 {
		return dice.FourSided
	}
	return dice.SixSided
}

// IsSwap applies Swine swap: one score is exactly double the other.
func (sr *StandardRules) IsSwap(score0, score1 int) bool {
	return score0 == 2*score1 || score1 == 2*score0
}
