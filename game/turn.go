package game

import (
	"fmt"

	"hog/dice"
	"hog/meta"
	"hog/utils"
)

// RollDice rolls d numRolls times and returns the sum of the outcomes, or 1
// if any outcome was a 1 (Pig out). All numRolls dice are rolled either way.
func RollDice(numRolls int, d dice.Dice) (int, error) {
	if numRolls < 1 {
		return 0, fmt.Errorf("roll %d dice: %w", numRolls, ErrInvalidArgument)
	}

	sum, pigOut := 0, false
	for i := 0; i < numRolls; i++ {
		outcome, err := d.Roll()
		if err != nil {
			return 0, fmt.Errorf("roll %d of %d: %w", i+1, numRolls, err)
		}
		if outcome == 1 {
			pigOut = true
		}
		sum += outcome
	}

	if pigOut {
		return 1, nil
	}
	return sum, nil
}

// FreeBacon returns the points for rolling zero dice: one more than the
// absolute difference between the tens and ones digits of opponentScore.
func FreeBacon(opponentScore int) int {
	return utils.Abs(opponentScore/10-opponentScore%10) + 1
}

// TakeTurn scores a turn of numRolls dice against opponentScore.
func TakeTurn(numRolls, opponentScore int, d dice.Dice) (int, error) {
	if numRolls < 0 || numRolls > meta.MAX_ROLLS {
		return 0, fmt.Errorf("take turn with %d dice: %w", numRolls, ErrInvalidArgument)
	}
	if numRolls == 0 {
		return FreeBacon(opponentScore), nil
	}
	return RollDice(numRolls, d)
}
