package strategy

import (
	"hog/game"
)

// AlwaysRoll returns a strategy that always rolls n dice.
func AlwaysRoll(n int) game.Strategy {
	return func(score, opponentScore int) int {
		return n
	}
}

// Bacon returns a strategy that rolls 0 dice when free bacon is worth at
// least margin points, and numRolls dice otherwise.
func Bacon(margin, numRolls int) game.Strategy {
	return func(score, opponentScore int) int {
		return bacon(score, opponentScore, margin, numRolls)
	}
}

func bacon(score, opponentScore, margin, numRolls int) int {
	if game.FreeBacon(opponentScore) >= margin {
		return 0
	}
	return numRolls
}

// Swap returns a strategy that rolls 0 dice when free bacon would cause a
// beneficial swine swap and numRolls when it would cause a harmful one.
// Any other position falls back to Bacon.
func Swap(margin, numRolls int) game.Strategy {
	return func(score, opponentScore int) int {
		return swap(score, opponentScore, margin, numRolls)
	}
}

func swap(score, opponentScore, margin, numRolls int) int {
	after := score + game.FreeBacon(opponentScore)
	switch {
	case opponentScore == 2*after:
		return 0
	case after == 2*opponentScore:
		return numRolls
	default:
		return bacon(score, opponentScore, margin, numRolls)
	}
}

var (
	BaconDefault = Bacon(8, 5)
	SwapDefault  = Swap(8, 5)
)
