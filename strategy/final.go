package strategy

import "hog/game"

// Tuning picks the swap margin and dice count for one situation.
type Tuning struct {
	Margin   int
	NumRolls int
}

// FinalParams holds the empirically tuned constants of Final.
type FinalParams struct {
	Modulus int // Hog wild modulus the strategy plays around
	// Lowest free bacon worth taking to hand the opponent four-sided dice;
	// four-sided dice average about 3.8 points a turn.
	MinHogWildBacon int
	OneAwayFromSwap Tuning // One point short of half the opponent's score
	HogWild         Tuning // Rolling four-sided dice this turn
	Behind          Tuning
	Ahead           Tuning // Also used when tied
}

var DefaultFinalParams = FinalParams{
	Modulus:         7,
	MinHogWildBacon: 4,
	OneAwayFromSwap: Tuning{Margin: 10, NumRolls: 10},
	HogWild:         Tuning{Margin: 4, NumRolls: 3},
	Behind:          Tuning{Margin: 9, NumRolls: 6},
	Ahead:           Tuning{Margin: 7, NumRolls: 4},
}

// Final is the composite strategy with the default tuning.
var Final = Adaptive(DefaultFinalParams)

// Adaptive returns a strategy that chooses a Swap tuning by situation:
//   - takes free bacon when it is worth enough and hands the opponent hog wild
//   - gambles on a beneficial swap when one point away from one
//   - plays small on four-sided dice
//   - plays aggressively when behind and defensively otherwise
func Adaptive(p FinalParams) game.Strategy {
	return func(score, opponentScore int) int {
		bonus := game.FreeBacon(opponentScore)

		var t Tuning
		switch {
		case (score+bonus+opponentScore)%p.Modulus == 0 && bonus >= p.MinHogWildBacon:
			return 0
		case 2*(score+1) == opponentScore:
			t = p.OneAwayFromSwap
		case (score+opponentScore)%p.Modulus == 0:
			t = p.HogWild
		case score < opponentScore:
			t = p.Behind
		default:
			t = p.Ahead
		}
		return swap(score, opponentScore, t.Margin, t.NumRolls)
	}
}
