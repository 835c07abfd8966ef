package engine

import (
	"fmt"

	"hog/dice"
	"hog/game"
	"hog/meta"

	"github.com/rs/zerolog"
)

type Option func(e *Engine)

// WithLogger traces every turn at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

type Engine struct {
	Strategies []game.Strategy
	Rules      game.Rules
	Scores     [2]int
	Player     int // Index of the player about to move
	Turns      int
	logger     zerolog.Logger
}

func LocalEngine(strategies []game.Strategy, rules game.Rules, options ...Option) *Engine {
	if len(strategies) != 2 {
		panic("hog is played by exactly two players")
	}
	e := &Engine{
		Strategies: strategies,
		Rules:      rules,
		logger:     zerolog.Nop(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func other(player int) int {
	return 1 - player
}

// Over reports whether either player has reached the goal.
func (e *Engine) Over() bool {
	goal := e.Rules.Goal()
	return e.Scores[0] >= goal || e.Scores[1] >= goal
}

// Turn plays a single turn for the current player and passes play on.
func (e *Engine) Turn(set dice.Set) error {
	player := e.Player
	score, opponentScore := e.Scores[player], e.Scores[other(player)]

	numRolls := e.Strategies[player](score, opponentScore)
	if numRolls < 0 || numRolls > meta.MAX_ROLLS {
		return fmt.Errorf("player %d chose %d dice at %d to %d: %w",
			player, numRolls, score, opponentScore, game.ErrStrategyContract)
	}

	sides := e.Rules.SelectDice(score, opponentScore)
	gained, err := game.TakeTurn(numRolls, opponentScore, set.Pick(sides))
	if err != nil {
		return fmt.Errorf("turn %d for player %d: %w", e.Turns+1, player, err)
	}
	e.Scores[player] += gained

	// Applied once; the swapped scores are still a double and stay put
	swapped := e.Rules.IsSwap(e.Scores[0], e.Scores[1])
	if swapped {
		e.Scores[0], e.Scores[1] = e.Scores[1], e.Scores[0]
	}

	e.Turns++
	e.logger.Debug().
		Int("turn", e.Turns).
		Int("player", player).
		Int("dice", numRolls).
		Int("sides", sides).
		Int("gained", gained).
		Bool("swapped", swapped).
		Ints("scores", e.Scores[:]).
		Msg("turn played")

	e.Player = other(player)
	return nil
}

// Run plays turns until a player reaches the goal.
func (e *Engine) Run(set dice.Set) (Result, error) {
	for !e.Over() {
		if e.Turns >= meta.MAX_TURNS {
			return e.result(), fmt.Errorf("after %d turns at %d to %d: %w",
				e.Turns, e.Scores[0], e.Scores[1], ErrTurnLimit)
		}
		if err := e.Turn(set); err != nil {
			return e.result(), err
		}
	}

	e.logger.Debug().Ints("scores", e.Scores[:]).Int("turns", e.Turns).Msg("game over")
	return e.result(), nil
}

func (e *Engine) result() Result {
	return Result{Score0: e.Scores[0], Score1: e.Scores[1], Turns: e.Turns}
}
