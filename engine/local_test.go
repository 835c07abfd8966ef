package engine

import (
	"testing"

	"hog/dice"
	"hog/game"
	"hog/meta"

	"github.com/stretchr/testify/require"
)

func always(n int) game.Strategy {
	return func(score, opponentScore int) int { return n }
}

func newEngine(s0, s1 game.Strategy) *Engine {
	return LocalEngine([]game.Strategy{s0, s1}, game.NewStandardRules())
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without exactly two players", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine([]game.Strategy{always(1)}, game.NewStandardRules())
		})
	})

	t.Run("starts at zero with player 0", func(t *testing.T) {
		e := newEngine(always(1), always(1))
		require.Equal(t, [2]int{0, 0}, e.Scores)
		require.Equal(t, 0, e.Player)
		require.False(t, e.Over())
	})
}

func TestEngineTurn(t *testing.T) {
	t.Run("swaps once when a score doubles the other", func(t *testing.T) {
		e := newEngine(always(1), always(1))
		e.Scores = [2]int{10, 14}
		e.Player = 1

		err := e.Turn(dice.Uniform(dice.NewSequence(6)))

		require.NoError(t, err)
		require.Equal(t, [2]int{20, 10}, e.Scores, "10 to 20 should swap to 20 to 10")
		require.Equal(t, 0, e.Player, "Play should pass to the other player")
	})

	t.Run("leaves scores alone otherwise", func(t *testing.T) {
		e := newEngine(always(1), always(1))
		e.Scores = [2]int{10, 15}
		e.Player = 1

		err := e.Turn(dice.Uniform(dice.NewSequence(6)))

		require.NoError(t, err)
		require.Equal(t, [2]int{10, 21}, e.Scores)
	})

	t.Run("zero dice scores free bacon", func(t *testing.T) {
		e := newEngine(always(0), always(0))
		set := dice.Uniform(dice.NewSequence(6))

		require.NoError(t, e.Turn(set))
		require.Equal(t, [2]int{1, 0}, e.Scores, "Bacon against 0 is 1")

		require.NoError(t, e.Turn(set))
		require.Equal(t, [2]int{2, 1}, e.Scores, "Bacon against 1 is 2, then 1 to 2 swaps")
	})

	t.Run("hog wild picks dice from pre-turn scores", func(t *testing.T) {
		e := newEngine(always(1), always(1))
		set := dice.Set{FourSided: dice.NewSequence(4), SixSided: dice.NewSequence(6)}

		require.NoError(t, e.Turn(set), "0 to 0 is a multiple of 7")
		require.Equal(t, [2]int{4, 0}, e.Scores)

		require.NoError(t, e.Turn(set), "4 to 0 is not a multiple of 7")
		require.Equal(t, [2]int{4, 6}, e.Scores)
	})

	t.Run("rejects out of range strategies", func(t *testing.T) {
		for _, n := range []int{-1, meta.MAX_ROLLS + 1} {
			e := newEngine(always(n), always(1))
			err := e.Turn(dice.Uniform(dice.NewCycle(6)))
			require.ErrorIs(t, err, game.ErrStrategyContract, "%d dice", n)
			require.Equal(t, [2]int{0, 0}, e.Scores, "Scores should not change")
		}
	})

	t.Run("surfaces exhausted dice", func(t *testing.T) {
		e := newEngine(always(3), always(1))
		err := e.Turn(dice.Uniform(dice.NewSequence(6, 6)))
		require.ErrorIs(t, err, dice.ErrExhausted)
	})
}

func TestEngineRun(t *testing.T) {
	t.Run("terminates for every dice count", func(t *testing.T) {
		for n0 := 0; n0 <= meta.MAX_ROLLS; n0++ {
			for n1 := 0; n1 <= meta.MAX_ROLLS; n1++ {
				e := newEngine(always(n0), always(n1))
				got, err := e.Run(dice.NewRandomSet(uint64(n0*100 + n1)))

				require.NoError(t, err)
				require.Less(t, got.Turns, meta.MAX_TURNS)
				require.True(t, got.Score0 >= 100 || got.Score1 >= 100,
					"%d vs %d ended at %d to %d", n0, n1, got.Score0, got.Score1)
			}
		}
	})

	t.Run("scores stay below the goal until the last turn", func(t *testing.T) {
		e := newEngine(always(4), always(6))
		set := dice.NewRandomSet(11)
		for !e.Over() {
			require.Less(t, e.Scores[0], 100)
			require.Less(t, e.Scores[1], 100)
			require.NoError(t, e.Turn(set))
		}
	})

	t.Run("stops at the turn limit", func(t *testing.T) {
		e := newEngine(always(1), always(1))
		e.Turns = meta.MAX_TURNS

		_, err := e.Run(dice.NewRandomSet(1))
		require.ErrorIs(t, err, ErrTurnLimit)
	})

	t.Run("stops on a contract violation", func(t *testing.T) {
		_, err := Play(always(5), always(42), dice.NewRandomSet(1))
		require.ErrorIs(t, err, game.ErrStrategyContract)
	})

	t.Run("replays with the same seed", func(t *testing.T) {
		r1, err := Play(always(5), always(7), dice.NewRandomSet(99))
		require.NoError(t, err)
		r2, err := Play(always(5), always(7), dice.NewRandomSet(99))
		require.NoError(t, err)
		require.Equal(t, r1, r2)
	})
}

func TestResultWinner(t *testing.T) {
	require.Equal(t, 0, Result{Score0: 101, Score1: 40}.Winner())
	require.Equal(t, 1, Result{Score0: 40, Score1: 101}.Winner())
	require.Equal(t, 1, Result{Score0: 100, Score1: 100}.Winner(), "Ties go to player 1")
}
