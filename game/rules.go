package game

type Rules interface {
	// Goal is the score that ends the game once either player reaches it
	Goal() int
	// SelectDice returns the number of sides of the dice used this turn
	SelectDice(score, opponentScore int) int
	// IsSwap reports whether the scores trade places after a turn
	IsSwap(score0, score1 int) bool
}
