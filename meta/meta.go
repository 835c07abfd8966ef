// meta/meta.go
package meta

// GOAL_SCORE defines the score a player must reach to win.
const GOAL_SCORE = 100

// MAX_ROLLS defines the most dice a player may roll in a turn.
const MAX_ROLLS = 10

// HOG_WILD_MODULUS switches play to four-sided dice when the combined score is a multiple of it.
const HOG_WILD_MODULUS = 7

// SAMPLES defines the number of trials averaged per estimate.
const SAMPLES = 30000

// MAX_TURNS bounds a single match. The combined score grows every turn,
// so a contract-abiding match never gets close.
const MAX_TURNS = 10000
