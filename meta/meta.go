// meta/meta.go
package meta

// NUM_SYMBOLS is the size of the move domain.
const NUM_SYMBOLS = 5

// WINNING_SCORE is the default number of round wins needed to take a match.
const WINNING_SCORE = 5

// POOL_SIZE is the number of tickets a weight vector is discretized into before sampling.
const POOL_SIZE = 100

// MAX_ROUNDS caps a simulated match so deterministic opponents cannot tie forever.
const MAX_ROUNDS = 1000
