// meta/meta.go
package meta

// NUM_GAMES defines the number of games simulated per player count.
const NUM_GAMES = 1000000

// MIN_PLAYERS defines the smallest player count simulated.
const MIN_PLAYERS = 2

// MAX_PLAYERS defines the exclusive upper bound on player counts.
const MAX_PLAYERS = 21

// ROUNDING_DIGITS defines the decimal places used in reports.
const ROUNDING_DIGITS = 6

// CHIPS_PER_PLAYER defines the starting balance of every seat.
const CHIPS_PER_PLAYER = 3

// MAX_DICE defines the most dice a player rolls in one turn.
const MAX_DICE = 3
