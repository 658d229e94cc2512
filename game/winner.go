package game

import "lrc/utils"

// DetermineWinner returns the seat with the largest balance. Ties go to the
// lowest seat.
func DetermineWinner(balances []int) int {
	return utils.ArgMax(balances)
}
