package game

// NoWinner is reported by CheckGameOver when no seat holds any chips.
const NoWinner = -1

// Source is the random source dice are drawn from. Intn returns a value in [0, n).
type Source interface {
	Intn(n int) int
}

// Result is the outcome of one complete game.
type Result struct {
	Balances []int
	Turns    int
	Center   int
}

// Winner returns the seat holding the most chips at the end of the game.
func (r Result) Winner() int {
	return DetermineWinner(r.Balances)
}
