package game

import (
	"lrc/meta"
	"lrc/utils"
)

// GameState is the mutable state of one Left Right Center game.
type GameState struct {
	Balances      []int // Chips per seat, indexed by seat
	Center        int   // Chips removed from play
	CurrentPlayer int   // Seat about to roll
	Turns         int
}

// NewGameState seats numPlayers players with three chips each.
func NewGameState(numPlayers int) *GameState {
	if numPlayers < meta.MIN_PLAYERS {
		panic("need at least two players")
	}
	balances := make([]int, numPlayers)
	for i := range balances {
		balances[i] = meta.CHIPS_PER_PLAYER
	}
	return &GameState{Balances: balances}
}

func (gs *GameState) NumPlayers() int {
	return len(gs.Balances)
}

// Copy returns a deep copy of the state.
func (gs *GameState) Copy() *GameState {
	balances := make([]int, len(gs.Balances))
	copy(balances, gs.Balances)
	return &GameState{
		Balances:      balances,
		Center:        gs.Center,
		CurrentPlayer: gs.CurrentPlayer,
		Turns:         gs.Turns,
	}
}

// DiceToRoll is the number of dice the current player rolls.
func (gs *GameState) DiceToRoll() int {
	return min(meta.MAX_DICE, gs.Balances[gs.CurrentPlayer])
}

// Left is the seat counter-clockwise of seat.
func (gs *GameState) Left(seat int) int {
	n := gs.NumPlayers()
	return (seat - 1 + n) % n
}

// Right is the seat clockwise of seat.
func (gs *GameState) Right(seat int) int {
	return (seat + 1) % gs.NumPlayers()
}

// PlayTurn applies the current player's dice, then passes the dice clockwise.
func (gs *GameState) PlayTurn(outcomes []Outcome) {
	player := gs.CurrentPlayer
	for _, outcome := range outcomes {
		switch outcome {
		case Center:
			gs.Balances[player]--
			gs.Center++
		case Left:
			gs.Balances[player]--
			gs.Balances[gs.Left(player)]++
		case Right:
			gs.Balances[player]--
			gs.Balances[gs.Right(player)]++
		}
	}
	gs.Turns++
	gs.CurrentPlayer = gs.Right(player)
}

// CheckGameOver reports whether at most one seat still holds chips. When the
// game is over, seat is the only seat with chips, or NoWinner if none has any.
func (gs *GameState) CheckGameOver() (seat int, over bool) {
	seat = NoWinner
	for i, balance := range gs.Balances {
		if balance <= 0 {
			continue
		}
		if seat != NoWinner {
			return NoWinner, false
		}
		seat = i
	}
	return seat, true
}

// ChipsInPlay is the sum of all seat balances.
func (gs *GameState) ChipsInPlay() int {
	return utils.Sum(gs.Balances)
}

// Result snapshots the state as a game result.
func (gs *GameState) Result() Result {
	final := gs.Copy()
	return Result{
		Balances: final.Balances,
		Turns:    final.Turns,
		Center:   final.Center,
	}
}
