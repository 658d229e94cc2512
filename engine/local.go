package engine

import (
	"lrc/game"
	"lrc/meta"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State *game.GameState
	rng   game.Source
	dice  [meta.MAX_DICE]game.Outcome
}

var _ Runner = (*Engine)(nil)

func LocalEngine(numPlayers int, rng game.Source) *Engine {
	if rng == nil {
		panic("engine needs a random source")
	}
	return &Engine{
		State: game.NewGameState(numPlayers),
		rng:   rng,
	}
}

// Step plays the current player's turn. It returns false without playing
// when the game is already over.
func (e *Engine) Step() bool {
	if _, over := e.State.CheckGameOver(); over {
		return false
	}
	dice := e.dice[:e.State.DiceToRoll()]
	game.RollInto(e.rng, dice)
	e.State.PlayTurn(dice)
	return true
}

// Run executes the entire game loop until at most one seat holds chips.
func (e *Engine) Run() game.Result {
	for e.Step() {
	}

	if seat, _ := e.State.CheckGameOver(); seat == game.NoWinner {
		// Unreachable while chips are conserved
		log.Warn().Msgf("game over after %d turns with no chips left in play", e.State.Turns)
	}

	return e.State.Result()
}

// Play runs one fresh game with numPlayers seats.
func Play(numPlayers int, rng game.Source) game.Result {
	return LocalEngine(numPlayers, rng).Run()
}
