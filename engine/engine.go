package engine

import "lrc/game"

type Runner interface {
	// Run plays a game until at most one seat holds chips
	Run() game.Result
}
