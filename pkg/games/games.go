// Package games registers the built-in decision domains.
package games

import (
	"github.com/akuroiwa/mcts-gen/pkg/games/chess"
	"github.com/akuroiwa/mcts-gen/pkg/games/nim"
	"github.com/akuroiwa/mcts-gen/pkg/games/tictactoe"
	"github.com/akuroiwa/mcts-gen/pkg/registry"
)

// Register adds every built-in domain to r.
func Register(r *registry.Registry) {
	r.Register(tictactoe.Name, "3x3 tic-tac-toe; args: moves ([]int cell indices already played)", tictactoe.Factory)
	r.Register(nim.Name, "single-pile nim; args: stones (int, default 10), max_take (int, default 3)", nim.Factory)
	r.Register(chess.Name, "standard chess; args: fen (string, default start position), moves ([]string UCI moves played from fen), max_plies (int, 0 = no cap)", chess.Factory)
}

// NewRegistry returns a registry holding the built-in domains.
func NewRegistry() *registry.Registry {
	r := registry.NewRegistry()
	Register(r)
	return r
}
