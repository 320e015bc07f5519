/*
Package mctsgen runs Monte Carlo Tree Search over pluggable decision domains
as long-lived sessions that a caller, typically an AI agent, drives one round
at a time.

# Concept

A session owns one search tree. The caller reinitializes it from a named
domain, then repeatedly asks for a single round and reads back an
improvement code that says whether the best line got better, stayed the
same or got worse. When the code stays low the caller asks for the best move.
Nothing about the tree is persisted; an optional journal keeps the round
history of each session.

# Key Features

  - Incremental search: one selection, expansion, simulation and backpropagation cycle per call.
  - Policy pruning: a round may restrict expansion to a caller-chosen set of actions.
  - Deterministic replays: rollouts use a seedable random source.
  - Pluggable domains: anything satisfying domain.State can be registered by name.
  - Transports: MCP (stdio or SSE), an HTTP JSON API and a CLI share one service layer.

# Usage

	sim := mctsgen.New()
	ctx := context.Background()

	sim.Service.Reinitialize(ctx, service.ReinitializeRequest{Domain: "tictactoe"})
	for i := 0; i < 50; i++ {
		resp := sim.Service.RunRound(ctx, service.RoundRequest{})
		if resp.Error != nil {
			log.Fatal(resp.Error.Message)
		}
	}
	fmt.Println(sim.Service.BestMove("").BestMove)
*/
package mctsgen
