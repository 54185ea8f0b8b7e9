// Package mcp exposes the number guessing game as a Model Context Protocol
// server so AI agents can play it.
//
// MCP Tools:
//   - list_difficulties: Show the presets start_game accepts
//   - start_game: Start a round from a preset or a custom range
//   - guess: Submit an integer guess or "hint"
//   - game_status: Show the active round, or the last one if none is active
//   - leaderboard: Show winning scores and game totals
//   - game_instructions: Rules and scoring
//
// Only one round is active at a time, matching the terminal game. Results are
// rendered as plain text.
//
// Usage:
//
//	srv := mcp.NewServer(gameService, presets, "1.0.0")
//	if err := srv.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
package mcp
