// Package service provides the library API of the number guessing game.
//
// The service package implements:
//   - Round creation with a fresh random source per round
//   - Input handling (guesses, hint requests, malformed input)
//   - The coarse once-per-input time limit check
//   - Recording finished rounds into the leaderboard exactly once
//
// Core Interfaces:
//
// GameService is the API every front end drives (the terminal driver, the MCP
// adapter and the autoplayer). SessionManager stores the active round and the
// log of finished ones. Leaderboard receives the results.
//
// Usage:
//
//	board := leaderboard.NewStore()
//	svc := service.NewGameService(session.NewManager(), board,
//		service.WithLogger(logger))
//
//	round, err := svc.StartRound(ctx, "Ada", engine.GameConfig{MaxAttempts: 10, Range: 100})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := svc.Submit(ctx, "50")
//
// Rounds:
//
// Only one round is active at a time; starting another before the current one
// reaches a terminal outcome fails. A round ends on a correct guess, when the
// attempts run out, or when a timed round is found past its deadline at the
// next input.
package service
