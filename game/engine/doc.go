// Package engine provides the core rules of the number guessing game.
//
// The engine package implements:
//   - Secret selection from an injectable random Source
//   - Guess evaluation (too high / too low / correct)
//   - Attempt and score bookkeeping, including the one-time hint
//   - Win bonuses and the optional 30 second time limit
//   - Parsing of raw player input into guesses or hint requests
//
// Core Types:
//
// GameEngine owns the mutable state of exactly one round. GameState is the
// snapshot of that round, while GameConfig holds the parameters chosen before
// the round starts (attempt budget, upper bound of the range, timed mode).
//
// Usage:
//
//	eng, err := engine.NewEngine(engine.GameConfig{MaxAttempts: 10, Range: 100},
//		engine.NewRandomSource(), engine.SystemClock{})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	feedback, err := eng.Submit(42)
//	state := eng.GetState()
//
// Game Rules:
//
// A round starts with MaxAttempts*10 points. Every wrong guess costs one
// attempt and 10 points, the hint costs 20 points. A win adds a time bonus
// (50 points for a normal round finished within 30 seconds, 30 points for a
// timed round finished in under 30 seconds) plus 5 points per unused attempt.
// Running out of attempts or time ends the round with a score of 0.
//
// The time limit is checked when input arrives, not by a timer. A guess
// that arrives after the deadline ends the round and is not evaluated.
package engine
