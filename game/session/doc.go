// Package session provides round bookkeeping for the number guessing game.
//
// The session package implements:
//   - Storage of the single active round
//   - Unique round IDs (UUIDs)
//   - A log of finished rounds for the current process
//   - Concurrent access control
//
// Core Types:
//
// Manager implements service.SessionManager. A service.Session couples the
// player name and round configuration with the engine that owns the round's
// state.
//
// Concurrency:
//
// The game is single player and plays one round at a time, so Start refuses
// to open a second round while one is active. Internal locking only guards
// against front ends whose libraries dispatch requests on their own
// goroutines.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Start("Ada", cfg, eng)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// ... play ...
//	err = manager.Finish(sess.ID)
//	rounds := manager.History()
package session
