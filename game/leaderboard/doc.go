// Package leaderboard keeps the scores of every player for the lifetime of the
// process together with the aggregate games played / games won counters.
//
// A Store is constructed once by the program entry point and injected into
// whatever finishes rounds, so tests can build isolated stores per case.
// Nothing is persisted; a restart starts from an empty board.
package leaderboard
