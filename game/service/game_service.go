package service

import (
	"context"
	"time"

	"github.com/wricardo/mcp-training/guessnumber/game/engine"
	"github.com/wricardo/mcp-training/guessnumber/game/leaderboard"
)

// GameService defines all game operations available to front ends
type GameService interface {
	// Round lifecycle
	StartRound(ctx context.Context, player string, config engine.GameConfig) (*RoundInfo, error)
	Round(ctx context.Context) (*RoundInfo, error)

	// Play
	CheckDeadline(ctx context.Context) (*DeadlineStatus, error)
	Submit(ctx context.Context, input string) (*TurnResult, error)

	// Results
	Leaderboard(ctx context.Context) leaderboard.Snapshot
	BestScore(ctx context.Context, player string) (int, bool)
	History(ctx context.Context) []*RoundInfo
}

// SessionManager defines round storage operations
type SessionManager interface {
	Start(player string, config engine.GameConfig, eng engine.Engine) (*Session, error)
	Current() (*Session, error)
	Finish(id string) error
	History() []*Session
}

// Leaderboard receives the results of finished rounds
type Leaderboard interface {
	RecordScore(player string, score int)
	RecordGameOutcome(won bool)
	Snapshot() leaderboard.Snapshot
	Best(player string) (int, bool)
}

// Session represents one round played by one player
type Session struct {
	ID         string
	Player     string
	Engine     engine.Engine
	Config     engine.GameConfig
	StartedAt  time.Time
	FinishedAt time.Time
}
