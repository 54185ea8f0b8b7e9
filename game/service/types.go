package service

import (
	"time"

	"github.com/wricardo/mcp-training/guessnumber/game/engine"
)

// RoundInfo provides information about a round
type RoundInfo struct {
	ID            string            `json:"id"`
	Player        string            `json:"player"`
	Config        engine.GameConfig `json:"config"`
	State         *engine.GameState `json:"state"`
	StartedAt     time.Time         `json:"started_at"`
	FinishedAt    time.Time         `json:"finished_at,omitzero"`
	TimeRemaining int               `json:"time_remaining"` // -1 for rounds without a time limit

	// Secret is only revealed once the round is over
	Secret int `json:"secret,omitempty"`
}

// TurnKind tells what a submitted input did
type TurnKind string

const (
	TurnGuess   TurnKind = "guess"
	TurnHint    TurnKind = "hint"
	TurnTimeout TurnKind = "timeout"
)

// TurnResult contains the outcome of one accepted input
type TurnResult struct {
	Kind     TurnKind        `json:"kind"`
	Guess    int             `json:"guess,omitempty"`
	Feedback engine.Feedback `json:"-"`

	// Hint window, set for TurnHint
	HintLow  int `json:"hint_low,omitempty"`
	HintHigh int `json:"hint_high,omitempty"`

	AttemptsRemaining int            `json:"attempts_remaining"`
	Score             int            `json:"score"`
	TimeRemaining     int            `json:"time_remaining"`
	Outcome           engine.Outcome `json:"outcome"`
	GuessHistory      []int          `json:"guess_history"`

	// Set once the round reached a terminal outcome
	Finished       bool `json:"finished"`
	Secret         int  `json:"secret,omitempty"`
	ElapsedSeconds int  `json:"elapsed_seconds"`
}

// DeadlineStatus reports the time limit state of the active round
type DeadlineStatus struct {
	TimedMode     bool `json:"timed_mode"`
	TimeRemaining int  `json:"time_remaining"`
	Expired       bool `json:"expired"`

	// Result describes the timeout when Expired is set
	Result *TurnResult `json:"result,omitempty"`
}
