package engine

import "time"

// Feedback is the result of comparing a guess with the secret
type Feedback int

const (
	Correct Feedback = iota
	TooHigh
	TooLow
)

// String returns the feedback label used in logs and adapters
func (f Feedback) String() string {
	switch f {
	case Correct:
		return "correct"
	case TooHigh:
		return "too_high"
	case TooLow:
		return "too_low"
	default:
		return "unknown"
	}
}

// Outcome represents the lifecycle state of a round
type Outcome string

const (
	Active         Outcome = "active"
	Won            Outcome = "won"
	LostByAttempts Outcome = "lost_attempts"
	LostByTimeout  Outcome = "lost_timeout"
)

// IsTerminal reports whether no further guesses are accepted
func (o Outcome) IsTerminal() bool {
	return o != Active
}

const (
	// Scoring constants
	PointsPerAttempt      = 10
	WrongGuessPenalty     = 10
	HintCost              = 20
	HintSpread            = 10
	QuickWinBonus         = 50
	TimedWinBonus         = 30
	RemainingAttemptBonus = 5

	// TimeLimitSeconds applies to timed rounds and doubles as the quick win
	// threshold for normal rounds.
	TimeLimitSeconds = 30
	TimeLimit        = TimeLimitSeconds * time.Second

	// HintKeyword is the input token that requests a hint
	HintKeyword = "hint"
)

// GameConfig holds the parameters of a single round
type GameConfig struct {
	MaxAttempts int  `json:"max_attempts" yaml:"max_attempts"`
	Range       int  `json:"range" yaml:"range"`
	TimedMode   bool `json:"timed_mode" yaml:"timed_mode"`
}

// GameState represents the complete state of a round
type GameState struct {
	Secret            int       `json:"-"`
	Range             int       `json:"range"`
	MaxAttempts       int       `json:"max_attempts"`
	AttemptsRemaining int       `json:"attempts_remaining"`
	Score             int       `json:"score"`
	HintUsed          bool      `json:"hint_used"`
	TimedMode         bool      `json:"timed_mode"`
	StartTime         time.Time `json:"start_time"`
	GuessHistory      []int     `json:"guess_history"`
	Outcome           Outcome   `json:"outcome"`

	// Elapsed is frozen when the round reaches a terminal outcome
	Elapsed time.Duration `json:"elapsed"`
}

// Clock abstracts wall-clock time so rounds can be tested deterministically
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock
type SystemClock struct{}

// Now returns the current local time
func (SystemClock) Now() time.Time {
	return time.Now()
}
