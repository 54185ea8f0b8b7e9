package engine

import "time"

// Engine provides the main interface for round operations
type Engine interface {
	// Round state
	GetState() *GameState
	GetConfig() GameConfig
	Secret() int
	Outcome() Outcome
	IsGameOver() bool
	GetScore() int
	AttemptsRemaining() int

	// Rule primitives
	EvaluateGuess(guess int) Feedback
	ApplyWrongGuessPenalty()
	UseHint() (low, high int, err error)
	FinalizeOnWin() int
	FinalizeOnLossOrTimeout() int

	// Orchestration
	Submit(guess int) (Feedback, error)
	ExpireIfTimedOut() bool

	// Timing
	ElapsedSeconds() int
	TimedOut() bool
	TimeRemaining() int
}

// GameEngine implements the Engine interface for a single round
type GameEngine struct {
	state   *GameState
	config  GameConfig
	clock   Clock
	stopped bool
}

// NewEngine validates config, draws the secret from src and starts the clock
func NewEngine(config GameConfig, src Source, clock Clock) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock{}
	}

	e := &GameEngine{
		config: config,
		clock:  clock,
		state: &GameState{
			Secret:            src.Next(config.Range),
			Range:             config.Range,
			MaxAttempts:       config.MaxAttempts,
			AttemptsRemaining: config.MaxAttempts,
			Score:             config.MaxAttempts * PointsPerAttempt,
			TimedMode:         config.TimedMode,
			StartTime:         clock.Now(),
			GuessHistory:      []int{},
			Outcome:           Active,
		},
	}
	return e, nil
}

// GetState returns a copy of the current round state
func (e *GameEngine) GetState() *GameState {
	snapshot := *e.state
	snapshot.GuessHistory = append([]int(nil), e.state.GuessHistory...)
	if !e.stopped {
		snapshot.Elapsed = e.elapsed()
	}
	return &snapshot
}

// GetConfig returns the configuration the round was created with
func (e *GameEngine) GetConfig() GameConfig {
	return e.config
}

// Secret returns the number to guess
func (e *GameEngine) Secret() int {
	return e.state.Secret
}

// Outcome returns the current lifecycle state
func (e *GameEngine) Outcome() Outcome {
	return e.state.Outcome
}

// IsGameOver returns whether the round has reached a terminal outcome
func (e *GameEngine) IsGameOver() bool {
	return e.state.Outcome.IsTerminal()
}

// GetScore returns the current score
func (e *GameEngine) GetScore() int {
	return e.state.Score
}

// AttemptsRemaining returns how many wrong guesses are still allowed
func (e *GameEngine) AttemptsRemaining() int {
	return e.state.AttemptsRemaining
}

// EvaluateGuess compares guess with the secret and records it in the history.
// Score and attempts are left untouched. A finished round is not recorded.
func (e *GameEngine) EvaluateGuess(guess int) Feedback {
	if !e.IsGameOver() {
		e.state.GuessHistory = append(e.state.GuessHistory, guess)
	}

	switch {
	case guess == e.state.Secret:
		return Correct
	case guess < e.state.Secret:
		return TooLow
	default:
		return TooHigh
	}
}

// ApplyWrongGuessPenalty consumes one attempt and deducts the wrong guess
// penalty. It does nothing once the round is over.
func (e *GameEngine) ApplyWrongGuessPenalty() {
	if e.IsGameOver() {
		return
	}
	if e.state.AttemptsRemaining > 0 {
		e.state.AttemptsRemaining--
	}
	e.state.Score -= WrongGuessPenalty
}

// UseHint reveals a window of HintSpread around the secret, clamped to the
// configured range. Only one hint is allowed per round.
func (e *GameEngine) UseHint() (low, high int, err error) {
	if e.IsGameOver() {
		return 0, 0, ErrGameOver
	}
	if e.state.HintUsed {
		return 0, 0, ErrHintAlreadyUsed
	}

	e.state.HintUsed = true
	e.state.Score -= HintCost

	low, high = HintBounds(e.state.Secret, e.state.Range)
	return low, high, nil
}

// FinalizeOnWin adds the time and remaining attempt bonuses and returns the
// final score. A round is finalized once; later calls return the final score.
func (e *GameEngine) FinalizeOnWin() int {
	if e.stopped {
		return e.state.Score
	}
	e.stop()

	e.state.Score += TimeBonus(e.state.TimedMode, e.ElapsedSeconds())
	e.state.Score += e.state.AttemptsRemaining * RemainingAttemptBonus
	return e.state.Score
}

// FinalizeOnLossOrTimeout zeroes the score of a round that was not finalized yet
func (e *GameEngine) FinalizeOnLossOrTimeout() int {
	if e.stopped {
		return e.state.Score
	}
	e.stop()
	e.state.Score = 0
	return e.state.Score
}

// Submit evaluates a guess and applies the resulting state transition
func (e *GameEngine) Submit(guess int) (Feedback, error) {
	if e.IsGameOver() {
		return 0, ErrGameOver
	}

	feedback := e.EvaluateGuess(guess)
	if feedback == Correct {
		e.state.Outcome = Won
		e.FinalizeOnWin()
		return feedback, nil
	}

	e.ApplyWrongGuessPenalty()
	if e.state.AttemptsRemaining == 0 {
		e.state.Outcome = LostByAttempts
		e.FinalizeOnLossOrTimeout()
	}
	return feedback, nil
}

// ExpireIfTimedOut ends an active timed round whose deadline has passed.
// It returns true when the round transitioned to LostByTimeout.
func (e *GameEngine) ExpireIfTimedOut() bool {
	if e.IsGameOver() || !e.TimedOut() {
		return false
	}
	e.state.Outcome = LostByTimeout
	e.FinalizeOnLossOrTimeout()
	return true
}

// ElapsedSeconds returns whole seconds since the round started
func (e *GameEngine) ElapsedSeconds() int {
	return int(e.elapsed() / time.Second)
}

// TimedOut reports whether a timed round has used up its time limit
func (e *GameEngine) TimedOut() bool {
	return e.state.TimedMode && e.ElapsedSeconds() >= TimeLimitSeconds
}

// TimeRemaining returns the seconds left in a timed round, or -1 for normal rounds
func (e *GameEngine) TimeRemaining() int {
	if !e.state.TimedMode {
		return -1
	}
	return max(TimeLimitSeconds-e.ElapsedSeconds(), 0)
}

// stop freezes the elapsed time at its current value
func (e *GameEngine) stop() {
	if e.stopped {
		return
	}
	e.state.Elapsed = e.elapsed()
	e.stopped = true
}

func (e *GameEngine) elapsed() time.Duration {
	if e.stopped {
		return e.state.Elapsed
	}
	return max(e.clock.Now().Sub(e.state.StartTime), 0)
}
