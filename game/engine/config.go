package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Upper bounds that keep score and hint arithmetic within int
const (
	MaxAttemptsLimit = (math.MaxInt - max(QuickWinBonus, TimedWinBonus)) / (PointsPerAttempt + RemainingAttemptBonus)
	MaxRangeLimit    = math.MaxInt - HintSpread
)

var (
	ErrInvalidConfig      = errors.New("invalid game configuration")
	ErrInvalidGuessFormat = errors.New("invalid guess format")
	ErrHintAlreadyUsed    = errors.New("hint already used")
	ErrGameOver           = errors.New("game is over")
)

// ValidateGameConfig checks that a round can be played with config
func ValidateGameConfig(config GameConfig) error {
	if config.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max_attempts must be positive, got %d", ErrInvalidConfig, config.MaxAttempts)
	}
	if config.MaxAttempts > MaxAttemptsLimit {
		return fmt.Errorf("%w: max_attempts must be at most %d, got %d", ErrInvalidConfig, MaxAttemptsLimit, config.MaxAttempts)
	}
	if config.Range <= 0 {
		return fmt.Errorf("%w: range must be positive, got %d", ErrInvalidConfig, config.Range)
	}
	if config.Range > MaxRangeLimit {
		return fmt.Errorf("%w: range must be at most %d, got %d", ErrInvalidConfig, MaxRangeLimit, config.Range)
	}
	return nil
}

// InputKind distinguishes the two accepted forms of player input
type InputKind int

const (
	GuessInput InputKind = iota
	HintInput
)

// Input is a parsed line of player input
type Input struct {
	Kind  InputKind
	Guess int
}

// ParseInput turns a raw line into a guess or a hint request. Surrounding
// whitespace and case are ignored.
func ParseInput(raw string) (Input, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == HintKeyword {
		return Input{Kind: HintInput}, nil
	}

	guess, err := strconv.Atoi(token)
	if err != nil {
		return Input{}, fmt.Errorf("%w: %q", ErrInvalidGuessFormat, raw)
	}
	return Input{Kind: GuessInput, Guess: guess}, nil
}
