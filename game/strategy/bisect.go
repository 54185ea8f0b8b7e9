package strategy

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/wricardo/mcp-training/guessnumber/game/engine"
	"github.com/wricardo/mcp-training/guessnumber/game/service"
)

// ErrInconsistentFeedback is returned when feedback leaves no candidate
var ErrInconsistentFeedback = errors.New("feedback contradicts earlier answers")

// Bisect narrows [low, high] from guess feedback
type Bisect struct {
	low   int
	high  int
	upper int
}

// NewBisect creates a strategy for secrets in [1, upper]
func NewBisect(upper int) *Bisect {
	b := &Bisect{upper: upper}
	b.Reset()
	return b
}

// Reset restores the full interval for a new round
func (b *Bisect) Reset() {
	b.low, b.high = 1, b.upper
}

// NextGuess returns the midpoint of the remaining interval
func (b *Bisect) NextGuess() (int, error) {
	if b.low > b.high {
		return 0, ErrInconsistentFeedback
	}
	return b.low + (b.high-b.low)/2, nil
}

// Observe shrinks the interval using the feedback for guess
func (b *Bisect) Observe(guess int, feedback engine.Feedback) {
	switch feedback {
	case engine.TooLow:
		b.low = max(b.low, guess+1)
	case engine.TooHigh:
		b.high = min(b.high, guess-1)
	case engine.Correct:
		b.low, b.high = guess, guess
	}
}

// Remaining returns how many candidates are still possible
func (b *Bisect) Remaining() int {
	return max(b.high-b.low+1, 0)
}

// AttemptsNeeded returns the worst case number of guesses bisection needs
// for a range of upper values: ceil(log2(upper+1)).
func AttemptsNeeded(upper int) int {
	if upper <= 0 {
		return 0
	}
	return bits.Len(uint(upper))
}

// Report summarizes one automatically played round
type Report struct {
	RoundID string         `json:"round_id"`
	Player  string         `json:"player"`
	Guesses []int          `json:"guesses"`
	Outcome engine.Outcome `json:"outcome"`
	Score   int            `json:"score"`
	Secret  int            `json:"secret"`
}

// Play starts a round for player and bisects until it ends. Debug output goes
// to the logger carried by ctx, if any.
func Play(ctx context.Context, svc service.GameService, player string, cfg engine.GameConfig) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	round, err := svc.StartRound(ctx, player, cfg)
	if err != nil {
		return nil, err
	}

	report := &Report{RoundID: round.ID, Player: round.Player, Outcome: engine.Active}
	b := NewBisect(cfg.Range)

	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		guess, err := b.NextGuess()
		if err != nil {
			return report, fmt.Errorf("round %s: %w", round.ID, err)
		}

		result, err := svc.Submit(ctx, strconv.Itoa(guess))
		if err != nil {
			return report, fmt.Errorf("round %s: failed to submit %d: %w", round.ID, guess, err)
		}
		if result.Kind == service.TurnGuess {
			report.Guesses = append(report.Guesses, guess)
			b.Observe(guess, result.Feedback)
		}

		logger.Debug().
			Str("round_id", round.ID).
			Int("guess", guess).
			Stringer("feedback", result.Feedback).
			Int("remaining_candidates", b.Remaining()).
			Msg("autoplay guess")

		if result.Finished {
			report.Outcome = result.Outcome
			report.Score = result.Score
			report.Secret = result.Secret
			return report, nil
		}
	}
}
