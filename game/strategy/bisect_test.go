package strategy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/mcp-training/guessnumber/game/engine"
	"github.com/wricardo/mcp-training/guessnumber/game/leaderboard"
	"github.com/wricardo/mcp-training/guessnumber/game/service"
	"github.com/wricardo/mcp-training/guessnumber/game/session"
)

type frozenClock struct{}

func (frozenClock) Now() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

func newService(secret int) (service.GameService, *leaderboard.Store) {
	board := leaderboard.NewStore()
	svc := service.NewGameService(session.NewManager(), board,
		service.WithClock(frozenClock{}),
		service.WithSourceFactory(func(int) engine.Source { return engine.FixedSource(secret) }),
	)
	return svc, board
}

func TestAttemptsNeeded(t *testing.T) {
	tests := []struct {
		upper int
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{50, 6},
		{100, 7},
		{127, 7},
		{128, 8},
		{200, 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AttemptsNeeded(tt.upper), "upper %d", tt.upper)
	}
}

func TestBisect_Narrowing(t *testing.T) {
	b := NewBisect(100)

	guess, err := b.NextGuess()
	require.NoError(t, err)
	assert.Equal(t, 50, guess)

	b.Observe(50, engine.TooLow)
	guess, _ = b.NextGuess()
	assert.Equal(t, 75, guess)
	assert.Equal(t, 50, b.Remaining())

	b.Observe(75, engine.TooHigh)
	guess, _ = b.NextGuess()
	assert.Equal(t, 62, guess)

	b.Reset()
	assert.Equal(t, 100, b.Remaining())
}

func TestBisect_InconsistentFeedback(t *testing.T) {
	b := NewBisect(10)
	b.Observe(5, engine.TooLow)
	b.Observe(6, engine.TooHigh)

	_, err := b.NextGuess()
	assert.ErrorIs(t, err, ErrInconsistentFeedback)
	assert.Zero(t, b.Remaining())
}

func TestPlay_AlwaysWinsWithEnoughAttempts(t *testing.T) {
	for _, upper := range []int{1, 2, 7, 50, 100, 200} {
		attempts := AttemptsNeeded(upper)
		for secret := 1; secret <= upper; secret++ {
			svc, _ := newService(secret)
			report, err := Play(context.Background(), svc, "bot", engine.GameConfig{MaxAttempts: attempts, Range: upper})
			require.NoError(t, err)
			require.Equal(t, engine.Won, report.Outcome, "range %d secret %d guesses %v", upper, secret, report.Guesses)
			require.Equal(t, secret, report.Secret)
			require.LessOrEqual(t, len(report.Guesses), attempts)
		}
	}
}

func TestPlay_Report(t *testing.T) {
	svc, board := newService(57)
	report, err := Play(context.Background(), svc, "bot", engine.GameConfig{MaxAttempts: 10, Range: 100})
	require.NoError(t, err)

	assert.Equal(t, []int{50, 75, 62, 56, 59, 57}, report.Guesses)
	assert.Equal(t, engine.Won, report.Outcome)
	// 100 - 5*10 + 50 + 5*5
	assert.Equal(t, 125, report.Score)
	assert.NotEmpty(t, report.RoundID)
	assert.Equal(t, []int{125}, board.Scores("bot"))
}

func TestPlay_TooFewAttempts(t *testing.T) {
	svc, board := newService(1)
	report, err := Play(context.Background(), svc, "bot", engine.GameConfig{MaxAttempts: 2, Range: 100})
	require.NoError(t, err)

	assert.Equal(t, engine.LostByAttempts, report.Outcome)
	assert.Equal(t, []int{50, 25}, report.Guesses)
	assert.Zero(t, report.Score)
	assert.Equal(t, 1, board.Snapshot().TotalGamesPlayed)
	assert.Zero(t, board.Snapshot().TotalGamesWon)
}

func TestPlay_InvalidConfig(t *testing.T) {
	svc, _ := newService(1)
	_, err := Play(context.Background(), svc, "bot", engine.GameConfig{MaxAttempts: 0, Range: 100})
	assert.ErrorIs(t, err, engine.ErrInvalidConfig)
}

func TestPlay_CanceledContext(t *testing.T) {
	svc, _ := newService(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Play(ctx, svc, "bot", engine.GameConfig{MaxAttempts: 5, Range: 10})
	assert.ErrorIs(t, err, context.Canceled)
}
