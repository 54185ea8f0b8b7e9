package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/mcp-training/guessnumber/game/config"
	"github.com/wricardo/mcp-training/guessnumber/game/engine"
	"github.com/wricardo/mcp-training/guessnumber/game/leaderboard"
	"github.com/wricardo/mcp-training/guessnumber/game/service"
	"github.com/wricardo/mcp-training/guessnumber/game/session"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestServer(t *testing.T, secret int) (*Server, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC)}
	svc := service.NewGameService(session.NewManager(), leaderboard.NewStore(),
		service.WithClock(clock),
		service.WithSourceFactory(func(int) engine.Source { return engine.FixedSource(secret) }),
	)
	return NewServer(svc, config.NewManager(), "test"), clock
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), name string, args map[string]interface{}) (string, bool) {
	t.Helper()
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}

	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text, result.IsError
}

func TestNewServer(t *testing.T) {
	s, _ := newTestServer(t, 1)
	assert.NotNil(t, s.MCPServer())
}

func TestHandleListDifficulties(t *testing.T) {
	s, _ := newTestServer(t, 1)
	text, isErr := call(t, s.handleListDifficulties, "list_difficulties", map[string]interface{}{})

	assert.False(t, isErr)
	assert.Contains(t, text, "1. Easy (15 attempts, 1-50 range)")
	assert.Contains(t, text, "2. Medium (10 attempts, 1-100 range)")
	assert.Contains(t, text, "3. Hard (5 attempts, 1-200 range)")
	assert.Contains(t, text, "4. Custom")
}

func TestPlayThroughTools(t *testing.T) {
	s, clock := newTestServer(t, 57)

	text, isErr := call(t, s.handleStartGame, "start_game", map[string]interface{}{
		"player":     "agent",
		"difficulty": "medium",
	})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Round started for agent")
	assert.Contains(t, text, "between 1 and 100")

	text, isErr = call(t, s.handleStartGame, "start_game", map[string]interface{}{})
	assert.True(t, isErr, "second round must be rejected while one is active")
	assert.Contains(t, text, "finish the active round first")

	clock.now = clock.now.Add(2 * time.Second)
	text, _ = call(t, s.handleGuess, "guess", map[string]interface{}{"value": "30"})
	assert.Contains(t, text, "Too low!")
	assert.Contains(t, text, "Attempts remaining: 9")

	text, _ = call(t, s.handleGuess, "guess", map[string]interface{}{"value": float64(80)})
	assert.Contains(t, text, "Too high!")

	text, _ = call(t, s.handleGameStatus, "game_status", map[string]interface{}{})
	assert.Contains(t, text, "Attempts remaining: 8/10")
	assert.Contains(t, text, "Guesses: [30, 80]")
	assert.NotContains(t, text, "57")

	text, isErr = call(t, s.handleGuess, "guess", map[string]interface{}{"value": "fifty"})
	assert.True(t, isErr)
	assert.Contains(t, text, "Invalid input!")

	text, _ = call(t, s.handleGuess, "guess", map[string]interface{}{"value": "57"})
	assert.Contains(t, text, "Congratulations! You've guessed the correct number: 57!")
	assert.Contains(t, text, "Final score: 170")

	text, isErr = call(t, s.handleGuess, "guess", map[string]interface{}{"value": "57"})
	assert.True(t, isErr)
	assert.Contains(t, text, "start_game")

	text, _ = call(t, s.handleGameStatus, "game_status", map[string]interface{}{})
	assert.Contains(t, text, "No active round. Last round (agent): won, secret 57, score 170.")

	text, _ = call(t, s.handleLeaderboard, "leaderboard", map[string]interface{}{})
	assert.Contains(t, text, "agent: [170]")
	assert.Contains(t, text, "Total games played: 1")
	assert.Contains(t, text, "Total games won: 1")
}

func TestHandleGuess_Hint(t *testing.T) {
	s, _ := newTestServer(t, 42)
	_, isErr := call(t, s.handleStartGame, "start_game", map[string]interface{}{})
	require.False(t, isErr)

	text, isErr := call(t, s.handleGuess, "guess", map[string]interface{}{"value": "hint"})
	assert.False(t, isErr)
	assert.Contains(t, text, "Hint: The number is between 32 and 52.")
	assert.Contains(t, text, "Score: 80")

	text, isErr = call(t, s.handleGuess, "guess", map[string]interface{}{"value": "hint"})
	assert.True(t, isErr)
	assert.Contains(t, text, "already used your hint")

	_, isErr = call(t, s.handleGuess, "guess", map[string]interface{}{})
	assert.True(t, isErr)
}

func TestHandleStartGame_Custom(t *testing.T) {
	t.Run("loss", func(t *testing.T) {
		s, _ := newTestServer(t, 5)
		text, isErr := call(t, s.handleStartGame, "start_game", map[string]interface{}{
			"range":        float64(10),
			"max_attempts": float64(1),
		})
		require.False(t, isErr, text)
		assert.Contains(t, text, "between 1 and 10")

		text, _ = call(t, s.handleGuess, "guess", map[string]interface{}{"value": "3"})
		assert.Contains(t, text, "Game Over! The correct number was: 5")
		assert.Contains(t, text, "Final score: 0")
	})

	t.Run("incomplete", func(t *testing.T) {
		s, _ := newTestServer(t, 5)
		text, isErr := call(t, s.handleStartGame, "start_game", map[string]interface{}{"difficulty": "custom", "range": float64(10)})
		assert.True(t, isErr)
		assert.Contains(t, text, "range and max_attempts")
	})

	t.Run("non-positive", func(t *testing.T) {
		s, _ := newTestServer(t, 5)
		_, isErr := call(t, s.handleStartGame, "start_game", map[string]interface{}{"range": float64(0), "max_attempts": float64(3)})
		assert.True(t, isErr)
	})

	t.Run("unknown preset", func(t *testing.T) {
		s, _ := newTestServer(t, 5)
		text, isErr := call(t, s.handleStartGame, "start_game", map[string]interface{}{"difficulty": "legendary"})
		assert.True(t, isErr)
		assert.Contains(t, text, "unknown difficulty preset")
	})
}

func TestHandleGameStatus_Timeout(t *testing.T) {
	s, clock := newTestServer(t, 5)
	_, isErr := call(t, s.handleStartGame, "start_game", map[string]interface{}{"difficulty": "1", "timed": true})
	require.False(t, isErr)

	clock.now = clock.now.Add(12 * time.Second)
	text, _ := call(t, s.handleGameStatus, "game_status", map[string]interface{}{})
	assert.Contains(t, text, "Time remaining: 18 seconds.")

	clock.now = clock.now.Add(time.Minute)
	text, _ = call(t, s.handleGameStatus, "game_status", map[string]interface{}{})
	assert.Contains(t, text, "Time's up! You ran out of time.")
	assert.Contains(t, text, "The correct number was: 5")
	assert.Contains(t, text, "Final score: 0")
}

func TestHandleGameStatus_NoRounds(t *testing.T) {
	s, _ := newTestServer(t, 5)
	text, _ := call(t, s.handleGameStatus, "game_status", map[string]interface{}{})
	assert.Equal(t, "No active round. Call start_game to play.\n", text)

	text, _ = call(t, s.handleLeaderboard, "leaderboard", nil)
	assert.Contains(t, text, "(no wins yet)")
}

func TestHandleGameInstructions(t *testing.T) {
	s, _ := newTestServer(t, 5)
	text, _ := call(t, s.handleGameInstructions, "game_instructions", map[string]interface{}{})

	for _, want := range []string{"OBJECTIVE", "SCORING ON A WIN", "+50", "+30", "30 seconds"} {
		assert.True(t, strings.Contains(text, want), "missing %q", want)
	}
}
