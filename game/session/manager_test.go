package session

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/mcp-training/guessnumber/game/engine"
)

func newTestEngine(t *testing.T) (*engine.GameEngine, engine.GameConfig) {
	t.Helper()
	config := engine.GameConfig{MaxAttempts: 10, Range: 100}
	eng, err := engine.NewEngine(config, engine.FixedSource(42), engine.SystemClock{})
	require.NoError(t, err)
	return eng, config
}

func TestManager_Start(t *testing.T) {
	manager := NewManager()
	eng, config := newTestEngine(t)

	t.Run("first round", func(t *testing.T) {
		session, err := manager.Start("Ada", config, eng)
		require.NoError(t, err)

		_, parseErr := uuid.Parse(session.ID)
		assert.NoError(t, parseErr, "round IDs are UUIDs")
		assert.Equal(t, "Ada", session.Player)
		assert.Equal(t, config, session.Config)
		assert.False(t, session.StartedAt.IsZero())
		assert.Same(t, eng, session.Engine)
	})

	t.Run("second round while active", func(t *testing.T) {
		other, config := newTestEngine(t)
		_, err := manager.Start("Grace", config, other)
		assert.ErrorIs(t, err, ErrRoundInProgress)
	})

	t.Run("nil engine", func(t *testing.T) {
		_, err := NewManager().Start("Ada", config, nil)
		assert.Error(t, err)
	})
}

func TestManager_Current(t *testing.T) {
	manager := NewManager()

	_, err := manager.Current()
	assert.ErrorIs(t, err, ErrNoActiveRound)

	eng, config := newTestEngine(t)
	started, err := manager.Start("Ada", config, eng)
	require.NoError(t, err)

	current, err := manager.Current()
	require.NoError(t, err)
	assert.Same(t, started, current)
}

func TestManager_FinishAndHistory(t *testing.T) {
	manager := NewManager()

	var ids []string
	for _, player := range []string{"Ada", "Grace", "Ada"} {
		eng, config := newTestEngine(t)
		session, err := manager.Start(player, config, eng)
		require.NoError(t, err)
		ids = append(ids, session.ID)
		require.NoError(t, manager.Finish(session.ID))
	}

	history := manager.History()
	require.Len(t, history, 3)
	for i, session := range history {
		assert.Equal(t, ids[i], session.ID)
		assert.False(t, session.FinishedAt.IsZero())
	}
	assert.Equal(t, 3, manager.Count())

	_, err := manager.Current()
	assert.ErrorIs(t, err, ErrNoActiveRound)
}

func TestManager_FinishUnknown(t *testing.T) {
	manager := NewManager()
	assert.ErrorIs(t, manager.Finish("nope"), ErrRoundNotFound)

	eng, config := newTestEngine(t)
	_, err := manager.Start("Ada", config, eng)
	require.NoError(t, err)
	assert.ErrorIs(t, manager.Finish(uuid.NewString()), ErrRoundNotFound)
	assert.Equal(t, 1, manager.Count())
}

func TestManager_ConcurrentAccess(t *testing.T) {
	manager := NewManager()
	eng, config := newTestEngine(t)
	session, err := manager.Start("Ada", config, eng)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = manager.Current()
			_ = manager.History()
			_ = manager.Count()
		}()
	}
	wg.Wait()

	require.NoError(t, manager.Finish(session.ID))
	assert.Len(t, manager.History(), 1)
}
