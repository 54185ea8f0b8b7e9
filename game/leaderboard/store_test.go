package leaderboard

import (
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RecordScoreAppends(t *testing.T) {
	store := NewStore()

	store.RecordScore("A", 10)
	store.RecordScore("A", 20)
	store.RecordScore("A", 30)

	assert.Equal(t, []int{10, 20, 30}, store.Scores("A"))
}

func TestStore_SnapshotOrderAndCounters(t *testing.T) {
	faker := gofakeit.New(42)
	first, second := faker.Name(), faker.Name()
	if first == second {
		second += " Jr."
	}

	store := NewStore()
	store.RecordScore(second, 150)
	store.RecordGameOutcome(true)
	store.RecordScore(first, 90)
	store.RecordGameOutcome(true)
	store.RecordGameOutcome(false)
	store.RecordScore(second, 40)
	store.RecordGameOutcome(true)

	want := Snapshot{
		Players: []PlayerScores{
			{Player: second, Scores: []int{150, 40}},
			{Player: first, Scores: []int{90}},
		},
		TotalGamesPlayed: 4,
		TotalGamesWon:    3,
	}
	if diff := cmp.Diff(want, store.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_RecordGameOutcome(t *testing.T) {
	tests := []struct {
		name       string
		outcomes   []bool
		wantPlayed int
		wantWon    int
	}{
		{"no games", nil, 0, 0},
		{"single loss", []bool{false}, 1, 0},
		{"single win", []bool{true}, 1, 1},
		{"mixed", []bool{true, false, false, true, true}, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			for _, won := range tt.outcomes {
				store.RecordGameOutcome(won)
			}

			snap := store.Snapshot()
			assert.Equal(t, tt.wantPlayed, snap.TotalGamesPlayed)
			assert.Equal(t, tt.wantWon, snap.TotalGamesWon)
		})
	}
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	store := NewStore()
	store.RecordScore("A", 10)

	snap := store.Snapshot()
	require.Len(t, snap.Players, 1)
	snap.Players[0].Scores[0] = 999

	store.RecordScore("A", 20)
	assert.Equal(t, []int{10, 20}, store.Scores("A"))
	assert.Equal(t, []int{999}, snap.Players[0].Scores, "a taken snapshot must not see later updates")
}

func TestStore_Best(t *testing.T) {
	store := NewStore()

	_, ok := store.Best("nobody")
	assert.False(t, ok)
	assert.Nil(t, store.Scores("nobody"))

	store.RecordScore("A", 30)
	store.RecordScore("A", 170)
	store.RecordScore("A", 95)

	best, ok := store.Best("A")
	require.True(t, ok)
	assert.Equal(t, 170, best)
}

func TestStore_ConcurrentReaders(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			store.RecordScore("A", i)
			store.RecordGameOutcome(i%2 == 0)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.Snapshot()
		}()
	}
	wg.Wait()

	snap := store.Snapshot()
	assert.Len(t, store.Scores("A"), 20)
	assert.Equal(t, 20, snap.TotalGamesPlayed)
	assert.Equal(t, 10, snap.TotalGamesWon)
}
