package leaderboard

import "sync"

// PlayerScores is the ordered list of scores one player has recorded
type PlayerScores struct {
	Player string `json:"player"`
	Scores []int  `json:"scores"`
}

// Snapshot is a read-only copy of the board at a point in time
type Snapshot struct {
	Players          []PlayerScores `json:"players"`
	TotalGamesPlayed int            `json:"total_games_played"`
	TotalGamesWon    int            `json:"total_games_won"`
}

// Store is the in-memory leaderboard
type Store struct {
	scores map[string][]int
	order  []string // players in first-recorded order
	played int
	won    int
	mu     sync.RWMutex
}

// NewStore creates an empty leaderboard
func NewStore() *Store {
	return &Store{
		scores: make(map[string][]int),
	}
}

// RecordScore appends score to the player's list, creating it if absent.
// Earlier scores are never overwritten.
func (s *Store) RecordScore(player string, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.scores[player]; !exists {
		s.order = append(s.order, player)
	}
	s.scores[player] = append(s.scores[player], score)
}

// RecordGameOutcome counts a completed round
func (s *Store) RecordGameOutcome(won bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.played++
	if won {
		s.won++
	}
}

// Snapshot returns a deep copy of the board
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]PlayerScores, 0, len(s.order))
	for _, name := range s.order {
		players = append(players, PlayerScores{
			Player: name,
			Scores: append([]int(nil), s.scores[name]...),
		})
	}

	return Snapshot{
		Players:          players,
		TotalGamesPlayed: s.played,
		TotalGamesWon:    s.won,
	}
}

// Scores returns a copy of one player's scores, or nil if none were recorded
func (s *Store) Scores(player string) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scores, exists := s.scores[player]
	if !exists {
		return nil
	}
	return append([]int(nil), scores...)
}

// Best returns the highest score a player has recorded
func (s *Store) Best(player string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scores := s.scores[player]
	if len(scores) == 0 {
		return 0, false
	}
	best := scores[0]
	for _, score := range scores[1:] {
		best = max(best, score)
	}
	return best, true
}
