package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wricardo/mcp-training/guessnumber/game/engine"
	"github.com/wricardo/mcp-training/guessnumber/game/leaderboard"
)

// AnonymousPlayer is recorded when a player leaves the name empty
const AnonymousPlayer = "Anonymous"

// ErrNoActiveRound is returned when an operation needs a round in progress.
// The storage error it wraps stays visible to errors.Is.
var ErrNoActiveRound = errors.New("no active round")

// Option configures a GameService
type Option func(*gameServiceImpl)

// WithSourceFactory sets how secrets are drawn for each round
func WithSourceFactory(factory engine.SourceFactory) Option {
	return func(s *gameServiceImpl) { s.sources = factory }
}

// WithClock replaces the wall clock, mostly for tests
func WithClock(clock engine.Clock) Option {
	return func(s *gameServiceImpl) { s.clock = clock }
}

// WithLogger sets the structured logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *gameServiceImpl) { s.logger = logger }
}

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	board    Leaderboard
	sources  engine.SourceFactory
	clock    engine.Clock
	logger   zerolog.Logger
	rounds   int
	mu       sync.Mutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, board Leaderboard, opts ...Option) GameService {
	s := &gameServiceImpl{
		sessions: sessions,
		board:    board,
		sources:  engine.RandomFactory(),
		clock:    engine.SystemClock{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartRound creates a new round for player
func (s *gameServiceImpl) StartRound(ctx context.Context, player string, config engine.GameConfig) (*RoundInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player = strings.TrimSpace(player)
	if player == "" {
		player = AnonymousPlayer
	}

	eng, err := engine.NewEngine(config, s.sources(s.rounds+1), s.clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}

	session, err := s.sessions.Start(player, config, eng)
	if err != nil {
		return nil, fmt.Errorf("failed to start round: %w", err)
	}
	s.rounds++

	s.logger.Info().
		Str("round_id", session.ID).
		Str("player", player).
		Int("max_attempts", config.MaxAttempts).
		Int("range", config.Range).
		Bool("timed", config.TimedMode).
		Msg("round started")

	return s.roundInfo(session), nil
}

// Round returns the active round
func (s *gameServiceImpl) Round(ctx context.Context) (*RoundInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.roundInfo(session), nil
}

// CheckDeadline runs the time limit check of the active round. An expired
// timed round is finished and recorded before returning.
func (s *gameServiceImpl) CheckDeadline(ctx context.Context) (*DeadlineStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.current()
	if err != nil {
		return nil, err
	}

	eng := session.Engine
	if eng.ExpireIfTimedOut() {
		result := s.turnResult(session, TurnTimeout)
		s.finish(session)
		return &DeadlineStatus{TimedMode: true, TimeRemaining: 0, Expired: true, Result: result}, nil
	}

	return &DeadlineStatus{
		TimedMode:     session.Config.TimedMode,
		TimeRemaining: eng.TimeRemaining(),
	}, nil
}

// Submit processes one line of player input. Malformed input and a second
// hint return errors wrapping engine.ErrInvalidGuessFormat and
// engine.ErrHintAlreadyUsed; neither changes the round.
func (s *gameServiceImpl) Submit(ctx context.Context, input string) (*TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.current()
	if err != nil {
		return nil, err
	}
	eng := session.Engine

	if eng.ExpireIfTimedOut() {
		result := s.turnResult(session, TurnTimeout)
		s.finish(session)
		return result, nil
	}

	parsed, err := engine.ParseInput(input)
	if err != nil {
		s.logger.Debug().Str("round_id", session.ID).Str("input", input).Msg("rejected input")
		return nil, err
	}

	if parsed.Kind == engine.HintInput {
		low, high, err := eng.UseHint()
		if err != nil {
			return nil, err
		}
		result := s.turnResult(session, TurnHint)
		result.HintLow, result.HintHigh = low, high
		s.logger.Debug().Str("round_id", session.ID).Int("low", low).Int("high", high).Msg("hint used")
		return result, nil
	}

	feedback, err := eng.Submit(parsed.Guess)
	if err != nil {
		return nil, err
	}

	result := s.turnResult(session, TurnGuess)
	result.Guess = parsed.Guess
	result.Feedback = feedback
	s.logger.Debug().
		Str("round_id", session.ID).
		Int("guess", parsed.Guess).
		Stringer("feedback", feedback).
		Int("attempts_remaining", result.AttemptsRemaining).
		Msg("guess evaluated")

	if eng.IsGameOver() {
		s.finish(session)
	}
	return result, nil
}

// Leaderboard returns a snapshot of the leaderboard
func (s *gameServiceImpl) Leaderboard(ctx context.Context) leaderboard.Snapshot {
	return s.board.Snapshot()
}

// BestScore returns the highest winning score recorded for player
func (s *gameServiceImpl) BestScore(ctx context.Context, player string) (int, bool) {
	return s.board.Best(player)
}

// History returns the finished rounds, oldest first
func (s *gameServiceImpl) History(ctx context.Context) []*RoundInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.sessions.History()
	result := make([]*RoundInfo, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, s.roundInfo(session))
	}
	return result
}

// current returns the active session or ErrNoActiveRound
func (s *gameServiceImpl) current() (*Session, error) {
	session, err := s.sessions.Current()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoActiveRound, err)
	}
	return session, nil
}

// finish records a terminal round exactly once
func (s *gameServiceImpl) finish(session *Session) {
	eng := session.Engine
	won := eng.Outcome() == engine.Won

	s.board.RecordGameOutcome(won)
	if won {
		s.board.RecordScore(session.Player, eng.GetScore())
	}

	session.FinishedAt = s.clock.Now()
	if err := s.sessions.Finish(session.ID); err != nil {
		s.logger.Warn().Err(err).Str("round_id", session.ID).Msg("failed to close round")
	}

	s.logger.Info().
		Str("round_id", session.ID).
		Str("player", session.Player).
		Str("outcome", string(eng.Outcome())).
		Int("score", eng.GetScore()).
		Int("elapsed_seconds", eng.ElapsedSeconds()).
		Msg("round finished")
}

func (s *gameServiceImpl) turnResult(session *Session, kind TurnKind) *TurnResult {
	eng := session.Engine
	state := eng.GetState()

	result := &TurnResult{
		Kind:              kind,
		AttemptsRemaining: state.AttemptsRemaining,
		Score:             state.Score,
		TimeRemaining:     eng.TimeRemaining(),
		Outcome:           state.Outcome,
		GuessHistory:      state.GuessHistory,
		ElapsedSeconds:    eng.ElapsedSeconds(),
	}
	if eng.IsGameOver() {
		result.Finished = true
		result.Secret = state.Secret
	}
	return result
}

func (s *gameServiceImpl) roundInfo(session *Session) *RoundInfo {
	eng := session.Engine
	info := &RoundInfo{
		ID:            session.ID,
		Player:        session.Player,
		Config:        session.Config,
		State:         eng.GetState(),
		StartedAt:     session.StartedAt,
		FinishedAt:    session.FinishedAt,
		TimeRemaining: eng.TimeRemaining(),
	}
	if eng.IsGameOver() {
		info.Secret = eng.Secret()
	}
	return info
}
