package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/wricardo/mcp-training/guessnumber/game/config"
	"github.com/wricardo/mcp-training/guessnumber/game/engine"
	"github.com/wricardo/mcp-training/guessnumber/game/service"
)

// ServerName is reported to MCP clients during initialization
const ServerName = "Number Guessing Game"

// Option configures a Server
type Option func(*Server)

// WithLogger sets the structured logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// Server exposes the game service as MCP tools
type Server struct {
	svc       service.GameService
	presets   *config.Manager
	mcpServer *server.MCPServer
	logger    zerolog.Logger
}

// NewServer creates an MCP server backed by svc
func NewServer(svc service.GameService, presets *config.Manager, version string, opts ...Option) *Server {
	s := &Server{
		svc:     svc,
		presets: presets,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Number Guessing Game - MCP Interface

Guess the secret number between 1 and the round's upper bound.

AVAILABLE TOOLS:
- list_difficulties: Show the difficulty presets
- start_game: Start a round (difficulty, or custom range and max_attempts)
- guess: Submit a number, or "hint" once per round
- game_status: Show the active round
- leaderboard: Show scores and totals
- game_instructions: Rules and scoring

Only one round can be active at a time.`),
	)

	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server for serving
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools over stdin/stdout until the client disconnects
func (s *Server) ServeStdio() error {
	s.logger.Info().Msg("MCP stdio server ready")
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_difficulties",
		Description: "List the difficulty presets that start_game accepts",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListDifficulties)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "start_game",
		Description: "Start a new round. Pick a preset with difficulty, or set range and max_attempts for a custom round.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"player": map[string]interface{}{
					"type":        "string",
					"description": "Player name for the leaderboard (default Anonymous)",
				},
				"difficulty": map[string]interface{}{
					"type":        "string",
					"description": "Preset key or name, e.g. \"2\" or \"medium\" (default Medium)",
				},
				"range": map[string]interface{}{
					"type":        "integer",
					"description": "Custom upper bound of the secret",
				},
				"max_attempts": map[string]interface{}{
					"type":        "integer",
					"description": "Custom number of attempts",
				},
				"timed": map[string]interface{}{
					"type":        "boolean",
					"description": "Enable the 30 second timed mode",
				},
			},
		},
	}, s.handleStartGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "guess",
		Description: "Submit a guess for the active round, or \"hint\" to reveal a window around the secret",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"value": map[string]interface{}{
					"type":        "string",
					"description": "An integer guess or the word hint",
				},
			},
			Required: []string{"value"},
		},
	}, s.handleGuess)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_status",
		Description: "Show the active round: attempts, score, guesses and time left",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameStatus)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "leaderboard",
		Description: "Show every player's winning scores and the game totals",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleLeaderboard)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the rules and scoring of the game",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameInstructions)
}

// Tool handlers

func (s *Server) handleListDifficulties(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	b.WriteString("Difficulties:\n")
	for _, p := range s.presets.Presets() {
		fmt.Fprintf(&b, "- %s. %s\n", p.Key, p.Label())
	}
	fmt.Fprintf(&b, "- %s. Custom (pass range and max_attempts)\n", config.CustomKey)
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	player, _ := args["player"].(string)
	difficulty, _ := args["difficulty"].(string)
	timed, _ := args["timed"].(bool)

	cfg, err := s.roundConfig(args, difficulty, timed)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	round, err := s.svc.StartRound(ctx, player, cfg)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidConfig) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("%v (finish the active round first)", err)), nil
	}

	return mcp.NewToolResultText(formatRoundStarted(round)), nil
}

func (s *Server) handleGuess(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)

	var value string
	switch v := args["value"].(type) {
	case string:
		value = v
	case float64:
		value = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return mcp.NewToolResultError("value is required"), nil
	}

	result, err := s.svc.Submit(ctx, value)
	switch {
	case errors.Is(err, engine.ErrInvalidGuessFormat):
		return mcp.NewToolResultError("Invalid input! Please enter a valid number."), nil
	case errors.Is(err, engine.ErrHintAlreadyUsed):
		return mcp.NewToolResultError("You've already used your hint!"), nil
	case errors.Is(err, service.ErrNoActiveRound):
		return mcp.NewToolResultError("No active round. Call start_game first."), nil
	case err != nil:
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatTurn(result)), nil
}

func (s *Server) handleGameStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.svc.CheckDeadline(ctx)
	if errors.Is(err, service.ErrNoActiveRound) {
		return mcp.NewToolResultText(formatNoRound(s.svc.History(ctx))), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if status.Expired {
		return mcp.NewToolResultText(formatTurn(status.Result)), nil
	}

	round, err := s.svc.Round(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatRound(round)), nil
}

func (s *Server) handleLeaderboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatLeaderboard(s.svc.Leaderboard(ctx))), nil
}

func (s *Server) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := fmt.Sprintf(`Number Guessing Game - Instructions

OBJECTIVE:
Find the secret number in [1, range] before your attempts run out.

ROUND:
- A round starts with max_attempts * %d points.
- Each wrong guess costs one attempt and %d points; you are told "too low" or "too high".
- One hint per round reveals a window of +/-%d around the secret for %d points.
- Timed mode gives you %d seconds. The clock is checked each time you submit.

SCORING ON A WIN:
- +%d if you win within %d seconds in a normal round.
- +%d if you win in under %d seconds in timed mode.
- +%d for every attempt left.
A lost or timed out round scores 0 and does not enter the leaderboard.

STRATEGY:
Halving the remaining interval wins any round where attempts >= ceil(log2(range+1)).`,
		engine.PointsPerAttempt, engine.WrongGuessPenalty, engine.HintSpread, engine.HintCost,
		engine.TimeLimitSeconds,
		engine.QuickWinBonus, engine.TimeLimitSeconds,
		engine.TimedWinBonus, engine.TimeLimitSeconds,
		engine.RemainingAttemptBonus,
	)
	return mcp.NewToolResultText(instructions), nil
}

// roundConfig picks a custom config when range or max_attempts is given,
// otherwise the requested preset
func (s *Server) roundConfig(args map[string]interface{}, difficulty string, timed bool) (engine.GameConfig, error) {
	upper, hasRange := intArg(args, "range")
	attempts, hasAttempts := intArg(args, "max_attempts")

	if hasRange || hasAttempts || strings.TrimSpace(difficulty) == config.CustomKey || strings.EqualFold(strings.TrimSpace(difficulty), "custom") {
		if !hasRange || !hasAttempts {
			return engine.GameConfig{}, fmt.Errorf("%w: custom rounds need both range and max_attempts", engine.ErrInvalidConfig)
		}
		cfg := engine.GameConfig{MaxAttempts: attempts, Range: upper, TimedMode: timed}
		if err := engine.ValidateGameConfig(cfg); err != nil {
			return engine.GameConfig{}, err
		}
		return cfg, nil
	}

	if strings.TrimSpace(difficulty) == "" {
		return s.presets.Default().GameConfig(timed), nil
	}
	preset, err := s.presets.Resolve(difficulty)
	if err != nil {
		return engine.GameConfig{}, err
	}
	return preset.GameConfig(timed), nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		return args
	}
	return map[string]interface{}{}
}

// intArg reads a JSON number argument; JSON numbers arrive as float64
func intArg(args map[string]interface{}, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}
