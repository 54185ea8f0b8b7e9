// Command guessnumber runs the number guessing game.
//
// It supports several modes:
//  1. default – interactive game on the terminal
//  2. "mcp" – MCP stdio server so AI agents can play
//  3. "autoplay" – plays rounds with the bisection strategy and prints the leaderboard
//  4. "presets" – lists the difficulty presets, validating a presets file if given
//
// Flags can also be set from the environment or a .env file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/mcp-training/guessnumber/game/config"
	"github.com/wricardo/mcp-training/guessnumber/game/engine"
	"github.com/wricardo/mcp-training/guessnumber/game/leaderboard"
	"github.com/wricardo/mcp-training/guessnumber/game/service"
	"github.com/wricardo/mcp-training/guessnumber/game/session"
	"github.com/wricardo/mcp-training/guessnumber/game/strategy"
	"github.com/wricardo/mcp-training/guessnumber/transport/mcp"
	"github.com/wricardo/mcp-training/guessnumber/transport/terminal"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Number Guessing Game"
)

// main loads .env, wires the command tree and runs it
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdin, os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "guessnumber: %v\n", err)
		os.Exit(1)
	}
}

// newCommand builds the command tree reading game input from in
func newCommand(in io.Reader, out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "guessnumber",
		Usage:     "guess the secret number before your attempts run out",
		Version:   Version,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "seed for reproducible secrets (random when unset)",
				Sources: cli.EnvVars("GUESSNUMBER_SEED"),
			},
			&cli.StringFlag{
				Name:    "presets",
				Usage:   "YAML file with extra difficulty presets",
				Sources: cli.EnvVars("GUESSNUMBER_PRESETS"),
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output (also honors NO_COLOR)",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging on stderr",
				Sources: cli.EnvVars("GUESSNUMBER_DEBUG"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd, errOut)
			if err != nil {
				return err
			}
			driver := terminal.NewDriver(a.svc, a.presets, in, out,
				terminal.WithPalette(terminal.NewPalette(colorEnabled(cmd, out))),
				terminal.WithLogger(a.logger),
			)
			return driver.Run(ctx)
		},
		Commands: []*cli.Command{
			mcpCommand(errOut),
			autoplayCommand(out, errOut),
			presetsCommand(out),
		},
	}
}

func mcpCommand(errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "serve the game as MCP tools over stdio",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd, errOut)
			if err != nil {
				return err
			}
			srv := mcp.NewServer(a.svc, a.presets, Version, mcp.WithLogger(a.logger))
			if err := srv.ServeStdio(); err != nil {
				return fmt.Errorf("MCP stdio server error: %w", err)
			}
			return nil
		},
	}
}

func autoplayCommand(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "autoplay",
		Usage: "play rounds automatically with the bisection strategy",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "rounds",
				Value: 5,
				Usage: "number of rounds to play",
			},
			&cli.StringFlag{
				Name:  "difficulty",
				Value: config.DefaultKey,
				Usage: "preset key or name",
			},
			&cli.StringFlag{
				Name:  "player",
				Usage: "player name (a generated name when empty)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd, errOut)
			if err != nil {
				return err
			}

			preset, err := a.presets.Resolve(cmd.String("difficulty"))
			if err != nil {
				return err
			}

			player := cmd.String("player")
			if player == "" {
				player = gofakeit.New(uint64(cmd.Int64("seed"))).Name()
			}

			ctx = a.logger.WithContext(ctx)
			for i := 1; i <= cmd.Int("rounds"); i++ {
				report, err := strategy.Play(ctx, a.svc, player, preset.GameConfig(false))
				if err != nil {
					return fmt.Errorf("round %d: %w", i, err)
				}
				fmt.Fprintf(out, "Round %d: %s guessed %v -> %s (secret %d, score %d)\n",
					i, report.Player, report.Guesses, report.Outcome, report.Secret, report.Score)
			}

			printLeaderboard(out, a.svc.Leaderboard(ctx))
			return nil
		},
	}
}

func presetsCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "list difficulty presets, validating --presets if given",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			presets, err := loadPresets(cmd.String("presets"))
			if err != nil {
				return err
			}
			for _, p := range presets.Presets() {
				fmt.Fprintf(out, "%s. %s\n", p.Key, p.Label())
			}
			fmt.Fprintf(out, "%s. Custom (You set your own range)\n", config.CustomKey)
			return nil
		},
	}
}

// app holds the wired services shared by every mode
type app struct {
	logger  zerolog.Logger
	presets *config.Manager
	svc     service.GameService
}

func newApp(cmd *cli.Command, errOut io.Writer) (*app, error) {
	logger := newLogger(errOut, cmd.Bool("debug"), colorEnabled(cmd, errOut))

	presets, err := loadPresets(cmd.String("presets"))
	if err != nil {
		return nil, err
	}

	sources := engine.RandomFactory()
	if cmd.IsSet("seed") {
		sources = engine.SeededFactory(uint64(cmd.Int64("seed")))
	}

	svc := service.NewGameService(session.NewManager(), leaderboard.NewStore(),
		service.WithSourceFactory(sources),
		service.WithLogger(logger),
	)

	logger.Debug().
		Str("version", Version).
		Bool("seeded", cmd.IsSet("seed")).
		Int("presets", len(presets.Presets())).
		Msgf("%s starting", AppName)

	return &app{logger: logger, presets: presets, svc: svc}, nil
}

func loadPresets(path string) (*config.Manager, error) {
	presets := config.NewManager()
	if path == "" {
		return presets, nil
	}
	if err := presets.LoadFile(path); err != nil {
		return nil, fmt.Errorf("failed to load presets from %s: %w", path, err)
	}
	return presets, nil
}

func newLogger(w io.Writer, debug, color bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !color}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// colorEnabled reports whether w is a terminal and colors were not disabled
func colorEnabled(cmd *cli.Command, w io.Writer) bool {
	if cmd.Bool("no-color") || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printLeaderboard(out io.Writer, snap leaderboard.Snapshot) {
	fmt.Fprintln(out, "\nLeaderboard:")
	for _, p := range snap.Players {
		fmt.Fprintf(out, "%s: %v\n", p.Player, p.Scores)
	}
	fmt.Fprintf(out, "Total games played: %d\n", snap.TotalGamesPlayed)
	fmt.Fprintf(out, "Total games won: %d\n", snap.TotalGamesWon)
}
