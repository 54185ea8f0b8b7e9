package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/wricardo/mcp-training/guessnumber/game/config"
	"github.com/wricardo/mcp-training/guessnumber/game/engine"
	"github.com/wricardo/mcp-training/guessnumber/game/leaderboard"
	"github.com/wricardo/mcp-training/guessnumber/game/service"
)

// errQuit signals that stdin was closed and the session should end quietly
var errQuit = errors.New("input closed")

const separator = "---------------------------------------------------"

// Option configures a Driver
type Option func(*Driver)

// WithPalette sets the colors used for output
func WithPalette(p Palette) Option {
	return func(d *Driver) { d.palette = p }
}

// WithLogger sets the diagnostic logger. Dialogue never goes through it.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

// Driver runs the interactive game loop over a reader and a writer
type Driver struct {
	svc     service.GameService
	presets *config.Manager
	in      *bufio.Reader
	out     io.Writer
	palette Palette
	logger  zerolog.Logger
}

// NewDriver creates a driver reading player input from in and writing the
// dialogue to out
func NewDriver(svc service.GameService, presets *config.Manager, in io.Reader, out io.Writer, opts ...Option) *Driver {
	d := &Driver{
		svc:     svc,
		presets: presets,
		in:      bufio.NewReader(in),
		out:     out,
		palette: NewPalette(false),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run plays rounds until the player declines another one or input ends.
// Closing the input is a normal way to leave and is not reported as an error.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := d.playOnce(ctx)
		if errors.Is(err, errQuit) {
			d.goodbye()
			return nil
		}
		if err != nil {
			return err
		}

		d.printLeaderboard(d.svc.Leaderboard(ctx))

		again, err := d.askYesNo("\nDo you want to play again? (yes/no): ")
		if err != nil && !errors.Is(err, errQuit) {
			return err
		}
		if !again {
			d.goodbye()
			return nil
		}
	}
}

func (d *Driver) playOnce(ctx context.Context) error {
	d.println(d.palette.Yellow("\n======== Number Guessing Game ========"))
	name, err := d.prompt("Enter your name: ")
	if err != nil {
		return err
	}

	cfg, err := d.chooseConfig()
	if err != nil {
		return err
	}

	timed, err := d.askYesNo(fmt.Sprintf("Do you want to enable Timed Mode (%d seconds)? (yes/no): ", engine.TimeLimitSeconds))
	if err != nil {
		return err
	}
	cfg.TimedMode = timed

	round, err := d.svc.StartRound(ctx, name, cfg)
	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}
	d.logger.Debug().
		Str("round_id", round.ID).
		Int("max_attempts", cfg.MaxAttempts).
		Int("range", cfg.Range).
		Bool("timed", cfg.TimedMode).
		Msg("terminal round started")

	d.println(d.palette.Green(fmt.Sprintf("\nWelcome, %s! Let's embark on an exciting guessing adventure!", round.Player)))
	d.println(d.palette.Yellow(separator))

	final, err := d.guessLoop(ctx)
	if err != nil {
		return err
	}

	snap := d.svc.Leaderboard(ctx)
	d.println("\n" + d.palette.Yellow("Game Statistics:"))
	d.printf("Total games played: %d\n", snap.TotalGamesPlayed)
	d.printf("Total games won: %d\n", snap.TotalGamesWon)
	d.println(d.palette.Yellow("Your previous attempts: " + formatInts(final.GuessHistory)))
	if best, ok := d.svc.BestScore(ctx, round.Player); ok {
		d.println(d.palette.Green(fmt.Sprintf("Your best score: %d", best)))
	}
	return nil
}

// chooseConfig shows the difficulty menu and returns the chosen round
// parameters. Anything unusable falls back to the default preset.
func (d *Driver) chooseConfig() (engine.GameConfig, error) {
	entries := d.menu()

	d.println("\nChoose difficulty level:")
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		d.printf("%s. %s\n", e.key, e.label)
		keys = append(keys, e.key)
	}
	choice, err := d.prompt(fmt.Sprintf("Enter No. (%s): ", joinChoices(keys)))
	if err != nil {
		return engine.GameConfig{}, err
	}
	choice = strings.TrimSpace(choice)

	fallback := d.presets.Default()
	if choice == config.CustomKey {
		return d.customConfig(fallback)
	}

	preset, err := d.presets.Resolve(choice)
	if err != nil {
		if _, convErr := strconv.Atoi(choice); convErr != nil {
			d.println(d.palette.Red(fmt.Sprintf("Invalid input! Defaulting to %s.", fallback.Name)))
		} else {
			d.println(d.palette.Red(fmt.Sprintf("Invalid choice! Defaulting to %s.", fallback.Name)))
		}
		d.logger.Debug().Err(err).Msg("difficulty fallback")
		return fallback.GameConfig(false), nil
	}
	return preset.GameConfig(false), nil
}

func (d *Driver) customConfig(fallback config.Preset) (engine.GameConfig, error) {
	rangeText, err := d.prompt("Enter your custom range (e.g., 1-500): ")
	if err != nil {
		return engine.GameConfig{}, err
	}
	attemptsText, err := d.prompt("Enter max attempts: ")
	if err != nil {
		return engine.GameConfig{}, err
	}

	cfg, err := config.ParseCustom(rangeText, attemptsText, false)
	if err != nil {
		d.println(d.palette.Red(fmt.Sprintf("Invalid input! Defaulting to %s.", fallback.Name)))
		d.logger.Debug().Err(err).Msg("custom difficulty rejected")
		return fallback.GameConfig(false), nil
	}
	return cfg, nil
}

// guessLoop reads input until the round ends and returns the final turn
func (d *Driver) guessLoop(ctx context.Context) (*service.TurnResult, error) {
	for {
		line, err := d.prompt("\nEnter your guess (or type 'hint' for a hint): ")
		if err != nil {
			return nil, err
		}

		status, err := d.svc.CheckDeadline(ctx)
		if err != nil {
			return nil, err
		}
		if status.Expired {
			d.render(status.Result)
			return status.Result, nil
		}
		if status.TimedMode {
			d.println(d.palette.Yellow(fmt.Sprintf("Time remaining: %d seconds.", status.TimeRemaining)))
		}

		result, err := d.svc.Submit(ctx, line)
		switch {
		case errors.Is(err, engine.ErrInvalidGuessFormat):
			d.println(d.palette.Red("Invalid input! Please enter a valid number."))
			continue
		case errors.Is(err, engine.ErrHintAlreadyUsed):
			d.println(d.palette.Red("You've already used your hint!"))
			continue
		case err != nil:
			return nil, err
		}

		if d.render(result) {
			return result, nil
		}
	}
}

// render prints one turn and reports whether the round is over
func (d *Driver) render(result *service.TurnResult) bool {
	switch result.Kind {
	case service.TurnTimeout:
		d.println(d.palette.Red("Time's up! You ran out of time."))
		d.finalScore(result.Score)
		return true

	case service.TurnHint:
		d.println(d.palette.Blue(fmt.Sprintf("Hint: The number is between %d and %d.", result.HintLow, result.HintHigh)))
		d.println(d.palette.Yellow(fmt.Sprintf("You used a hint! %d points deducted from your score.", engine.HintCost)))
		return false
	}

	if result.Feedback == engine.Correct {
		d.println(d.palette.Green(fmt.Sprintf("\nCongratulations! You've guessed the correct number: %d!", result.Secret)))
		d.printf("You took %d seconds to guess the number.\n", result.ElapsedSeconds)
		d.finalScore(result.Score)
		return true
	}

	if result.Feedback == engine.TooLow {
		d.println(d.palette.Yellow("Too low!"))
	} else {
		d.println(d.palette.Yellow("Too high!"))
	}
	d.println(d.palette.Blue(fmt.Sprintf("Attempts remaining: %d", result.AttemptsRemaining)))

	if result.Finished {
		d.println(d.palette.Red(fmt.Sprintf("Game Over! The correct number was: %d", result.Secret)))
		d.finalScore(result.Score)
		return true
	}
	return false
}

func (d *Driver) finalScore(score int) {
	d.println(d.palette.Green(fmt.Sprintf("Your final score: %d", score)))
}

func (d *Driver) printLeaderboard(snap leaderboard.Snapshot) {
	d.println("\n" + d.palette.Green("Leaderboard:"))
	for _, p := range snap.Players {
		d.printf("%s: %s\n", p.Player, formatInts(p.Scores))
	}
}

func (d *Driver) goodbye() {
	d.println("\nThanks for playing! Goodbye.")
}

// askYesNo treats "yes" and "y" as consent. Closed input counts as "no".
func (d *Driver) askYesNo(question string) (bool, error) {
	answer, err := d.prompt(question)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true, nil
	default:
		return false, nil
	}
}

// prompt writes text without a newline and reads the reply. A final line
// without a trailing newline is still returned; errQuit follows on the next call.
func (d *Driver) prompt(text string) (string, error) {
	fmt.Fprint(d.out, text)

	line, err := d.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			fmt.Fprintln(d.out)
			return "", errQuit
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (d *Driver) println(s string) {
	fmt.Fprintln(d.out, s)
}

func (d *Driver) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

type menuEntry struct {
	key   string
	label string
}

// menu lists the presets with the custom entry slotted in by key order
func (d *Driver) menu() []menuEntry {
	custom := menuEntry{key: config.CustomKey, label: "Custom (You set your own range)"}
	customKey, _ := strconv.Atoi(config.CustomKey)

	var entries []menuEntry
	placed := false
	for _, p := range d.presets.Presets() {
		if n, err := strconv.Atoi(p.Key); !placed && (err != nil || n > customKey) {
			entries = append(entries, custom)
			placed = true
		}
		entries = append(entries, menuEntry{key: p.Key, label: p.Label()})
	}
	if !placed {
		entries = append(entries, custom)
	}
	return entries
}

// joinChoices renders "1, 2, 3, or 4"
func joinChoices(keys []string) string {
	switch len(keys) {
	case 0:
		return ""
	case 1:
		return keys[0]
	case 2:
		return keys[0] + " or " + keys[1]
	}
	return strings.Join(keys[:len(keys)-1], ", ") + ", or " + keys[len(keys)-1]
}

// formatInts renders a list as "[30, 80, 57]"
func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
