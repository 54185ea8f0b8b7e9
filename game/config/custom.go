package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wricardo/mcp-training/guessnumber/game/engine"
)

// ParseCustom builds a round config from the text a player typed for the
// custom difficulty. The range accepts either "500" or "1-500"; in the latter
// form only the upper bound is used since ranges always start at 1.
func ParseCustom(rangeText, attemptsText string, timed bool) (engine.GameConfig, error) {
	upper, err := parseRange(rangeText)
	if err != nil {
		return engine.GameConfig{}, err
	}

	attempts, err := strconv.Atoi(strings.TrimSpace(attemptsText))
	if err != nil {
		return engine.GameConfig{}, fmt.Errorf("%w: max attempts %q is not a number", engine.ErrInvalidConfig, attemptsText)
	}

	cfg := engine.GameConfig{MaxAttempts: attempts, Range: upper, TimedMode: timed}
	if err := engine.ValidateGameConfig(cfg); err != nil {
		return engine.GameConfig{}, err
	}
	return cfg, nil
}

func parseRange(text string) (int, error) {
	text = strings.TrimSpace(text)
	if lower, upper, found := strings.Cut(text, "-"); found && lower != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(lower)); err != nil || n != 1 {
			return 0, fmt.Errorf("%w: range %q must start at 1", engine.ErrInvalidConfig, text)
		}
		text = strings.TrimSpace(upper)
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: range %q is not a number", engine.ErrInvalidConfig, text)
	}
	return n, nil
}
