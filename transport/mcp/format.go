package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/guessnumber/game/engine"
	"github.com/wricardo/mcp-training/guessnumber/game/leaderboard"
	"github.com/wricardo/mcp-training/guessnumber/game/service"
)

func formatRoundStarted(round *service.RoundInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Round started for %s (id %s)\n", round.Player, round.ID)
	fmt.Fprintf(&b, "Guess a number between 1 and %d. You have %d attempts.\n", round.Config.Range, round.Config.MaxAttempts)
	if round.Config.TimedMode {
		fmt.Fprintf(&b, "Timed mode: %d seconds.\n", engine.TimeLimitSeconds)
	}
	fmt.Fprintf(&b, "Score: %d\n", round.State.Score)
	return b.String()
}

func formatRound(round *service.RoundInfo) string {
	state := round.State
	var b strings.Builder
	fmt.Fprintf(&b, "Player: %s\n", round.Player)
	fmt.Fprintf(&b, "Range: 1-%d | Attempts remaining: %d/%d | Score: %d\n",
		state.Range, state.AttemptsRemaining, state.MaxAttempts, state.Score)
	fmt.Fprintf(&b, "Hint used: %t\n", state.HintUsed)
	if state.TimedMode {
		fmt.Fprintf(&b, "Time remaining: %d seconds.\n", round.TimeRemaining)
	}
	fmt.Fprintf(&b, "Guesses: %s\n", formatInts(state.GuessHistory))
	fmt.Fprintf(&b, "Status: %s\n", state.Outcome)
	return b.String()
}

func formatNoRound(history []*service.RoundInfo) string {
	if len(history) == 0 {
		return "No active round. Call start_game to play.\n"
	}
	last := history[len(history)-1]
	return fmt.Sprintf("No active round. Last round (%s): %s, secret %d, score %d.\n",
		last.Player, last.State.Outcome, last.Secret, last.State.Score)
}

func formatTurn(result *service.TurnResult) string {
	var b strings.Builder

	switch result.Kind {
	case service.TurnTimeout:
		b.WriteString("Time's up! You ran out of time.\n")
	case service.TurnHint:
		fmt.Fprintf(&b, "Hint: The number is between %d and %d.\n", result.HintLow, result.HintHigh)
		fmt.Fprintf(&b, "You used a hint! %d points deducted from your score.\n", engine.HintCost)
	case service.TurnGuess:
		switch result.Feedback {
		case engine.Correct:
			fmt.Fprintf(&b, "Congratulations! You've guessed the correct number: %d!\n", result.Secret)
			fmt.Fprintf(&b, "You took %d seconds to guess the number.\n", result.ElapsedSeconds)
		case engine.TooLow:
			b.WriteString("Too low!\n")
		case engine.TooHigh:
			b.WriteString("Too high!\n")
		}
	}

	if result.Outcome == engine.LostByAttempts {
		fmt.Fprintf(&b, "Game Over! The correct number was: %d\n", result.Secret)
	} else if result.Outcome == engine.LostByTimeout {
		fmt.Fprintf(&b, "The correct number was: %d\n", result.Secret)
	}

	fmt.Fprintf(&b, "Attempts remaining: %d\n", result.AttemptsRemaining)
	if result.Finished {
		fmt.Fprintf(&b, "Final score: %d\n", result.Score)
	} else {
		fmt.Fprintf(&b, "Score: %d\n", result.Score)
		if result.TimeRemaining >= 0 {
			fmt.Fprintf(&b, "Time remaining: %d seconds.\n", result.TimeRemaining)
		}
	}
	fmt.Fprintf(&b, "Guesses: %s\n", formatInts(result.GuessHistory))
	return b.String()
}

func formatLeaderboard(snap leaderboard.Snapshot) string {
	var b strings.Builder
	b.WriteString("Leaderboard:\n")
	if len(snap.Players) == 0 {
		b.WriteString("(no wins yet)\n")
	}
	for _, p := range snap.Players {
		fmt.Fprintf(&b, "%s: %s\n", p.Player, formatInts(p.Scores))
	}
	fmt.Fprintf(&b, "Total games played: %d\n", snap.TotalGamesPlayed)
	fmt.Fprintf(&b, "Total games won: %d\n", snap.TotalGamesWon)
	return b.String()
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
