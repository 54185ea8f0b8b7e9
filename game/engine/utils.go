package engine

// HintBounds returns the window of HintSpread around secret, clamped to [1, upper]
func HintBounds(secret, upper int) (low, high int) {
	return max(1, secret-HintSpread), min(upper, secret+HintSpread)
}

// TimeBonus returns the bonus a win earns after elapsedSeconds. A normal round
// qualifies at exactly TimeLimitSeconds, a timed one does not.
func TimeBonus(timedMode bool, elapsedSeconds int) int {
	if timedMode {
		if elapsedSeconds < TimeLimitSeconds {
			return TimedWinBonus
		}
		return 0
	}
	if elapsedSeconds <= TimeLimitSeconds {
		return QuickWinBonus
	}
	return 0
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
