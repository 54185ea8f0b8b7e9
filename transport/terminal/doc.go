// Package terminal runs the interactive number guessing game on a line
// oriented console.
//
// The Driver owns all dialogue: it asks for the player name, the difficulty
// and the timed mode, then feeds each typed line to a service.GameService and
// renders the TurnResult it gets back. The driver never touches round state
// directly, so the same service can sit behind other front ends.
//
// Colors are optional. A Palette built with NewPalette(false) renders plain
// text, which is what tests and non-terminal stdout use.
//
// Usage:
//
//	driver := terminal.NewDriver(gameService, presets, os.Stdin, os.Stdout,
//		terminal.WithPalette(terminal.NewPalette(true)),
//	)
//	if err := driver.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package terminal
