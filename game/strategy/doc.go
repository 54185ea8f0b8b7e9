// Package strategy plays rounds automatically through a service.GameService.
//
// Bisect halves the candidate interval after every feedback, so a round with
// at least ceil(log2(range+1)) attempts is always won. The autoplay command
// uses it to exercise the game end to end without a human at the keyboard.
package strategy
