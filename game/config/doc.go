// Package config provides difficulty presets for the number guessing game.
//
// The config package handles:
//   - The built-in Easy, Medium and Hard presets
//   - Loading additional or overriding presets from a YAML file
//   - Preset validation
//   - Turning menu choices and custom range/attempt text into a round config
//
// Presets File Format:
//
//	presets:
//	  - key: "1"
//	    name: Easy
//	    max_attempts: 20
//	    range: 50
//	  - key: "5"
//	    name: Insane
//	    max_attempts: 3
//	    range: 1000
//
// Key "4" is reserved for the custom difficulty, where the player types the
// range and attempt budget.
//
// Usage:
//
//	manager := config.NewManager()
//	if err := manager.LoadFile("presets.yaml"); err != nil {
//		log.Fatal(err)
//	}
//
//	preset, err := manager.Resolve("2")
//	if errors.Is(err, config.ErrUnknownPreset) {
//		preset = manager.Default()
//	}
//
// Invalid menu input is never fatal: callers fall back to Default (Medium).
package config
