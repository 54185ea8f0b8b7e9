package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/mcp-training/guessnumber/game/engine"
)

var (
	ErrUnknownPreset = errors.New("unknown difficulty preset")
	ErrInvalidPreset = errors.New("invalid difficulty preset")
)

const (
	// CustomKey selects the custom difficulty in the menu
	CustomKey = "4"
	// DefaultKey is the preset used whenever input cannot be understood
	DefaultKey = "2"
)

// Preset is a named difficulty level
type Preset struct {
	Key         string `yaml:"key" json:"key"`
	Name        string `yaml:"name" json:"name"`
	MaxAttempts int    `yaml:"max_attempts" json:"max_attempts"`
	Range       int    `yaml:"range" json:"range"`
}

// GameConfig returns the round configuration for the preset
func (p Preset) GameConfig(timed bool) engine.GameConfig {
	return engine.GameConfig{MaxAttempts: p.MaxAttempts, Range: p.Range, TimedMode: timed}
}

// Label renders the menu line text, e.g. "Easy (15 attempts, 1-50 range)"
func (p Preset) Label() string {
	return fmt.Sprintf("%s (%d attempts, 1-%d range)", p.Name, p.MaxAttempts, p.Range)
}

// presetsFile mirrors the YAML layout of a presets file
type presetsFile struct {
	Presets []Preset `yaml:"presets"`
}

// Manager holds the available presets
type Manager struct {
	presets map[string]Preset
	mu      sync.RWMutex
}

// NewManager creates a manager with the built-in presets
func NewManager() *Manager {
	m := &Manager{presets: make(map[string]Preset)}
	for _, p := range builtinPresets() {
		m.presets[p.Key] = p
	}
	return m
}

func builtinPresets() []Preset {
	return []Preset{
		{Key: "1", Name: "Easy", MaxAttempts: 15, Range: 50},
		{Key: "2", Name: "Medium", MaxAttempts: 10, Range: 100},
		{Key: "3", Name: "Hard", MaxAttempts: 5, Range: 200},
	}
}

// LoadFile reads presets from a YAML file and merges them over the current set
func (m *Manager) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read presets file: %w", err)
	}
	return m.Load(data)
}

// Load parses YAML preset data and merges it over the current set. Nothing is
// applied unless every preset in data is valid.
func (m *Manager) Load(data []byte) error {
	var file presetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse presets: %w", err)
	}

	seen := make(map[string]bool)
	for i, p := range file.Presets {
		if err := ValidatePreset(p); err != nil {
			return fmt.Errorf("preset %d: %w", i+1, err)
		}
		if seen[p.Key] {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidPreset, p.Key)
		}
		seen[p.Key] = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range file.Presets {
		m.presets[strings.TrimSpace(p.Key)] = p
	}
	return nil
}

// ValidatePreset checks a single preset
func ValidatePreset(p Preset) error {
	key := strings.TrimSpace(p.Key)
	if key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidPreset)
	}
	if key != p.Key {
		return fmt.Errorf("%w: key %q has surrounding whitespace", ErrInvalidPreset, p.Key)
	}
	if key == CustomKey {
		return fmt.Errorf("%w: key %q is reserved for custom difficulty", ErrInvalidPreset, CustomKey)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required for key %q", ErrInvalidPreset, key)
	}
	if err := engine.ValidateGameConfig(p.GameConfig(false)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}
	return nil
}

// Presets returns all presets ordered by key (numerically where possible)
func (m *Manager) Presets() []Preset {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Preset, 0, len(m.presets))
	for _, p := range m.presets {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		a, errA := strconv.Atoi(result[i].Key)
		b, errB := strconv.Atoi(result[j].Key)
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return result[i].Key < result[j].Key
		}
	})
	return result
}

// Lookup returns the preset registered under key
func (m *Manager) Lookup(key string) (Preset, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.presets[strings.TrimSpace(key)]
	return p, ok
}

// LookupName finds a preset by its display name, ignoring case
func (m *Manager) LookupName(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range m.Presets() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Resolve maps a menu choice (key or name) to a preset
func (m *Manager) Resolve(choice string) (Preset, error) {
	if p, ok := m.Lookup(choice); ok {
		return p, nil
	}
	if p, ok := m.LookupName(choice); ok {
		return p, nil
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, strings.TrimSpace(choice))
}

// Default returns the fallback preset (Medium unless overridden by a file)
func (m *Manager) Default() Preset {
	if p, ok := m.Lookup(DefaultKey); ok {
		return p
	}
	return builtinPresets()[1]
}
