// Package config loads host scenario files describing a session: who plays,
// which expansions are on, and the seed.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ruinedsnowyday/reinforcing-mars/engine"
)

// Scenario is one session description as read from YAML.
type Scenario struct {
	Players []string      `yaml:"players"`
	Seed    uint64        `yaml:"seed"`
	Rules   engine.Config `yaml:"rules"`

	// MaxGenerations caps a simulated playout; 0 means no cap.
	MaxGenerations uint32 `yaml:"max_generations"`
}

// Default returns a two-player scenario with the default rules.
func Default() Scenario {
	return Scenario{
		Players: []string{"Player 1", "Player 2"},
		Seed:    1,
		Rules:   engine.DefaultConfig(),
	}
}

// Load reads and validates a scenario file.
func Load(path string) (Scenario, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the scenario is playable.
func (s Scenario) Validate() error {
	if len(s.Players) == 0 || len(s.Players) > engine.MaxPlayers {
		return fmt.Errorf("player count %d outside 1..%d", len(s.Players), engine.MaxPlayers)
	}
	seen := make(map[string]bool, len(s.Players))
	for _, name := range s.Players {
		if name == "" {
			return fmt.Errorf("empty player name")
		}
		if seen[name] {
			return fmt.Errorf("duplicate player name %q", name)
		}
		seen[name] = true
	}
	return nil
}

// NewGame builds an engine session from the scenario.
func (s Scenario) NewGame() (*engine.Game, error) {
	return engine.NewGame(s.Seed, s.Players, s.Rules)
}
