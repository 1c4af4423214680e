// Package genconfig loads the YAML-serializable generation configuration
// and converts it into the internal/settings.Settings the generator
// consumes (spec §6 "Input: Settings").
package genconfig

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/owowisp/mosswright/internal/generrors"
	"github.com/owowisp/mosswright/internal/settings"
)

// WorldConfig is the YAML shape of settings.WorldSettings.
type WorldConfig struct {
	Difficulty string   `yaml:"difficulty,omitempty" json:"difficulty,omitempty"`
	Tricks     []string `yaml:"tricks,omitempty" json:"tricks,omitempty"`
	Hard       bool     `yaml:"hard,omitempty" json:"hard,omitempty"`
	Goals      []string `yaml:"goals,omitempty" json:"goals,omitempty"`
	Spawn      string   `yaml:"spawn,omitempty" json:"spawn,omitempty"`
	SpawnName  string   `yaml:"spawnName,omitempty" json:"spawnName,omitempty"`
}

// Config is the top-level YAML configuration document (spec §6). It
// mirrors settings.Settings field for field, but keeps every enum as a
// string so it round-trips through YAML without a custom unmarshaler per
// type.
type Config struct {
	// Seed is the master seed string for deterministic generation. Unlike
	// the teacher's uint64 seed, this generator derives an RNG straight
	// from the seed's bytes (MasterSeed below) rather than requiring a
	// numeric seed in the document — an empty Seed is a config error, not
	// an auto-generate trigger, since a non-deterministic fallback would
	// violate the determinism invariant this generator guarantees.
	Seed string `yaml:"seed" json:"seed"`

	Difficulty string   `yaml:"difficulty" json:"difficulty"`
	Tricks     []string `yaml:"tricks,omitempty" json:"tricks,omitempty"`
	Hard       bool     `yaml:"hard,omitempty" json:"hard,omitempty"`
	Goals      []string `yaml:"goals,omitempty" json:"goals,omitempty"`
	Spawn      string   `yaml:"spawn,omitempty" json:"spawn,omitempty"`
	SpawnName  string   `yaml:"spawnName,omitempty" json:"spawnName,omitempty"`

	WorldCount uint32        `yaml:"worldCount" json:"worldCount"`
	PerWorld   []WorldConfig `yaml:"perWorld,omitempty" json:"perWorld,omitempty"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, generrors.ConfigWrap(err, "reading config file %q", path)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice. Useful
// for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, generrors.ConfigWrap(err, "parsing YAML config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, generrors.ConfigWrap(err, "validating config")
	}
	return &cfg, nil
}

// Validate checks the document for malformed enum names and structural
// errors that would otherwise surface later as a ToSettings failure.
func (c *Config) Validate() error {
	if c.Seed == "" {
		return fmt.Errorf("seed must not be empty")
	}
	if c.WorldCount == 0 {
		return fmt.Errorf("worldCount must be at least 1")
	}
	if len(c.PerWorld) != 0 && uint32(len(c.PerWorld)) != c.WorldCount {
		return fmt.Errorf("perWorld has %d entries, want %d (worldCount)", len(c.PerWorld), c.WorldCount)
	}
	if _, err := settings.ParseDifficulty(c.Difficulty); err != nil {
		return err
	}
	if c.Spawn != "" {
		if _, err := settings.ParseSpawnMode(c.Spawn); err != nil {
			return err
		}
	}
	for _, g := range c.Goals {
		if _, err := settings.ParseGoal(g); err != nil {
			return err
		}
	}
	for i, w := range c.PerWorld {
		if err := w.validate(); err != nil {
			return fmt.Errorf("perWorld[%d]: %w", i, err)
		}
	}
	return nil
}

func (w *WorldConfig) validate() error {
	if w.Difficulty != "" {
		if _, err := settings.ParseDifficulty(w.Difficulty); err != nil {
			return err
		}
	}
	if w.Spawn != "" {
		if _, err := settings.ParseSpawnMode(w.Spawn); err != nil {
			return err
		}
	}
	for _, g := range w.Goals {
		if _, err := settings.ParseGoal(g); err != nil {
			return err
		}
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, used as the
// configHash input to seedrng.New so that two documents differing only in
// an unrelated field never collide on the same per-stage RNG seed.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		h.Write([]byte(c.Seed))
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// MasterSeed derives the uint64 master seed seedrng.New expects from the
// document's seed string, so authors can write a memorable string seed
// (spec §6 "seed: a string or numeric value") instead of a raw integer.
func (c *Config) MasterSeed() uint64 {
	h := sha256.Sum256([]byte(c.Seed))
	return binary.BigEndian.Uint64(h[:8])
}

// ToSettings converts the YAML document into the settings.Settings the
// generator consumes, resolving every string enum and failing closed on an
// unknown name.
func (c *Config) ToSettings() (*settings.Settings, error) {
	diff, err := settings.ParseDifficulty(c.Difficulty)
	if err != nil {
		return nil, err
	}
	spawn := settings.SpawnDefault
	if c.Spawn != "" {
		spawn, err = settings.ParseSpawnMode(c.Spawn)
		if err != nil {
			return nil, err
		}
	}
	goals, err := parseGoals(c.Goals)
	if err != nil {
		return nil, err
	}

	perWorld := make([]settings.WorldSettings, len(c.PerWorld))
	for i, w := range c.PerWorld {
		ws, err := w.toWorldSettings(diff, spawn, c.SpawnName, goals, c.Hard)
		if err != nil {
			return nil, fmt.Errorf("perWorld[%d]: %w", i, err)
		}
		perWorld[i] = ws
	}

	s := &settings.Settings{
		Difficulty: diff,
		Tricks:     settings.NewTrickSet(toTricks(c.Tricks)...),
		Hard:       c.Hard,
		Goals:      goals,
		Spawn:      spawn,
		SpawnName:  c.SpawnName,
		WorldCount: c.WorldCount,
		Seed:       c.Seed,
		PerWorld:   perWorld,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (w *WorldConfig) toWorldSettings(baseDiff settings.Difficulty, baseSpawn settings.SpawnMode, baseSpawnName string, baseGoals []settings.Goal, baseHard bool) (settings.WorldSettings, error) {
	diff := baseDiff
	if w.Difficulty != "" {
		d, err := settings.ParseDifficulty(w.Difficulty)
		if err != nil {
			return settings.WorldSettings{}, err
		}
		diff = d
	}
	spawn := baseSpawn
	spawnName := baseSpawnName
	if w.Spawn != "" {
		sp, err := settings.ParseSpawnMode(w.Spawn)
		if err != nil {
			return settings.WorldSettings{}, err
		}
		spawn = sp
		spawnName = w.SpawnName
	}
	goals := baseGoals
	if len(w.Goals) > 0 {
		g, err := parseGoals(w.Goals)
		if err != nil {
			return settings.WorldSettings{}, err
		}
		goals = g
	}
	var tricks settings.TrickSet
	if len(w.Tricks) > 0 {
		tricks = settings.NewTrickSet(toTricks(w.Tricks)...)
	}
	hard := baseHard || w.Hard
	return settings.WorldSettings{
		Difficulty: diff,
		Tricks:     tricks,
		Hard:       hard,
		Goals:      goals,
		Spawn:      spawn,
		SpawnName:  spawnName,
	}, nil
}

func parseGoals(names []string) ([]settings.Goal, error) {
	out := make([]settings.Goal, len(names))
	for i, n := range names {
		g, err := settings.ParseGoal(n)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return out, nil
}

func toTricks(names []string) []settings.Trick {
	out := make([]settings.Trick, len(names))
	for i, n := range names {
		out[i] = settings.Trick(n)
	}
	return out
}
