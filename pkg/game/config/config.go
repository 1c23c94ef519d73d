package config

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/viper"

	"darkconsole/pkg/engine/calendar"
	"darkconsole/pkg/game/computer"
)

// EnvPrefix is the prefix of the environment variables overriding config keys
const EnvPrefix = "DARKCONSOLE"

// Config keys
const (
	KeyFailureCooldown = "failure-cooldown-minutes"
	KeyActionMoveCost  = "action-move-cost"
	KeyHackMoveCost    = "hack-move-cost"
	KeySavePath        = "save-path"
	KeyStation         = "station"
	KeySeed            = "seed"
	KeyWidth           = "width"
)

// Config holds the tuning of the terminal engine and the paths the CLI works with
type Config struct {
	FailureCooldownMinutes int    `mapstructure:"failure-cooldown-minutes"`
	ActionMoveCost         int    `mapstructure:"action-move-cost"`
	HackMoveCost           int    `mapstructure:"hack-move-cost"`
	SavePath               string `mapstructure:"save-path"`
	Station                string `mapstructure:"station"` // empty means the built in station
	Seed                   int64  `mapstructure:"seed"`    // 0 seeds from the clock
	Width                  int    `mapstructure:"width"`   // 0 asks the terminal
}

// SetDefaults registers the default value of every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyFailureCooldown, computer.DefaultFailureMinutes)
	v.SetDefault(KeyActionMoveCost, computer.DefaultActionMoveCost)
	v.SetDefault(KeyHackMoveCost, computer.DefaultHackMoveCost)
	v.SetDefault(KeySavePath, "darkconsole.db")
	v.SetDefault(KeyStation, "")
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyWidth, 0)
}

// Load reads the config from v. Environment variables prefixed with DARKCONSOLE_ override the
// defaults, and file is read first when set.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the default config
func Default() *Config {
	return &Config{
		FailureCooldownMinutes: computer.DefaultFailureMinutes,
		ActionMoveCost:         computer.DefaultActionMoveCost,
		HackMoveCost:           computer.DefaultHackMoveCost,
		SavePath:               "darkconsole.db",
	}
}

// Validate ensures the values are usable
func (c *Config) Validate() error {
	if c.FailureCooldownMinutes < 0 {
		return fmt.Errorf("config.%s must not be negative", KeyFailureCooldown)
	}
	if c.ActionMoveCost < 0 {
		return fmt.Errorf("config.%s must not be negative", KeyActionMoveCost)
	}
	if c.HackMoveCost < 0 {
		return fmt.Errorf("config.%s must not be negative", KeyHackMoveCost)
	}
	if c.SavePath == "" {
		return fmt.Errorf("config.%s is required", KeySavePath)
	}
	if c.Width < 0 {
		return fmt.Errorf("config.%s must not be negative", KeyWidth)
	}
	return nil
}

// Rand returns a random source seeded from Seed, or from the clock when Seed is 0
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Engine creates a terminal engine with the configured tuning
func (c *Config) Engine(r *rand.Rand) *computer.Engine {
	e := computer.NewEngine(r)
	e.ActionMoveCost = c.ActionMoveCost
	e.FailureCooldown = calendar.Minutes(c.FailureCooldownMinutes)
	return e
}

// Session creates a session on terminal t with the configured hack cost
func (c *Config) Session(e *computer.Engine, t *computer.Computer, w computer.World) *computer.Session {
	s := computer.NewSession(e, t, w)
	s.HackMoveCost = c.HackMoveCost
	return s
}
