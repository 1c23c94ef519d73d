package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"darkconsole/pkg/engine/calendar"
	"darkconsole/pkg/game/computer"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("DARKCONSOLE_ACTION_MOVE_COST", "12")
	t.Setenv("DARKCONSOLE_SAVE_PATH", "/tmp/terminals.db")
	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ActionMoveCost != 12 || cfg.SavePath != "/tmp/terminals.db" {
		t.Errorf("Load() = %+v, want env overrides", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "darkconsole.yaml")
	data := "failure-cooldown-minutes: 5\nhack-move-cost: 3\nseed: 42\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FailureCooldownMinutes != 5 || cfg.HackMoveCost != 3 || cfg.Seed != 42 {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.ActionMoveCost != computer.DefaultActionMoveCost {
		t.Errorf("ActionMoveCost = %d, want the default", cfg.ActionMoveCost)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing file) error = nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		want   string
	}{
		{"negative cooldown", func(c *Config) { c.FailureCooldownMinutes = -1 }, KeyFailureCooldown},
		{"negative move cost", func(c *Config) { c.ActionMoveCost = -1 }, KeyActionMoveCost},
		{"negative hack cost", func(c *Config) { c.HackMoveCost = -1 }, KeyHackMoveCost},
		{"no save path", func(c *Config) { c.SavePath = "" }, KeySavePath},
		{"negative width", func(c *Config) { c.Width = -3 }, KeyWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want an error about %s", err, tt.want)
			}
		})
	}
}

func TestEngineAndSession(t *testing.T) {
	c := Default()
	c.ActionMoveCost = 7
	c.FailureCooldownMinutes = 2
	c.HackMoveCost = 4
	c.Seed = 9

	e := c.Engine(c.Rand())
	if e.ActionMoveCost != 7 || e.FailureCooldown != calendar.Minutes(2) {
		t.Errorf("Engine() = %+v", e)
	}
	if s := c.Session(e, computer.NewComputer("T", 0), nil); s.HackMoveCost != 4 {
		t.Errorf("HackMoveCost = %d, want 4", s.HackMoveCost)
	}
}

func TestRandSeeded(t *testing.T) {
	c := Default()
	c.Seed = 11
	if a, b := c.Rand().Int63(), c.Rand().Int63(); a != b {
		t.Errorf("seeded sources differ: %d, %d", a, b)
	}
}
