// Package content loads station layouts and terminal definitions from YAML.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"darkconsole/pkg/game/computer"
)

//go:embed default_station.yaml
var defaultStation []byte

// OptionTemplate defines one option of a terminal. Security defaults to 0.
type OptionTemplate struct {
	Name     string `yaml:"name"`
	Action   string `yaml:"action"`
	Security int    `yaml:"security"`
}

// FailureTemplate defines one failure of a terminal
type FailureTemplate struct {
	Action string `yaml:"action"`
}

// Template defines a terminal
type Template struct {
	Name         string            `yaml:"name"`
	Security     int               `yaml:"security"`
	Mission      *int              `yaml:"mission"`
	AccessDenied string            `yaml:"access_denied"`
	Options      []OptionTemplate  `yaml:"options"`
	Failures     []FailureTemplate `yaml:"failures"`
}

// Build creates a terminal from the template. Unknown action ids are an error.
func (t Template) Build() (*computer.Computer, error) {
	c := computer.NewComputer(t.Name, t.Security)
	if t.Mission != nil {
		c.SetMission(*t.Mission)
	}
	if t.AccessDenied != "" {
		c.SetAccessDeniedMessage(t.AccessDenied)
	}
	for _, opt := range t.Options {
		if opt.Name == "" {
			return nil, fmt.Errorf("terminal %q: option without name", t.Name)
		}
		kind, err := computer.ParseActionKind(opt.Action)
		if err != nil {
			return nil, fmt.Errorf("terminal %q option %q: %w", t.Name, opt.Name, err)
		}
		c.AddAction(opt.Name, kind, opt.Security)
	}
	for _, f := range t.Failures {
		kind, err := computer.ParseFailureKind(f.Action)
		if err != nil {
			return nil, fmt.Errorf("terminal %q: %w", t.Name, err)
		}
		c.AddFailureKind(kind)
	}
	return c, nil
}

// Coord is a position on the station map
type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PlacedTerminal is a terminal standing on the map
type PlacedTerminal struct {
	At       Coord `yaml:"at"`
	Template `yaml:",inline"`
}

// PlacedItem is an item lying on the map
type PlacedItem struct {
	At       Coord    `yaml:"at"`
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Charges  int      `yaml:"charges"`
	Bionic   bool     `yaml:"bionic"`
	Liquid   bool     `yaml:"liquid"`
	Contents []string `yaml:"contents"`
	Source   string   `yaml:"source"`
}

// PlacedMonster is a creature standing on the map
type PlacedMonster struct {
	At   Coord  `yaml:"at"`
	Kind string `yaml:"kind"`
}

// OperatorDef describes the operator at the start of a session
type OperatorDef struct {
	At        Coord    `yaml:"at"`
	Clearance int      `yaml:"clearance"`
	Skill     int      `yaml:"skill"`
	Items     []string `yaml:"items"`
	Missions  []string `yaml:"missions"`
}

// Station is a complete station section: its map, terminals and the text they draw from
type Station struct {
	Name  string `yaml:"name"`
	Level struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
		Z int `yaml:"z"`
	} `yaml:"level"`

	Legend map[string]string `yaml:"legend"`
	Map    []string          `yaml:"map"`

	Operator  OperatorDef      `yaml:"operator"`
	Terminals []PlacedTerminal `yaml:"terminals"`
	Items     []PlacedItem     `yaml:"items"`
	Monsters  []PlacedMonster  `yaml:"monsters"`

	Snippets map[string][]string `yaml:"snippets"`
	// MissionItems maps mission ids to the item their software downloads produce
	MissionItems  map[int]string    `yaml:"mission_items"`
	ItemTemplates []string          `yaml:"item_templates"`
	Overmap       map[string]string `yaml:"overmap"`
}

// Validate ensures the station meets required structure
func (s *Station) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("station.name is required")
	}
	if len(s.Map) == 0 {
		return fmt.Errorf("station %s: map is required", s.Name)
	}
	width := len(s.Map[0])
	for i, row := range s.Map {
		if len(row) != width {
			return fmt.Errorf("station %s: map row %d has width %d, want %d", s.Name, i, len(row), width)
		}
		for _, ch := range row {
			if _, ok := s.Legend[string(ch)]; !ok {
				return fmt.Errorf("station %s: map row %d uses %q which is not in the legend", s.Name, i, ch)
			}
		}
	}
	inside := func(c Coord) bool {
		return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < len(s.Map)
	}
	if !inside(s.Operator.At) {
		return fmt.Errorf("station %s: operator is outside the map", s.Name)
	}
	for _, t := range s.Terminals {
		if !inside(t.At) {
			return fmt.Errorf("station %s: terminal %q is outside the map", s.Name, t.Name)
		}
	}
	for _, it := range s.Items {
		if !inside(it.At) || it.ID == "" {
			return fmt.Errorf("station %s: invalid item %q", s.Name, it.ID)
		}
	}
	for _, m := range s.Monsters {
		if !inside(m.At) || m.Kind == "" {
			return fmt.Errorf("station %s: invalid monster %q", s.Name, m.Kind)
		}
	}
	return nil
}

// FromYAML parses and validates a station from raw YAML bytes
func FromYAML(data []byte) (*Station, error) {
	var st Station
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("invalid station yaml: %w", err)
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}
	return &st, nil
}

// FromFile reads a station from the given path
func FromFile(path string) (*Station, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}

// Default returns the station shipped with the game
func Default() *Station {
	st, err := FromYAML(defaultStation)
	if err != nil {
		panic(fmt.Sprintf("default station: %v", err))
	}
	return st
}

// LoadTemplates parses a YAML list of terminal templates
func LoadTemplates(data []byte) ([]Template, error) {
	var out []Template
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("invalid terminal yaml: %w", err)
	}
	return out, nil
}
