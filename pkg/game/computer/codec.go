package computer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"darkconsole/pkg/engine/calendar"
)

// ErrMissingField is returned when a required field is absent from a structured save
var ErrMissingField = errors.New("missing required field")

type optionJSON struct {
	Name     string     `json:"name"`
	Action   ActionKind `json:"action"`
	Security int        `json:"security"`
}

// optionFields detects which fields a stored option carries
type optionFields struct {
	Name     *string     `json:"name"`
	Action   *ActionKind `json:"action"`
	Security *int        `json:"security"`
}

// MarshalJSON encodes the option with its action as a string id
func (o Option) MarshalJSON() ([]byte, error) {
	return json.Marshal(optionJSON{Name: o.Name, Action: o.Action, Security: o.Security})
}

// UnmarshalJSON decodes an option. Every field is required.
func (o *Option) UnmarshalJSON(data []byte) error {
	var raw optionFields
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("computer option: %w", err)
	}
	switch {
	case raw.Name == nil:
		return fmt.Errorf("computer option: %w: name", ErrMissingField)
	case raw.Action == nil:
		return fmt.Errorf("computer option: %w: action", ErrMissingField)
	case raw.Security == nil:
		return fmt.Errorf("computer option: %w: security", ErrMissingField)
	}
	*o = NewOption(*raw.Name, *raw.Action, *raw.Security)
	return nil
}

type failureJSON struct {
	Action *FailureKind `json:"action"`
}

// MarshalJSON encodes the failure with its kind as a string id
func (f Failure) MarshalJSON() ([]byte, error) {
	kind := f.Type
	return json.Marshal(failureJSON{Action: &kind})
}

// UnmarshalJSON decodes a failure. The action field is required.
func (f *Failure) UnmarshalJSON(data []byte) error {
	var raw failureJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("computer failure: %w", err)
	}
	if raw.Action == nil {
		return fmt.Errorf("computer failure: %w: action", ErrMissingField)
	}
	f.Type = *raw.Action
	return nil
}

type computerJSON struct {
	Name         string             `json:"name"`
	Mission      int                `json:"mission"`
	Security     int                `json:"security"`
	Alerts       int                `json:"alerts"`
	NextAttempt  calendar.TimePoint `json:"next_attempt"`
	Options      []Option           `json:"options"`
	Failures     []Failure          `json:"failures"`
	AccessDenied string             `json:"access_denied"`
}

// MarshalJSON encodes the full terminal state in the structured save format
func (c *Computer) MarshalJSON() ([]byte, error) {
	raw := computerJSON{
		Name:         c.Name,
		Mission:      c.MissionID,
		Security:     c.Security,
		Alerts:       c.Alerts,
		NextAttempt:  c.NextAttempt,
		Options:      c.Options(),
		Failures:     c.Failures(),
		AccessDenied: c.AccessDenied,
	}
	return json.Marshal(raw)
}

// UnmarshalJSON decodes a terminal. A JSON string holds the legacy save format and is passed to
// LoadLegacy; an object is decoded field by field. Fields missing from an object keep their
// current value, so decoding into NewComputer yields the constructor defaults.
func (c *Computer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var legacy string
		if err := json.Unmarshal(data, &legacy); err != nil {
			return fmt.Errorf("computer: %w", err)
		}
		return c.LoadLegacy(legacy)
	}

	raw := computerJSON{
		Name:         c.Name,
		Mission:      c.MissionID,
		Security:     c.Security,
		Alerts:       c.Alerts,
		NextAttempt:  c.NextAttempt,
		Options:      c.Options(),
		Failures:     c.Failures(),
		AccessDenied: c.AccessDenied,
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("computer %q: %w", raw.Name, err)
	}

	c.Name = raw.Name
	c.MissionID = raw.Mission
	c.Security = raw.Security
	c.Alerts = raw.Alerts
	c.NextAttempt = raw.NextAttempt
	c.options = raw.Options
	c.failures = raw.Failures
	c.AccessDenied = raw.AccessDenied
	return nil
}

// Decode creates a terminal from either save format
func Decode(data []byte) (*Computer, error) {
	c := NewComputer("", 0)
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Encode writes the terminal in the structured save format
func Encode(c *Computer) ([]byte, error) {
	return json.Marshal(c)
}
