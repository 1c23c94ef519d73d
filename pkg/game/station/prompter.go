package station

import (
	"io"
	"time"

	"darkconsole/pkg/engine/input"
)

// Prompter answers the console's blocking prompts
type Prompter interface {
	// ReadKey waits for a single key press
	ReadKey() (input.Intent, error)
	// ReadLine reads a whole line of text
	ReadLine() (string, error)
}

// StdinPrompter reads keys and lines from the process's standard input
type StdinPrompter struct{}

// ReadKey reads one key in raw mode and maps it to an intent
func (StdinPrompter) ReadKey() (input.Intent, error) {
	b, err := input.ReadKey()
	if err != nil {
		return input.Intent{}, err
	}
	raw := input.RawInput{Device: input.DeviceTerminal, Code: input.KeyCode(b), Timestamp: time.Now()}
	return input.MapToIntent(input.NewDebouncedInput(raw)), nil
}

// ReadLine reads a line from stdin
func (StdinPrompter) ReadLine() (string, error) {
	return input.GetInput()
}

// Scripted answers prompts from fixed lists of key codes and lines. When a list runs out
// io.EOF is returned.
type Scripted struct {
	Keys  []string
	Lines []string
}

// NewScripted creates a scripted prompter pressing the given keys in order
func NewScripted(keys ...string) *Scripted {
	return &Scripted{Keys: keys}
}

// ReadKey returns the intent of the next scripted key
func (s *Scripted) ReadKey() (input.Intent, error) {
	if len(s.Keys) == 0 {
		return input.Intent{}, io.EOF
	}
	code := s.Keys[0]
	s.Keys = s.Keys[1:]
	raw := input.RawInput{Device: input.DeviceScript, Code: code}
	return input.MapToIntent(input.NewDebouncedInput(raw)), nil
}

// ReadLine returns the next scripted line
func (s *Scripted) ReadLine() (string, error) {
	if len(s.Lines) == 0 {
		return "", io.EOF
	}
	line := s.Lines[0]
	s.Lines = s.Lines[1:]
	return line, nil
}
