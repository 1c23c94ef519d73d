// Package computer implements in-world computer terminals: the options a terminal offers, the
// failures it inflicts on unauthorized access, action dispatch and the terminal save format.
package computer

import (
	"github.com/leonelquinteros/gotext"

	"darkconsole/pkg/engine/calendar"
)

// NoMission is the MissionID of a terminal that is not tied to a mission
const NoMission = -1

// Option is an action offered by a terminal, gated by a required security level
type Option struct {
	Name     string
	Action   ActionKind
	Security int
}

// NewOption creates a new option
func NewOption(name string, action ActionKind, security int) Option {
	return Option{Name: name, Action: action, Security: security}
}

// Failure is an adverse outcome a terminal may inflict when an access attempt fails
type Failure struct {
	Type FailureKind
}

// Computer represents an interactive terminal placed in the world
type Computer struct {
	Name      string
	MissionID int // Mission this terminal belongs to, NoMission if none
	Security  int // Clearance needed to log in
	Alerts    int // Number of suspicious accesses logged so far

	// NextAttempt is the earliest time another automatic failure may be triggered
	NextAttempt calendar.TimePoint

	// AccessDenied is shown when access is refused
	AccessDenied string

	options  []Option
	failures []Failure
}

// DefaultAccessDenied returns the stock access denied message
func DefaultAccessDenied() string {
	return gotext.Get("ERROR!  Access denied!")
}

// NewComputer creates a new terminal without options or failures
func NewComputer(name string, security int) *Computer {
	return &Computer{
		Name:         name,
		MissionID:    NoMission,
		Security:     security,
		NextAttempt:  calendar.BeforeTimeStarts,
		AccessDenied: DefaultAccessDenied(),
	}
}

// SetSecurity changes the clearance needed to log in
func (c *Computer) SetSecurity(security int) {
	c.Security = security
}

// SetMission ties the terminal to a mission
func (c *Computer) SetMission(id int) {
	c.MissionID = id
}

// SetAccessDeniedMessage overrides the access denied message
func (c *Computer) SetAccessDeniedMessage(msg string) {
	c.AccessDenied = msg
}

// AddOption appends an option. Duplicate actions are allowed.
func (c *Computer) AddOption(opt Option) {
	c.options = append(c.options, opt)
}

// AddAction appends an option built from its parts
func (c *Computer) AddAction(name string, action ActionKind, security int) {
	c.AddOption(NewOption(name, action, security))
}

// RemoveOption removes the first option with the given action; later duplicates stay
func (c *Computer) RemoveOption(action ActionKind) {
	for i, opt := range c.options {
		if opt.Action == action {
			c.options = append(c.options[:i], c.options[i+1:]...)
			return
		}
	}
}

// ClearOptions removes every option, disabling the terminal
func (c *Computer) ClearOptions() {
	c.options = nil
}

// Options returns the options in menu order
func (c *Computer) Options() []Option {
	out := make([]Option, len(c.options))
	copy(out, c.options)
	return out
}

// FindOption returns the first option with the given action
func (c *Computer) FindOption(action ActionKind) (Option, bool) {
	for _, opt := range c.options {
		if opt.Action == action {
			return opt, true
		}
	}
	return Option{}, false
}

// AddFailure appends a failure to the failure table
func (c *Computer) AddFailure(f Failure) {
	c.failures = append(c.failures, f)
}

// AddFailureKind appends a failure of the given kind
func (c *Computer) AddFailureKind(kind FailureKind) {
	c.AddFailure(Failure{Type: kind})
}

// Failures returns the failure table
func (c *Computer) Failures() []Failure {
	out := make([]Failure, len(c.failures))
	copy(out, c.failures)
	return out
}

// FailureReady returns true if the failure cooldown has elapsed at time now
func (c *Computer) FailureReady(now calendar.TimePoint) bool {
	return !now.Before(c.NextAttempt)
}
