package computer

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"darkconsole/pkg/engine/calendar"
)

// Default engine tuning
const (
	DefaultActionMoveCost = 30
	DefaultFailureMinutes = 45
)

// errCancelled is returned by an effect when the operator declines a confirmation
var errCancelled = errors.New("cancelled by operator")

// Outcome is the result of executing a terminal action
type Outcome int

// Action outcomes
const (
	OutcomeDone Outcome = iota
	OutcomeUnavailable
	OutcomeDenied
	OutcomeCancelled
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDone:
		return "done"
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeDenied:
		return "denied"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Engine executes terminal actions and failures against a world
type Engine struct {
	// Rand is the random source; the process wide source is used when nil
	Rand *rand.Rand

	ActionMoveCost  int
	FailureCooldown calendar.Duration
}

// NewEngine creates an engine with the default tuning
func NewEngine(r *rand.Rand) *Engine {
	return &Engine{
		Rand:            r,
		ActionMoveCost:  DefaultActionMoveCost,
		FailureCooldown: calendar.Minutes(DefaultFailureMinutes),
	}
}

func (e *Engine) intn(n int) int {
	if n <= 0 {
		return 0
	}
	if e.Rand != nil {
		return e.Rand.Intn(n)
	}
	return rand.Intn(n)
}

// rng returns a random integer in [lo, hi]
func (e *Engine) rng(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + e.intn(hi-lo+1)
}

func (e *Engine) oneIn(n int) bool {
	return n <= 1 || e.intn(n) == 0
}

// Execute runs the action of kind on terminal c. The option has to be offered by the terminal and
// the operator's clearance has to reach its security level.
func (e *Engine) Execute(c *Computer, w World, kind ActionKind) Outcome {
	opt, ok := c.FindOption(kind)
	if !ok {
		w.Diagnostic(fmt.Sprintf("computer %q does not offer %s", c.Name, kind))
		return OutcomeUnavailable
	}
	if w.Operator().Clearance() < opt.Security {
		w.PrintError("%s", c.AccessDenied)
		return OutcomeDenied
	}
	return e.run(c, w, kind)
}

// ExecuteBypass runs the action of kind without checking the option registry or clearance.
// It is used after a successful forced access.
func (e *Engine) ExecuteBypass(c *Computer, w World, kind ActionKind) Outcome {
	return e.run(c, w, kind)
}

func (e *Engine) run(c *Computer, w World, kind ActionKind) Outcome {
	if !kind.Valid() && kind != NumActions {
		w.Diagnostic(fmt.Sprintf("computer %q: %v: %d", c.Name, ErrUnknownAction, int(kind)))
		return OutcomeFailed
	}

	w.Operator().SpendMoves(e.ActionMoveCost)
	if kind == NumActions {
		return OutcomeDone
	}

	err := actionEffects[kind](e, c, w)
	switch {
	case err == nil:
		return OutcomeDone
	case errors.Is(err, errCancelled):
		return OutcomeCancelled
	default:
		w.Diagnostic(fmt.Sprintf("computer %q: %s: %v", c.Name, kind, err))
		return OutcomeFailed
	}
}

// dynamicGet looks up translation keys chosen at runtime. Calling through a variable keeps
// go vet from treating the key as a constant format string.
var dynamicGet = gotext.Get

// pressAnyKey is the usual prompt closing an action
func pressAnyKey() string {
	return gotext.Get("Press any key...")
}

func pressAnyKeyToContinue() string {
	return gotext.Get("Press any key to continue...")
}
