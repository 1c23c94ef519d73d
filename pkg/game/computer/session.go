package computer

import "github.com/leonelquinteros/gotext"

// DefaultHackMoveCost is the base move cost of a forced access attempt
const DefaultHackMoveCost = 10

// Session is one use of a terminal by the operator: login, the root menu and forced access
// attempts for options above the operator's clearance.
type Session struct {
	Engine   *Engine
	Computer *Computer
	World    World

	// HackMoveCost scales the moves spent on each forced access attempt
	HackMoveCost int
}

// NewSession creates a session on terminal c
func NewSession(e *Engine, c *Computer, w World) *Session {
	return &Session{Engine: e, Computer: c, World: w, HackMoveCost: DefaultHackMoveCost}
}

// dice rolls n dice with the given number of sides and returns the sum
func (e *Engine) dice(n, sides int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += e.rng(1, sides)
	}
	return total
}

// Hack makes a forced access attempt against the given security level. Each attempt costs moves,
// fewer for a more skilled operator, and the operator's computer skill is rolled against the
// security level.
func (s *Session) Hack(security int) bool {
	op := s.World.Operator()
	op.SpendMoves(s.HackMoveCost * (5 + security*2) / max(1, op.ComputerSkill()+1))
	return s.Engine.dice(op.ComputerSkill(), 6) >= s.Engine.dice(security, 6)
}

// Use runs the session until the operator quits or the terminal shuts down
func (s *Session) Use() {
	c, w := s.Computer, s.World
	w.Reset()
	w.PrintLine("%s", gotext.Get("Logging into %s...", c.Name))

	if !s.login() {
		w.Reset()
		return
	}

	for {
		options := c.Options()
		if len(options) == 0 {
			break
		}
		choices := make([]string, len(options))
		for i, opt := range options {
			choices[i] = opt.Name
		}
		i, ok := w.Choose(gotext.Get("%s - Root Menu", c.Name), choices)
		if !ok {
			break
		}
		if i < 0 || i >= len(options) {
			continue
		}
		if !s.activate(i, options[i]) {
			return
		}
		w.Reset()
	}
	w.Reset()
}

// login checks the operator's clearance against the terminal security. Without clearance the
// operator may try to force access; a failed attempt triggers a failure if the cooldown allows.
func (s *Session) login() bool {
	c, w := s.Computer, s.World
	if c.Security <= 0 || w.Operator().Clearance() >= c.Security {
		w.QueryAny(gotext.Get("Login successful.  Press any key..."))
		w.Reset()
		return true
	}

	w.PrintError("%s", c.AccessDenied)
	if !w.QueryBool(gotext.Get("Bypass security?")) {
		w.QueryAny(gotext.Get("Shutting down... press any key."))
		return false
	}
	if !s.Hack(c.Security) {
		if len(c.failures) == 0 || !c.FailureReady(w.Now()) {
			w.QueryAny(gotext.Get("Maximum login attempts exceeded. Press any key..."))
			return false
		}
		s.Engine.TriggerRandomFailure(c, w)
		return false
	}
	c.SetSecurity(0)
	w.QueryAny(gotext.Get("Login successful.  Press any key..."))
	w.Reset()
	return true
}

// activate runs the chosen option. Once the terminal has logged an alert every option has to be
// forced. Returns false if the terminal shut down.
func (s *Session) activate(i int, opt Option) bool {
	c, w := s.Computer, s.World
	if opt.Security <= w.Operator().Clearance() && c.Alerts == 0 {
		s.Engine.Execute(c, w, opt.Action)
		return true
	}

	w.PrintError("%s", gotext.Get("Password required."))
	if !w.QueryBool(gotext.Get("Hack into system?")) {
		return true
	}
	if !s.Hack(opt.Security) {
		if c.FailureReady(w.Now()) {
			s.Engine.TriggerRandomFailure(c, w)
		}
		return false
	}
	c.clearOptionSecurity(i, opt.Action)
	s.Engine.ExecuteBypass(c, w, opt.Action)
	return true
}

// clearOptionSecurity drops the security of the option at index i if it still holds the action
func (c *Computer) clearOptionSecurity(i int, action ActionKind) {
	if i < len(c.options) && c.options[i].Action == action {
		c.options[i].Security = 0
	}
}
