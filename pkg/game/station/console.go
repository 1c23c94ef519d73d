package station

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"darkconsole/pkg/engine/input"
	"darkconsole/pkg/engine/terminal"
	"darkconsole/pkg/game/renderer"
)

// gibberishChars are printed by corrupted files
const gibberishChars = "!@#$%^&*()_+=-[]{};:'\",.<>/?\\|~`0123456789"

// Console is the terminal screen: it writes text to out and waits on a Prompter for answers.
// Every printed line is also kept in the transcript.
type Console struct {
	out   io.Writer
	in    Prompter
	width int

	// ClearScreen is called on Reset when set; otherwise a divider is printed
	ClearScreen func()

	transcript []string
	err        error
}

// NewConsole creates a console. A width of 0 uses the terminal width.
func NewConsole(out io.Writer, in Prompter, width int) *Console {
	if width <= 0 {
		width = terminal.GetWidth()
	}
	return &Console{out: out, in: in, width: width}
}

// Transcript returns every line printed so far
func (c *Console) Transcript() []string {
	return c.transcript
}

// Err returns the first error returned by the prompter
func (c *Console) Err() error {
	return c.err
}

func (c *Console) write(style color.Style, text string) {
	for _, line := range terminal.Wrap(text, c.width) {
		c.transcript = append(c.transcript, line)
		fmt.Fprintln(c.out, style.Sprint(line))
	}
}

// Reset clears the screen
func (c *Console) Reset() {
	if c.ClearScreen != nil {
		c.ClearScreen()
		return
	}
	fmt.Fprintln(c.out, renderer.ColorSubtle.Sprint(strings.Repeat("─", c.width)))
}

// PrintLine prints formatted text in the screen color
func (c *Console) PrintLine(format string, args ...any) {
	c.write(renderer.ColorScreen, fmt.Sprintf(format, args...))
}

// PrintError prints formatted text in the error color
func (c *Console) PrintError(format string, args ...any) {
	c.write(renderer.ColorDenied, fmt.Sprintf(format, args...))
}

// PrintGibberish prints a line of random characters
func (c *Console) PrintGibberish() {
	var sb strings.Builder
	for i := 0; i < c.width/2; i++ {
		sb.WriteByte(gibberishChars[rand.Intn(len(gibberishChars))])
	}
	c.write(renderer.ColorScreen, sb.String())
}

func (c *Console) key() (input.Intent, bool) {
	intent, err := c.in.ReadKey()
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return input.Intent{}, false
	}
	return intent, true
}

// QueryAny shows a message and waits for any key
func (c *Console) QueryAny(msg string) {
	c.PrintLine("%s", msg)
	c.key()
}

// WaitForAnyKey waits for any key
func (c *Console) WaitForAnyKey() {
	c.key()
}

// QueryBool asks a question answered with a single key. Quit answers no.
func (c *Console) QueryBool(msg string) bool {
	c.PrintLine("%s", gotext.Get("%s (Y/N/Q)", msg))
	for {
		intent, ok := c.key()
		if !ok {
			return false
		}
		switch intent.Action {
		case input.ActionYes:
			return true
		case input.ActionNo, input.ActionQuit:
			return false
		}
	}
}

// QueryYN asks a question that has to be answered with a full word
func (c *Console) QueryYN(msg string) bool {
	c.PrintLine("%s", gotext.Get("%s (yes/no)", msg))
	for {
		line, err := c.in.ReadLine()
		if err != nil {
			if c.err == nil {
				c.err = err
			}
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes":
			return true
		case "no":
			return false
		}
		c.PrintLine("%s", gotext.Get("Please answer yes or no."))
	}
}

// Choose shows a numbered menu. Up to nine entries are picked with a single key, longer menus
// read the number as a line.
func (c *Console) Choose(title string, choices []string) (int, bool) {
	c.PrintLine("%s", title)
	c.PrintLine("")
	for i, choice := range choices {
		c.PrintLine("%d - %s", i+1, choice)
	}
	c.PrintLine("%s", gotext.Get("Q - Quit and shut down"))
	c.PrintLine("")

	for {
		if len(choices) > 9 {
			line, err := c.in.ReadLine()
			if err != nil {
				if c.err == nil {
					c.err = err
				}
				return 0, false
			}
			line = strings.TrimSpace(line)
			if strings.EqualFold(line, "q") {
				return 0, false
			}
			if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(choices) {
				return n - 1, true
			}
			continue
		}

		intent, ok := c.key()
		if !ok {
			return 0, false
		}
		switch intent.Action {
		case input.ActionQuit:
			return 0, false
		case input.ActionSelect:
			if intent.Index < len(choices) {
				return intent.Index, true
			}
		}
	}
}
