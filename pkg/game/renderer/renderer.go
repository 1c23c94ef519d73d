package renderer

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"darkconsole/pkg/engine/terminal"
	"darkconsole/pkg/engine/world"
	"darkconsole/pkg/game/computer"
	"darkconsole/pkg/game/state"
)

var (
	ColorTerminal    color.Style
	ColorAction      color.Style
	ColorActionShort color.Style
	ColorDenied      color.Style
	ColorWarning     color.Style
	ColorGood        color.Style
	ColorItem        color.Style
	ColorSubtle      color.Style
	ColorScreen      color.Style

	regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([^{}]*)}`)
)

// InitColors initializes the color styles
func InitColors() {
	ColorTerminal = color.Style{color.FgCyan, color.OpBold}
	ColorAction = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorWarning = color.Style{color.FgYellow}
	ColorGood = color.Style{color.FgGreen}
	ColorItem = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorScreen = color.Style{color.FgLightGreen}
}

// dynamicGet is used for runtime translation key lookups from markup.
// Calling through a variable keeps go vet from treating the key as a format string.
var dynamicGet = gotext.Get

// FormatString formats a string with special markup
func FormatString(msg string, a ...any) string {
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	return ApplyMarkup(msg)
}

// ApplyMarkup replaces the markup functions in an already formatted string
func ApplyMarkup(msg string) string {
	ret := msg
	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = ColorItem.Sprint(operand)
		case "TERM":
			val = ColorTerminal.Sprint(operand)
		case "DENIED":
			val = ColorDenied.Sprint(operand)
		case "WARN":
			val = ColorWarning.Sprint(operand)
		case "GOOD":
			val = ColorGood.Sprint(operand)
		case "SUBTLE":
			val = ColorSubtle.Sprint(operand)
		case "ACTION":
			if operand == "" {
				continue
			}
			val = ColorActionShort.Sprint(operand[0:1]) + ColorAction.Sprint(operand[1:])
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// MessageMarkup wraps a message log entry in the markup of its severity
func MessageMarkup(severity computer.Severity, msg string) string {
	switch severity {
	case computer.MsgBad:
		return "DENIED{" + msg + "}"
	case computer.MsgWarning:
		return "WARN{" + msg + "}"
	case computer.MsgGood:
		return "GOOD{" + msg + "}"
	case computer.MsgNeutral:
		return "SUBTLE{" + msg + "}"
	}
	return msg
}

// PrintBullet prints a bulleted item
func PrintBullet(out io.Writer, txt string) {
	fmt.Fprintln(out, "- "+ApplyMarkup(txt))
}

// Clear clears the terminal screen
func Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// ItemNames returns the sorted names of the items in a set
func ItemNames(items []*world.Item) string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// PrintStatusBar renders the operator status and inventory
func PrintStatusBar(out io.Writer, g *state.Game) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, ColorSubtle.Sprintf("Moves: %d  Clearance: %d  Skill: %d  HP: %d  Rad: %d",
		g.Moves, g.SecurityClearance, g.Skill, g.HP, g.Rads))
	fmt.Fprint(out, ColorSubtle.Sprint("Inventory: "))

	if g.OwnedItems.Size() == 0 {
		fmt.Fprintln(out, ColorSubtle.Sprint("(empty)"))
		return
	}
	items := []string{}
	g.OwnedItems.Each(func(item *world.Item) {
		items = append(items, ColorItem.Sprint(item.Name))
	})
	sort.Strings(items)
	fmt.Fprintln(out, strings.Join(items, ColorSubtle.Sprint(", ")))
}

// PrintMessagesPane renders the messages log pane
func PrintMessagesPane(out io.Writer, g *state.Game) {
	width := terminal.GetWidth()

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(0, width-sideLen-labelLen))

	fmt.Fprintln(out)
	fmt.Fprintln(out, ColorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(g.Messages) == 0 {
		fmt.Fprintln(out, ColorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(out, "  %s\n", ApplyMarkup(msg))
		}
	}

	fmt.Fprintln(out, ColorSubtle.Sprint(strings.Repeat("─", width)))
}
