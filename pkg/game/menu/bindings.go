// Package menu lists the keys the terminal console answers to.
package menu

import (
	"fmt"
	"io"
	"strings"

	engineinput "darkconsole/pkg/engine/input"
	"darkconsole/pkg/game/renderer"
)

// selectKeys is shown for ActionSelect, which has no entry in the binding table
const selectKeys = "1-9"

// BindingMenuItem represents the keys bound to one action.
type BindingMenuItem struct {
	Action engineinput.Action
	Keys   []string
}

// GetLabel returns the display label for this binding.
func (b *BindingMenuItem) GetLabel() string {
	codeText := strings.Join(b.Keys, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%s: %s", engineinput.ActionName(b.Action), codeText)
}

// consoleActions are the actions in the order the help lists them
var consoleActions = []engineinput.Action{
	engineinput.ActionSelect,
	engineinput.ActionUp,
	engineinput.ActionDown,
	engineinput.ActionConfirm,
	engineinput.ActionYes,
	engineinput.ActionNo,
	engineinput.ActionQuit,
}

// Bindings returns one item per console action with its current keys
func Bindings() []*BindingMenuItem {
	byAction := engineinput.GetBindingsByAction()
	items := make([]*BindingMenuItem, 0, len(consoleActions))
	for _, act := range consoleActions {
		keys := byAction[act]
		if act == engineinput.ActionSelect {
			keys = append([]string{selectKeys}, keys...)
		}
		items = append(items, &BindingMenuItem{Action: act, Keys: keys})
	}
	return items
}

// PrintBindings writes the key help to out
func PrintBindings(out io.Writer) {
	fmt.Fprintln(out, renderer.ColorTerminal.Sprint("Bindings"))
	for _, b := range Bindings() {
		renderer.PrintBullet(out, b.GetLabel())
	}
}
