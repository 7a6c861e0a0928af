package navigator

import (
	"fmt"
	"strings"

	"github.com/HumanBot000/BoilerGen/pkg/types"
)

// Symbols are the markers used in choice labels
type Symbols struct {
	Selected   string
	Unselected string
	Group      string
	Back       string
	Finish     string
}

var (
	// FancySymbols is the default terminal look
	FancySymbols = Symbols{Selected: "✓", Unselected: "○", Group: "📁", Back: "⬅️ ", Finish: "✅"}
	// PlainSymbols keeps to ASCII for minimal terminals
	PlainSymbols = Symbols{Selected: "[x]", Unselected: "[ ]", Group: "+", Back: "<", Finish: ">"}
)

// Choice is one selectable line of the menu
type Choice struct {
	Label string
	Event Event
}

// Entry is a directory entry offered by the menu. ID is empty for groups.
type Entry struct {
	Name  string
	ID    string
	Label string
}

// Choices builds the menu for s: templates first, then groups, then
// navigation
func Choices(s State, groups []string, templates []Entry, sym Symbols) []Choice {
	var out []Choice

	for _, t := range templates {
		mark := sym.Unselected
		if s.IsSelected(t.ID) {
			mark = sym.Selected
		}
		out = append(out, Choice{
			Label: fmt.Sprintf("%s %s", mark, t.Label),
			Event: Event{Kind: Toggle, Target: t.ID},
		})
	}

	for _, g := range groups {
		out = append(out, Choice{
			Label: fmt.Sprintf("%s %s", sym.Group, g),
			Event: Event{Kind: Enter, Target: g},
		})
	}

	if len(s.History) > 0 {
		out = append(out, Choice{Label: sym.Back + " Go Back", Event: Event{Kind: Back}})
	}

	finish := sym.Finish + " Finish Selection"
	if n := len(s.Selected); n > 0 {
		finish += fmt.Sprintf(" (%d selected)", n)
	}
	out = append(out, Choice{Label: finish, Event: Event{Kind: Finish}})

	return out
}

// Summary renders the selection for display, marking auto-added templates
func Summary(r Result, catalog map[string]types.Template) string {
	auto := make(map[string]bool, len(r.Auto))
	for _, id := range r.Auto {
		auto[id] = true
	}

	var b strings.Builder
	for _, id := range r.IDs {
		label := id
		if t, ok := catalog[id]; ok {
			label = t.Label
		}
		if auto[id] {
			fmt.Fprintf(&b, "  %s (dependency)\n", label)
		} else {
			fmt.Fprintf(&b, "  %s\n", label)
		}
	}
	return b.String()
}
