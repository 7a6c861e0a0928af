// Package navigator models interactive template selection as a pure state
// machine: Update maps the current state and one user event to the next
// state and a directive for the UI loop.
package navigator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/HumanBot000/BoilerGen/pkg/deps"
	"github.com/HumanBot000/BoilerGen/pkg/types"
)

// EventKind is what the user did
type EventKind int

const (
	// Toggle selects or deselects the template in Event.Target (an id)
	Toggle EventKind = iota
	// Enter descends into the group named Event.Target
	Enter
	// Back returns to the previous directory
	Back
	// Finish ends the selection
	Finish
	// Cancel aborts the selection
	Cancel
)

// Event is one user action
type Event struct {
	Kind   EventKind
	Target string
}

// Directive tells the UI loop what to do next
type Directive int

const (
	// Render means show the current state again and wait for input
	Render Directive = iota
	// Done means the selection is complete
	Done
	// Abort means the user gave up
	Abort
)

// State is the navigator state. It is treated as a value: Update never
// mutates its input.
type State struct {
	Root    string
	Current string
	History []string

	// Selected holds template ids in the order they were chosen
	Selected []string

	// Notice is a one-shot message for the next render
	Notice string
}

// New starts navigation at root
func New(root string) State {
	return State{Root: root, Current: root}
}

// IsSelected reports whether id is selected
func (s State) IsSelected(id string) bool {
	for _, sel := range s.Selected {
		if sel == id {
			return true
		}
	}
	return false
}

// Breadcrumb renders the current location relative to the root
func (s State) Breadcrumb() string {
	rel, err := filepath.Rel(s.Root, s.Current)
	if err != nil || rel == "." {
		return filepath.Base(s.Root)
	}
	return filepath.Base(s.Root) + " > " + strings.ReplaceAll(rel, string(filepath.Separator), " > ")
}

// Update applies event to s. catalog is used to warn when a deselected
// template is still required by another selected one.
func Update(s State, e Event, catalog map[string]types.Template) (State, Directive) {
	next := s.clone()
	next.Notice = ""

	switch e.Kind {
	case Toggle:
		if next.IsSelected(e.Target) {
			next.Selected = remove(next.Selected, e.Target)
			for _, dependent := range deps.Dependents(e.Target, catalog) {
				if next.IsSelected(dependent) {
					next.Notice = fmt.Sprintf("'%s' is still required by '%s' and will be added back on finish", e.Target, dependent)
					break
				}
			}
		} else {
			next.Selected = append(next.Selected, e.Target)
		}
		return next, Render

	case Enter:
		next.History = append(next.History, next.Current)
		next.Current = filepath.Join(next.Current, e.Target)
		return next, Render

	case Back:
		if len(next.History) == 0 {
			return next, Render
		}
		next.Current = next.History[len(next.History)-1]
		next.History = next.History[:len(next.History)-1]
		return next, Render

	case Finish:
		return next, Done

	case Cancel:
		return next, Abort
	}

	return next, Render
}

func (s State) clone() State {
	out := s
	out.History = append([]string(nil), s.History...)
	out.Selected = append([]string(nil), s.Selected...)
	return out
}

func remove(list []string, id string) []string {
	out := list[:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Result is the final selection
type Result struct {
	// IDs holds the chosen templates followed by their dependencies
	IDs []string
	// Auto lists dependencies added without being chosen
	Auto []string
}

// Finalize turns the state into a Result. With withDependencies every
// template required by the selection is added; otherwise the selection is
// returned as chosen and missing requirements are left to the resolver.
func Finalize(s State, catalog map[string]types.Template, withDependencies bool) Result {
	if !withDependencies {
		return Result{IDs: append([]string(nil), s.Selected...)}
	}
	ids, auto := deps.Closure(s.Selected, catalog)
	return Result{IDs: ids, Auto: auto}
}
