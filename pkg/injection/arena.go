package injection

import (
	"strings"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/types"
)

// Arena is the line buffer of one target file together with the tags
// recorded against it. Every splice re-bases the tags so later anchors keep
// pointing at the same text.
type Arena struct {
	lines           []string
	tags            []types.Tag
	trailingNewline bool
}

// NewArena splits content into lines. A final newline is remembered rather
// than treated as an empty last line.
func NewArena(content string, tags []types.Tag) *Arena {
	a := &Arena{
		lines:           splitLines(content),
		tags:            make([]types.Tag, len(tags)),
		trailingNewline: strings.HasSuffix(content, "\n"),
	}
	copy(a.tags, tags)
	return a
}

func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// Lines returns the current lines
func (a *Arena) Lines() []string {
	return a.lines
}

// Tags returns a copy of the current tag positions
func (a *Arena) Tags() []types.Tag {
	out := make([]types.Tag, len(a.tags))
	copy(out, a.tags)
	return out
}

// Tag looks up a tag by identifier
func (a *Arena) Tag(identifier string) (types.Tag, bool) {
	for _, t := range a.tags {
		if t.Identifier == identifier {
			return t, true
		}
	}
	return types.Tag{}, false
}

// String joins the lines back into file content
func (a *Arena) String() string {
	s := strings.Join(a.lines, "\n")
	if a.trailingNewline {
		s += "\n"
	}
	return s
}

// Splice removes count lines at the 0-indexed position pos and inserts
// lines in their place. pos and count are clamped to the buffer.
//
// Tag boundaries at or after the end of the removed span move by
// len(lines)-count. Boundaries inside the removed span collapse onto the
// inserted block. Boundaries before pos are untouched.
func (a *Arena) Splice(pos, count int, lines []string) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(a.lines) {
		pos = len(a.lines)
	}
	if count < 0 {
		count = 0
	}
	if pos+count > len(a.lines) {
		count = len(a.lines) - pos
	}

	out := make([]string, 0, len(a.lines)-count+len(lines))
	out = append(out, a.lines[:pos]...)
	out = append(out, lines...)
	out = append(out, a.lines[pos+count:]...)
	a.lines = out

	a.rebase(pos, count, len(lines))
}

func (a *Arena) rebase(pos, removed, inserted int) {
	delta := inserted - removed
	removedEnd := pos + removed

	move := func(line int, collapseTo int) int {
		idx := line - 1
		switch {
		case idx >= removedEnd:
			return line + delta
		case idx >= pos:
			return collapseTo + 1
		default:
			return line
		}
	}

	lastInserted := pos + inserted - 1
	for i := range a.tags {
		t := &a.tags[i]
		t.LineStart = move(t.LineStart, pos)
		t.LineEnd = move(t.LineEnd, lastInserted)
		if t.LineEnd < t.LineStart {
			t.LineEnd = t.LineStart
		}
	}
}

// Resolve returns the 1-indexed start and end lines of an anchor.
// ok is false when a tag anchor names a tag the file does not have.
func (a *Arena) Resolve(anchor types.Anchor) (start, end int, ok bool) {
	if !anchor.IsTag() {
		return anchor.Line, anchor.Line, true
	}
	tag, found := a.Tag(anchor.Tag)
	if !found {
		return 0, 0, false
	}
	return tag.LineStart, tag.LineEnd, true
}

// Apply splices fragment relative to anchor. It returns false without
// touching the buffer when the anchor cannot be resolved.
func (a *Arena) Apply(anchor types.Anchor, method types.Method, fragment []string) (bool, error) {
	if !anchor.IsTag() && (method == types.MethodStart || method == types.MethodEnd) {
		return false, errors.Newf(errors.ErrInjectionInvalid, "method '%s' needs a tag anchor, got %s", method, anchor)
	}

	s, e, ok := a.Resolve(anchor)
	if !ok {
		return false, nil
	}

	switch method {
	case types.MethodReplace:
		a.Splice(s-1, e-s+1, fragment)
	case types.MethodBefore:
		a.Splice(s-1, 0, fragment)
	case types.MethodAfter:
		a.Splice(e+1, 0, fragment)
	case types.MethodStart:
		a.Splice(s, 0, fragment)
	case types.MethodEnd:
		a.Splice(e-1, 0, fragment)
	default:
		return false, errors.Newf(errors.ErrInjectionInvalid, "unknown injection method '%s'", method)
	}
	return true, nil
}
