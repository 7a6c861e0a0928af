package types

import "fmt"

// Method says where a fragment lands relative to its anchor
type Method string

const (
	MethodReplace Method = "replace"
	MethodBefore  Method = "before"
	MethodAfter   Method = "after"
	// MethodStart and MethodEnd need a tag anchor
	MethodStart Method = "start"
	MethodEnd   Method = "end"
)

// Valid reports whether m is a known method
func (m Method) Valid() bool {
	switch m {
	case MethodReplace, MethodBefore, MethodAfter, MethodStart, MethodEnd:
		return true
	}
	return false
}

// Anchor points at either a tag or a 1-indexed line of the target file.
// Exactly one of the fields is set.
type Anchor struct {
	Tag  string
	Line int
}

// IsTag reports whether the anchor names a tag
func (a Anchor) IsTag() bool {
	return a.Tag != ""
}

func (a Anchor) String() string {
	if a.IsTag() {
		return "tag:" + a.Tag
	}
	return fmt.Sprintf("line:%d", a.Line)
}

// Injection splices the lines of SourceDefinitionDir/SourceFile into
// TargetFile of the template TargetTemplateID.
// Injections are compared by value; identical declarations are applied once.
type Injection struct {
	TargetTemplateID    string
	TargetFile          string
	SourceFile          string
	SourceDefinitionDir string
	Anchor              Anchor
	Method              Method
}
