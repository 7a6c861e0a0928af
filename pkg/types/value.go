package types

// NotDefined is written in place of a config value nobody supplied
const NotDefined = "NOT_DEFINED"

// Value is an optional config value. The zero value is absent.
type Value struct {
	text string
	set  bool
}

// Absent returns a value that was never supplied
func Absent() Value {
	return Value{}
}

// Defined returns a supplied value. The empty string is a valid value.
func Defined(s string) Value {
	return Value{text: s, set: true}
}

// IsDefined reports whether the value was supplied
func (v Value) IsDefined() bool {
	return v.set
}

// Text returns the supplied text, or "" when absent
func (v Value) Text() string {
	return v.text
}

// String returns the text inserted into generated files
func (v Value) String() string {
	if !v.set {
		return NotDefined
	}
	return v.text
}

// Or returns v when defined and fallback otherwise
func (v Value) Or(fallback Value) Value {
	if v.set {
		return v
	}
	return fallback
}

// ValueConfig is one config marker found in a template file.
// ReplacementStart and ReplacementEnd are byte offsets into the raw file
// text covering the whole marker.
type ValueConfig struct {
	Identifier       string
	ReplacementStart int
	ReplacementEnd   int

	InTemplateValue Value
	YAMLValue       Value
	CLIValue        Value
}

// Resolved applies the precedence CLI > YAML > in-template
func (c *ValueConfig) Resolved() Value {
	return c.CLIValue.Or(c.YAMLValue).Or(c.InTemplateValue)
}
