package prompt

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/HumanBot000/BoilerGen/pkg/values"
)

// ConfigEditor edits the config values of one file as `key = value` lines
// and asks again until the text is valid
type ConfigEditor struct {
	Driver Driver
}

var _ values.Editor = (*ConfigEditor)(nil)

// Edit implements values.Editor
func (e *ConfigEditor) Edit(ctx context.Context, path string, current map[string]string) (map[string]string, error) {
	keys := make([]string, 0, len(current))
	for k := range current {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%s = %s", k, current[k])
	}
	text := strings.Join(lines, "\n")

	for {
		edited, err := e.Driver.TextArea(ctx, TextAreaConfig{
			Message: fmt.Sprintf("File: %s", path),
			Default: text,
			Help:    "Edit these configurations, one `key = value` per line",
		})
		if err != nil {
			return nil, err
		}

		parsed, problem := ParseAssignments(edited, keys)
		if problem == "" {
			return parsed, nil
		}
		if err := e.Driver.Info(ctx, problem); err != nil {
			return nil, err
		}
		text = edited
	}
}

// ParseAssignments parses `key = value` lines and checks them against the
// expected keys. problem describes the first issue found, empty when valid.
func ParseAssignments(text string, expected []string) (parsed map[string]string, problem string) {
	parsed = make(map[string]string)

	body := strings.TrimRight(text, "\r\n")
	var lines []string
	if body != "" {
		lines = strings.Split(body, "\n")
	}

	for i, line := range lines {
		lineNo := i + 1
		k, v, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Sprintf("Line %d missing '='.", lineNo)
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" {
			return nil, fmt.Sprintf("Line %d: empty key.", lineNo)
		}
		if v == "" {
			return nil, fmt.Sprintf("Line %d: value for '%s' is empty.", lineNo, k)
		}
		parsed[k] = v
	}

	want := make(map[string]bool, len(expected))
	var missing []string
	for _, k := range expected {
		want[k] = true
		if _, ok := parsed[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Sprintf("Missing key(s): %s", strings.Join(missing, ", "))
	}

	var extra []string
	for k := range parsed {
		if !want[k] {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return nil, fmt.Sprintf("Unknown key(s): %s", strings.Join(extra, ", "))
	}

	return parsed, ""
}
