// Package values resolves the final value of every config marker from the
// package defaults, command-line overrides and interactive edits.
package values

import (
	"context"
	"fmt"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/types"
	"github.com/spf13/cast"
)

// ApplyDefaults sets YAMLValue for every config whose identifier appears in
// the descriptor's config map. nil YAML values become the empty string.
func ApplyDefaults(configs []*types.ValueConfig, defaults map[string]interface{}) error {
	for _, c := range configs {
		raw, ok := defaults[c.Identifier]
		if !ok {
			continue
		}
		s, err := stringify(raw)
		if err != nil {
			return errors.Wrapf(err, errors.ErrDescriptorInvalid, "config '%s' must be a scalar", c.Identifier).
				WithDetail("key", c.Identifier)
		}
		c.YAMLValue = types.Defined(s)
	}
	return nil
}

func stringify(v interface{}) (string, error) {
	switch v.(type) {
	case nil:
		return "", nil
	case map[string]interface{}, []interface{}:
		return "", fmt.Errorf("got %T", v)
	}
	return cast.ToStringE(v)
}

// ApplyOverrides sets CLIValue for every config named in overrides
func ApplyOverrides(configs []*types.ValueConfig, overrides map[string]string) {
	for _, c := range configs {
		if v, ok := overrides[c.Identifier]; ok {
			c.CLIValue = types.Defined(v)
		}
	}
}

// Current returns identifier to resolved text, with absent values as "".
// When an identifier appears more than once the first occurrence wins.
func Current(configs []*types.ValueConfig) map[string]string {
	out := make(map[string]string, len(configs))
	for _, c := range configs {
		if _, seen := out[c.Identifier]; seen {
			continue
		}
		out[c.Identifier] = c.Resolved().Text()
	}
	return out
}

// Keys returns the distinct identifiers of configs in file order
func Keys(configs []*types.ValueConfig) []string {
	seen := make(map[string]bool, len(configs))
	var keys []string
	for _, c := range configs {
		if seen[c.Identifier] {
			continue
		}
		seen[c.Identifier] = true
		keys = append(keys, c.Identifier)
	}
	return keys
}

// ApplyEdits stores the edited values as CLIValue. Every identifier of the
// file must be present in edited.
func ApplyEdits(configs []*types.ValueConfig, edited map[string]string) error {
	for _, c := range configs {
		v, ok := edited[c.Identifier]
		if !ok {
			return errors.Newf(errors.ErrMissingConfigValue, "missing config value for key '%s'", c.Identifier).
				WithDetail("key", c.Identifier)
		}
		c.CLIValue = types.Defined(v)
	}
	return nil
}

// Editor lets a user review and change the config values of one file.
// It returns the full set of values to apply.
type Editor interface {
	Edit(ctx context.Context, path string, current map[string]string) (map[string]string, error)
}

// Noop is an Editor that keeps the current values
type Noop struct{}

func (Noop) Edit(ctx context.Context, _ string, current map[string]string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return current, nil
}

// Edit runs editor over file and applies the result
func Edit(ctx context.Context, editor Editor, file *types.TemplateFile) error {
	if len(file.Configs) == 0 {
		return nil
	}
	edited, err := editor.Edit(ctx, file.DestinationPath, Current(file.Configs))
	if err != nil {
		return err
	}
	return ApplyEdits(file.Configs, edited)
}
