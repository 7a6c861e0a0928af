// Package templates discovers template packages and loads their descriptors
// and files.
package templates

import (
	"os"
	"path/filepath"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/types"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// descriptorFile mirrors template.yaml
type descriptorFile struct {
	ID         string                 `yaml:"id"`
	Label      string                 `yaml:"label"`
	Requires   []string               `yaml:"requires"`
	Config     map[string]interface{} `yaml:"config"`
	Injections []injectionEntry       `yaml:"injections"`
}

type injectionEntry struct {
	Target string     `yaml:"target"`
	At     anchorSpec `yaml:"at"`
	From   string     `yaml:"from"`
	Method methodSpec `yaml:"method"`
}

type anchorSpec struct {
	File string `yaml:"file"`
	Tag  string `yaml:"tag"`
	Line *int   `yaml:"line"`
}

// insertPositions maps descriptor wording to methods
var insertPositions = map[string]types.Method{
	"above":  types.MethodBefore,
	"below":  types.MethodAfter,
	"top":    types.MethodStart,
	"bottom": types.MethodEnd,
}

// methodSpec accepts either `replace` or `{insert: [above|below|top|bottom]}`
type methodSpec struct {
	method types.Method
}

func (m *methodSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value != string(types.MethodReplace) {
			return errors.Newf(errors.ErrInjectionInvalid, "line %d: unknown method '%s'", node.Line, node.Value)
		}
		m.method = types.MethodReplace
		return nil

	case yaml.MappingNode:
		var raw struct {
			Insert yaml.Node `yaml:"insert"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		var positions []string
		switch raw.Insert.Kind {
		case yaml.SequenceNode:
			if err := raw.Insert.Decode(&positions); err != nil {
				return err
			}
		case yaml.ScalarNode:
			positions = []string{raw.Insert.Value}
		}
		if len(positions) == 0 {
			return errors.Newf(errors.ErrInjectionInvalid, "line %d: insert needs one of above, below, top, bottom", node.Line)
		}
		method, ok := insertPositions[positions[0]]
		if !ok {
			return errors.Newf(errors.ErrInjectionInvalid, "line %d: unknown insert position '%s'", node.Line, positions[0])
		}
		m.method = method
		return nil
	}

	return errors.Newf(errors.ErrInjectionInvalid, "line %d: method must be 'replace' or an insert mapping", node.Line)
}

// Load reads the package at dir. It fails with ErrDescriptorMissing when dir
// has no template.yaml.
func Load(fs afero.Fs, dir string) (*types.Template, error) {
	path := filepath.Join(dir, types.DescriptorFile)

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrDescriptorMissing, "'%s' not found in template: %s", types.DescriptorFile, dir).
				WithDetail("path", dir)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	tmpl, err := Parse(data, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "invalid descriptor %s", path).
			WithDetail("path", path)
	}
	return tmpl, nil
}

// Parse decodes template.yaml content for the package rooted at dir
func Parse(data []byte, dir string) (*types.Template, error) {
	var raw descriptorFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		if errors.GetErrorCode(err) == errors.ErrInjectionInvalid {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrDescriptorInvalid, "malformed YAML")
	}

	tmpl := &types.Template{
		ID:       raw.ID,
		Label:    raw.Label,
		Path:     dir,
		Requires: raw.Requires,
		Descriptor: types.Descriptor{
			Config: raw.Config,
		},
	}
	if tmpl.ID == "" {
		tmpl.ID = filepath.Base(dir)
	}
	if tmpl.Label == "" {
		tmpl.Label = tmpl.ID
	}
	if tmpl.Descriptor.Config == nil {
		tmpl.Descriptor.Config = map[string]interface{}{}
	}

	for i, entry := range raw.Injections {
		inj, err := entry.toInjection(dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInjectionInvalid, "injection %d", i+1).
				WithDetail("index", i)
		}
		tmpl.Descriptor.Injections = append(tmpl.Descriptor.Injections, inj)
	}

	return tmpl, nil
}

func (e injectionEntry) toInjection(dir string) (types.Injection, error) {
	switch {
	case e.Target == "":
		return types.Injection{}, errors.New(errors.ErrInjectionInvalid, "missing 'target'")
	case e.At.File == "":
		return types.Injection{}, errors.New(errors.ErrInjectionInvalid, "missing 'at.file'")
	case e.From == "":
		return types.Injection{}, errors.New(errors.ErrInjectionInvalid, "missing 'from'")
	case e.Method.method == "":
		return types.Injection{}, errors.New(errors.ErrInjectionInvalid, "missing 'method'")
	case e.At.Tag != "" && e.At.Line != nil:
		return types.Injection{}, errors.New(errors.ErrInjectionInvalid, "'at' takes either 'tag' or 'line', not both")
	case e.At.Tag == "" && e.At.Line == nil:
		return types.Injection{}, errors.New(errors.ErrInjectionInvalid, "'at' needs a 'tag' or a 'line'")
	}

	anchor := types.Anchor{Tag: e.At.Tag}
	if e.At.Line != nil {
		if *e.At.Line < 1 {
			return types.Injection{}, errors.Newf(errors.ErrInjectionInvalid, "line %d out of range, lines start at 1", *e.At.Line)
		}
		anchor.Line = *e.At.Line
		if e.Method.method == types.MethodStart || e.Method.method == types.MethodEnd {
			return types.Injection{}, errors.Newf(errors.ErrInjectionInvalid, "insert position for method '%s' needs a tag anchor", e.Method.method)
		}
	}

	return types.Injection{
		TargetTemplateID:    e.Target,
		TargetFile:          filepath.Clean(e.At.File),
		SourceFile:          filepath.Clean(e.From),
		SourceDefinitionDir: dir,
		Anchor:              anchor,
		Method:              e.Method.method,
	}, nil
}
