package types

import "path/filepath"

const (
	// DescriptorFile marks a directory as a template package
	DescriptorFile = "template.yaml"
	// FilesDir is the package subdirectory mirrored into the output
	FilesDir = "template"
)

// Template represents a selectable template package
type Template struct {
	// ID is unique across the template root; defaults to the directory name
	ID string

	// Label is shown in the navigator and tree views
	Label string

	// Path is the package root (the directory holding template.yaml)
	Path string

	// Requires lists the ids this template depends on, in declaration order
	Requires []string

	// Descriptor holds the parsed template.yaml
	Descriptor Descriptor
}

// Descriptor is the parsed form of a package's template.yaml
type Descriptor struct {
	// Config maps identifiers to the package default values
	Config map[string]interface{}

	// Injections are the fragments this package splices into other templates
	Injections []Injection
}

// FilesPath returns the directory whose tree is generated
func (t *Template) FilesPath() string {
	return filepath.Join(t.Path, FilesDir)
}

// DescriptorPath returns the path of the package's template.yaml
func (t *Template) DescriptorPath() string {
	return filepath.Join(t.Path, DescriptorFile)
}

// TemplateFile is one file of a template package prepared for generation
type TemplateFile struct {
	TemplateID string
	SourcePath string

	Content string
	Tags    []Tag
	Configs []*ValueConfig

	// DestinationPath is where the generated file is written
	DestinationPath string
}

// FindTag returns the tag with the given identifier, or nil
func (f *TemplateFile) FindTag(identifier string) *Tag {
	for i := range f.Tags {
		if f.Tags[i].Identifier == identifier {
			return &f.Tags[i]
		}
	}
	return nil
}

// Tag is a named region bounded by an opening and a closing marker line.
// Lines are 1-indexed and inclusive; LineStart <= LineEnd.
type Tag struct {
	Identifier string
	LineStart  int
	LineEnd    int
}
