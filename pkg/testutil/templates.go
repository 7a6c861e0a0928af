package testutil

import (
	"path/filepath"
	"testing"

	"github.com/HumanBot000/BoilerGen/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// TemplateRoot is a template directory under construction
type TemplateRoot struct {
	FS  afero.Fs
	Dir string
}

// NewTemplateRoot creates an empty template root at dir on a fresh
// in-memory filesystem
func NewTemplateRoot(t *testing.T, dir string) *TemplateRoot {
	t.Helper()
	return NewTemplateRootOn(t, afero.NewMemMapFs(), dir)
}

// NewTemplateRootOn creates an empty template root at dir on fs
func NewTemplateRootOn(t *testing.T, fs afero.Fs, dir string) *TemplateRoot {
	t.Helper()
	require.NoError(t, fs.MkdirAll(dir, 0755))
	return &TemplateRoot{FS: fs, Dir: dir}
}

// TestTemplate is one template package inside a TemplateRoot
type TestTemplate struct {
	root *TemplateRoot
	Dir  string
}

// AddTemplate creates the package at rel (for example "Python/Flask/main")
// with the given template.yaml content
func (r *TemplateRoot) AddTemplate(t *testing.T, rel, descriptor string) *TestTemplate {
	t.Helper()

	dir := filepath.Join(r.Dir, rel)
	require.NoError(t, r.FS.MkdirAll(filepath.Join(dir, types.FilesDir), 0755))
	require.NoError(t, afero.WriteFile(r.FS, filepath.Join(dir, types.DescriptorFile), []byte(descriptor), 0644))

	return &TestTemplate{root: r, Dir: dir}
}

// AddGroup creates an empty group directory
func (r *TemplateRoot) AddGroup(t *testing.T, rel string) string {
	t.Helper()

	dir := filepath.Join(r.Dir, rel)
	require.NoError(t, r.FS.MkdirAll(dir, 0755))
	return dir
}

// AddFile adds a generated file at rel below the package's template/ dir
func (tt *TestTemplate) AddFile(t *testing.T, rel, content string) *TestTemplate {
	t.Helper()
	tt.write(t, filepath.Join(types.FilesDir, rel), content)
	return tt
}

// AddFragment adds a non-generated file (an injection fragment) at rel
// below the package root
func (tt *TestTemplate) AddFragment(t *testing.T, rel, content string) *TestTemplate {
	t.Helper()
	tt.write(t, rel, content)
	return tt
}

func (tt *TestTemplate) write(t *testing.T, rel, content string) {
	t.Helper()

	path := filepath.Join(tt.Dir, rel)
	require.NoError(t, tt.root.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(tt.root.FS, path, []byte(content), 0644))
}
