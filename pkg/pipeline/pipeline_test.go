package pipeline_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/hooks"
	"github.com/HumanBot000/BoilerGen/pkg/pipeline"
	"github.com/HumanBot000/BoilerGen/pkg/templates"
	"github.com/HumanBot000/BoilerGen/pkg/testutil"
	"github.com/HumanBot000/BoilerGen/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	templateDir = "/templates"
	outputDir   = "/out"
)

const mainPy = `from flask import Flask
# <<boilergen:blueprints
# boilergen:blueprints>>
app.run(port="boilergen:config | port | 8000")
`

const authDescriptor = `
id: auth
requires: [main]
injections:
  - target: main
    at: { file: main.py, tag: blueprints }
    from: injections/register.py
    method: replace
`

// flaskRoot builds a main template and an auth template injecting into it
func flaskRoot(t *testing.T) *testutil.TemplateRoot {
	t.Helper()
	root := testutil.NewTemplateRoot(t, templateDir)
	root.AddTemplate(t, "flask/main", "id: main\nconfig:\n  port: 5555\n").
		AddFile(t, "main.py", mainPy)
	root.AddTemplate(t, "flask/auth", authDescriptor).
		AddFile(t, "auth/views.py", "AUTH = True\n").
		AddFragment(t, "injections/register.py", "app.register_blueprint(auth)\n")
	return root
}

func selectTemplates(t *testing.T, root *testutil.TemplateRoot, ids ...string) []types.Template {
	t.Helper()
	catalog, err := templates.Discover(root.FS, root.Dir)
	require.NoError(t, err)
	selected, err := catalog.Select(ids)
	require.NoError(t, err)
	return selected
}

func defaultOptions() pipeline.Options {
	return pipeline.Options{OutputDir: outputDir, StrictDependencies: true}
}

func TestRunEndToEnd(t *testing.T) {
	root := flaskRoot(t)

	result, err := pipeline.Run(context.Background(), pipeline.Env{FS: root.FS},
		selectTemplates(t, root, "auth", "main"), defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"main", "auth"}, result.Templates)
	assert.Equal(t, 1, result.Injections)
	assert.ElementsMatch(t, []string{"/out/main.py", "/out/auth/views.py"}, result.Files)

	testutil.AssertFileContent(t, root.FS, "/out/main.py",
		"from flask import Flask\napp.register_blueprint(auth)\napp.run(port=5555)\n")
	testutil.AssertFileContent(t, root.FS, "/out/auth/views.py", "AUTH = True\n")
	testutil.AssertNotExists(t, root.FS, "/out/injections")
	testutil.AssertNotExists(t, root.FS, "/out/template.yaml")
}

func TestRunOverridesWin(t *testing.T) {
	root := flaskRoot(t)
	opts := defaultOptions()
	opts.Overrides = map[string]string{"port": "9000"}

	_, err := pipeline.Run(context.Background(), pipeline.Env{FS: root.FS}, selectTemplates(t, root, "main"), opts)
	require.NoError(t, err)

	testutil.AssertFileContent(t, root.FS, "/out/main.py", "from flask import Flask\n\n\napp.run(port=9000)\n")
}

func TestRunDisableQuoteClipping(t *testing.T) {
	root := flaskRoot(t)
	opts := defaultOptions()
	opts.DisableQuoteClipping = true

	_, err := pipeline.Run(context.Background(), pipeline.Env{FS: root.FS}, selectTemplates(t, root, "main"), opts)
	require.NoError(t, err)

	assert.Contains(t, testutil.ReadFile(t, root.FS, "/out/main.py"), `app.run(port="5555")`)
}

func TestRunResolvesEachMarkerOnItsOwn(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		want       string
	}{
		{
			name:       "in_template_values",
			descriptor: "id: settings\n",
			want:       "a = one\nb = two\nc = NOT_DEFINED\n",
		},
		{
			name:       "descriptor_default_covers_every_marker",
			descriptor: "id: settings\nconfig:\n  x: three\n",
			want:       "a = three\nb = three\nc = NOT_DEFINED\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testutil.NewTemplateRoot(t, templateDir)
			root.AddTemplate(t, "settings", tt.descriptor).
				AddFile(t, "settings.py", `a = "boilergen:config | x | one"
b = "boilergen:config | x | two"
c = "boilergen:config | y"
`)

			_, err := pipeline.Run(context.Background(), pipeline.Env{FS: root.FS},
				selectTemplates(t, root, "settings"), defaultOptions())
			require.NoError(t, err)

			testutil.AssertFileContent(t, root.FS, "/out/settings.py", tt.want)
		})
	}
}

func TestRunEditorIgnoredWhenNotInteractive(t *testing.T) {
	root := testutil.NewTemplateRoot(t, templateDir)
	root.AddTemplate(t, "settings", "id: settings\n").
		AddFile(t, "settings.py", `name = "boilergen:config | name"`+"\n")
	editor := &fakeEditor{set: map[string]string{"name": "edited"}}

	_, err := pipeline.Run(context.Background(), pipeline.Env{FS: root.FS, Editor: editor},
		selectTemplates(t, root, "settings"), defaultOptions())
	require.NoError(t, err)

	assert.Empty(t, editor.paths)
	testutil.AssertFileContent(t, root.FS, "/out/settings.py", "name = NOT_DEFINED\n")
}

func TestRunCycleWritesNothing(t *testing.T) {
	root := testutil.NewTemplateRoot(t, templateDir)
	root.AddTemplate(t, "a", "id: a\nrequires: [b]\n").AddFile(t, "a.txt", "a\n")
	root.AddTemplate(t, "b", "id: b\nrequires: [a]\n").AddFile(t, "b.txt", "b\n")

	_, err := pipeline.Run(context.Background(), pipeline.Env{FS: root.FS},
		selectTemplates(t, root, "a", "b"), defaultOptions())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCyclicDependency))
	testutil.AssertNotExists(t, root.FS, outputDir)
}

func TestRunMissingDependency(t *testing.T) {
	tests := []struct {
		name   string
		strict bool
	}{
		{name: "strict", strict: true},
		{name: "lenient", strict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := flaskRoot(t)
			opts := defaultOptions()
			opts.StrictDependencies = tt.strict

			// auth without main: the injection target is not selected
			_, err := pipeline.Run(context.Background(), pipeline.Env{FS: root.FS},
				selectTemplates(t, root, "auth"), opts)

			if tt.strict {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrMissingDependency))
				testutil.AssertNotExists(t, root.FS, outputDir)
				return
			}
			require.NoError(t, err)
			testutil.AssertFileContent(t, root.FS, "/out/auth/views.py", "AUTH = True\n")
			testutil.AssertNotExists(t, root.FS, "/out/main.py")
		})
	}
}

func TestRunNeverMergesIntoExistingOutput(t *testing.T) {
	root := flaskRoot(t)
	selected := selectTemplates(t, root, "main", "auth")

	_, err := pipeline.Run(context.Background(), pipeline.Env{FS: root.FS}, selected, defaultOptions())
	require.NoError(t, err)
	before := testutil.Snapshot(t, root.FS, outputDir)

	opts := defaultOptions()
	opts.Overrides = map[string]string{"port": "1"}
	_, err = pipeline.Run(context.Background(), pipeline.Env{FS: root.FS}, selected, opts)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	assert.Contains(t, err.Error(), "output directory already exists")
	assert.Equal(t, before, testutil.Snapshot(t, root.FS, outputDir))
}

func TestRunClearOutput(t *testing.T) {
	root := flaskRoot(t)
	require.NoError(t, afero.WriteFile(root.FS, "/out/stale.txt", []byte("old"), 0644))

	opts := defaultOptions()
	opts.ClearOutput = true
	_, err := pipeline.Run(context.Background(), pipeline.Env{FS: root.FS}, selectTemplates(t, root, "main"), opts)
	require.NoError(t, err)

	testutil.AssertNotExists(t, root.FS, "/out/stale.txt")
	assert.Len(t, testutil.Snapshot(t, root.FS, outputDir), 1)
}

func TestRunClearOutputPermissionDenied(t *testing.T) {
	root := flaskRoot(t)
	require.NoError(t, root.FS.MkdirAll(outputDir, 0755))
	fs := &denyRemoveFs{Fs: root.FS}

	opts := defaultOptions()
	opts.ClearOutput = true
	_, err := pipeline.Run(context.Background(), pipeline.Env{FS: fs}, selectTemplates(t, root, "main"), opts)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPermission))
	assert.Contains(t, err.Error(), "try again with elevated privileges (e.g. sudo)")
}

type denyRemoveFs struct {
	afero.Fs
}

func (d *denyRemoveFs) RemoveAll(path string) error {
	return &os.PathError{Op: "remove", Path: path, Err: os.ErrPermission}
}

type fakeEditor struct {
	paths []string
	set   map[string]string
}

func (f *fakeEditor) Edit(_ context.Context, path string, current map[string]string) (map[string]string, error) {
	f.paths = append(f.paths, path)
	out := make(map[string]string, len(current))
	for k, v := range current {
		out[k] = v
	}
	for k, v := range f.set {
		out[k] = v
	}
	return out, nil
}

type fakeConfirmer struct {
	answer bool
	asked  []string
}

func (f *fakeConfirmer) ConfirmCreate(_ context.Context, dir string) (bool, error) {
	f.asked = append(f.asked, dir)
	return f.answer, nil
}

type countingProgress struct {
	total, ticks int
	stopped      bool
}

func (p *countingProgress) Start(total int, _ string) { p.total = total }
func (p *countingProgress) Increment()                { p.ticks++ }
func (p *countingProgress) Stop()                     { p.stopped = true }

func TestRunInteractive(t *testing.T) {
	root := flaskRoot(t)
	editor := &fakeEditor{set: map[string]string{"port": "1234"}}
	confirmer := &fakeConfirmer{answer: true}
	progress := &countingProgress{}

	env := pipeline.Env{FS: root.FS, Editor: editor, Confirmer: confirmer, Progress: progress}
	opts := defaultOptions()
	opts.Interactive = true

	_, err := pipeline.Run(context.Background(), env, selectTemplates(t, root, "main", "auth"), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{outputDir}, confirmer.asked)
	assert.Equal(t, []string{"/out/main.py"}, editor.paths, "only files with config markers are edited")
	assert.Contains(t, testutil.ReadFile(t, root.FS, "/out/main.py"), "app.run(port=1234)")
	assert.Equal(t, 2, progress.total)
	assert.Equal(t, 2, progress.ticks)
	assert.True(t, progress.stopped)
}

func TestRunNonInteractiveSkipsPrompts(t *testing.T) {
	root := flaskRoot(t)
	editor := &fakeEditor{set: map[string]string{"port": "1234"}}
	confirmer := &fakeConfirmer{}

	env := pipeline.Env{FS: root.FS, Editor: editor, Confirmer: confirmer}
	_, err := pipeline.Run(context.Background(), env, selectTemplates(t, root, "main"), defaultOptions())
	require.NoError(t, err)

	assert.Empty(t, confirmer.asked)
	assert.Empty(t, editor.paths)
}

func TestRunDeclinedCreation(t *testing.T) {
	root := flaskRoot(t)
	env := pipeline.Env{FS: root.FS, Confirmer: &fakeConfirmer{answer: false}}
	opts := defaultOptions()
	opts.Interactive = true

	_, err := pipeline.Run(context.Background(), env, selectTemplates(t, root, "main"), opts)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAborted))
	testutil.AssertNotExists(t, root.FS, outputDir)
}

func TestRunCancelled(t *testing.T) {
	root := flaskRoot(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.Run(ctx, pipeline.Env{FS: root.FS}, selectTemplates(t, root, "main"), defaultOptions())

	require.ErrorIs(t, err, context.Canceled)
	testutil.AssertNotExists(t, root.FS, "/out/main.py")
}

func TestRunEmptyOutputDir(t *testing.T) {
	root := flaskRoot(t)
	_, err := pipeline.Run(context.Background(), pipeline.Env{FS: root.FS},
		selectTemplates(t, root, "main"), pipeline.Options{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRunHooks(t *testing.T) {
	base := t.TempDir()
	fs := afero.NewOsFs()
	root := testutil.NewTemplateRootOn(t, fs, filepath.Join(base, "templates"))
	root.AddTemplate(t, "app", "id: app\n").AddFile(t, "app.txt", "app\n")

	hookDir := filepath.Join(base, "hooks")
	require.NoError(t, os.MkdirAll(hookDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(hookDir, "pre-generation.txt"), []byte("ls\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(hookDir, "post-generation.txt"), []byte("cat app.txt\n"), 0644))

	var out bytes.Buffer
	env := pipeline.Env{FS: fs, Out: &out, Hooks: &hooks.Runner{FS: fs, Dir: hookDir}}
	opts := pipeline.Options{OutputDir: filepath.Join(base, "out"), StrictDependencies: true}

	_, err := pipeline.Run(context.Background(), env, selectTemplates(t, root, "app"), opts)
	require.NoError(t, err)

	// pre runs in the still empty directory, post sees the generated file
	assert.Equal(t, "app\n", out.String())
}
