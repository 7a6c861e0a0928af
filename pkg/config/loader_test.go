package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("defaults_only", func(t *testing.T) {
		dir := isolate(t)

		cfg, err := Load(LoadOptions{WorkDir: dir})
		require.NoError(t, err)

		assert.Equal(t, "boilergen/templates", cfg.Templates.Dir)
		assert.Equal(t, "output", cfg.Output.Dir)
		assert.False(t, cfg.Output.Clear)
		assert.True(t, cfg.Generation.StrictDependencies)
		assert.False(t, cfg.Generation.DisableQuoteClipping)
		assert.True(t, cfg.UI.Interactive)
		assert.Equal(t, "boilergen/hooks", cfg.Hooks.Dir)
	})

	t.Run("project_file_overrides_user_file", func(t *testing.T) {
		dir := isolate(t)

		userPath := UserConfigPath()
		require.NoError(t, os.MkdirAll(filepath.Dir(userPath), 0755))
		require.NoError(t, os.WriteFile(userPath, []byte(`
[output]
dir = "from-user"
clear = true
`), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(`
[output]
dir = "from-project"
`), 0644))

		cfg, err := Load(LoadOptions{WorkDir: dir})
		require.NoError(t, err)

		assert.Equal(t, "from-project", cfg.Output.Dir)
		assert.True(t, cfg.Output.Clear, "user file value should survive when project file is silent")
	})

	t.Run("env_overrides_files", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(`
[generation]
strict_dependencies = true
`), 0644))
		t.Setenv("BOILERGEN_GENERATION_STRICT_DEPENDENCIES", "false")
		t.Setenv("BOILERGEN_TEMPLATES_DIR", "/srv/templates")

		cfg, err := Load(LoadOptions{WorkDir: dir})
		require.NoError(t, err)

		assert.False(t, cfg.Generation.StrictDependencies)
		assert.Equal(t, "/srv/templates", cfg.Templates.Dir)
	})

	t.Run("flags_override_env", func(t *testing.T) {
		dir := isolate(t)
		t.Setenv("BOILERGEN_OUTPUT_DIR", "from-env")

		cfg, err := Load(LoadOptions{
			WorkDir:   dir,
			Overrides: map[string]interface{}{"output.dir": "from-flag", "ui.minimal": true},
		})
		require.NoError(t, err)

		assert.Equal(t, "from-flag", cfg.Output.Dir)
		assert.True(t, cfg.UI.Minimal)
	})

	t.Run("malformed_file", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte("[output\n"), 0644))

		_, err := Load(LoadOptions{WorkDir: dir})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BOILERGEN_OUTPUT_DIR", "output.dir"},
		{"BOILERGEN_GENERATION_DISABLE_QUOTE_CLIPPING", "generation.disable_quote_clipping"},
		{"BOILERGEN_DEBUG", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}

func TestToTOML(t *testing.T) {
	dir := isolate(t)
	cfg, err := Load(LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	out, err := ToTOML(cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "[generation]")
	assert.Contains(t, out, "strict_dependencies = true")
	assert.Contains(t, out, "[hooks]")
}
