package testutil

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ReadFile returns the content at path, failing the test when it is missing
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

// AssertFileContent checks the content at path
func AssertFileContent(t *testing.T, fs afero.Fs, path, want string) {
	t.Helper()
	assert.Equal(t, want, ReadFile(t, fs, path), "content of %s", path)
}

// AssertNotExists checks that nothing exists at path
func AssertNotExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.False(t, exists, "%s should not exist", path)
}

// Snapshot returns path to content for every file below dir
func Snapshot(t *testing.T, fs afero.Fs, dir string) map[string]string {
	t.Helper()

	out := make(map[string]string)
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return err
		}
		out[path] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}
