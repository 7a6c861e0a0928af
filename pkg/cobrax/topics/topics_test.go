package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFS() fstest.MapFS {
	return fstest.MapFS{
		"markers.md":       {Data: []byte("# Markers\n\nTag regions.")},
		"hooks.txt":        {Data: []byte("Hook files run in order.")},
		"option-set.md":    {Data: []byte("Sets a config value.")},
		"nested/config.md": {Data: []byte("Config layers.")},
		"ignored.json":     {Data: []byte("{}")},
		"notes.txxt":       {Data: []byte("custom ext")},
	}
}

func TestLoad(t *testing.T) {
	m, err := Load(sampleFS(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"config", "hooks", "markers", "option-set"}, m.Names())

	topic, ok := m.Get("markers")
	require.True(t, ok)
	assert.Equal(t, ".md", topic.Format)
	assert.Equal(t, "# Markers\n\nTag regions.", topic.Content)

	_, ok = m.Get("ignored")
	assert.False(t, ok)
}

func TestLoadCustomExtensions(t *testing.T) {
	m, err := Load(sampleFS(), Options{Extensions: []string{".txxt"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes"}, m.Names())
}

func TestGetFlagStyle(t *testing.T) {
	m, err := Load(sampleFS(), Options{})
	require.NoError(t, err)

	for _, name := range []string{"--set", "-set", "set", "option-set"} {
		topic, ok := m.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-set", topic.Name)
	}
}

func TestWriteList(t *testing.T) {
	m, err := Load(sampleFS(), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	m.WriteList(&buf, "boilergen")

	out := buf.String()
	assert.Contains(t, out, "General topics:\n  config\n  hooks\n  markers\n")
	assert.Contains(t, out, "Option topics:\n  --set\n")
	assert.Contains(t, out, "Use 'boilergen help <topic>'")
}

func TestWriteListEmpty(t *testing.T) {
	m, err := Load(fstest.MapFS{}, Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	m.WriteList(&buf, "app")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func TestInstall(t *testing.T) {
	m, err := Load(sampleFS(), Options{Renderer: RendererFunc(func(content, format string) string {
		return format + ":" + content
	})})
	require.NoError(t, err)

	root := &cobra.Command{Use: "app", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "create", Short: "Create things", Run: func(*cobra.Command, []string) {}})
	Install(root, m)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "topic", args: []string{"help", "hooks"}, want: ".txt:Hook files run in order."},
		{name: "flag_topic", args: []string{"help", "--set"}, want: ".md:Sets a config value."},
		{name: "list", args: []string{"help", "topics"}, want: "Available help topics:"},
		{name: "command", args: []string{"help", "create"}, want: "Create things"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			root.SetOut(&buf)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestPlainRenderer(t *testing.T) {
	r := PlainRenderer{}
	assert.Equal(t, "# x\n", r.Render("# x", ".md"))
	assert.Equal(t, "a\n", r.Render("a\n\n\n", ".txt"))
	assert.Equal(t, "", r.Render("", ".md"))
}

func TestSwitch(t *testing.T) {
	rich := RendererFunc(func(content, _ string) string { return "rich:" + content })
	plain := false

	s := Switch{UsePlain: func() bool { return plain }, Rich: rich}
	assert.Equal(t, "rich:x", s.Render("x", ".md"))

	plain = true
	assert.Equal(t, "x\n", s.Render("x", ".md"), "decided at render time")

	assert.Equal(t, "rich:x", Switch{Rich: rich}.Render("x", ".md"))
	assert.Equal(t, "x\n", Switch{}.Render("x", ".md"))
}

func TestGlamourRendererSkipsText(t *testing.T) {
	r := &GlamourRenderer{Style: "notty"}
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
	assert.Contains(t, r.Render("# Title", ".md"), "Title")
}
