// Package generator writes a prepared template file to its destination.
package generator

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/logging"
	"github.com/HumanBot000/BoilerGen/pkg/types"
	"github.com/spf13/afero"
)

// Options controls substitution
type Options struct {
	// DisableQuoteClipping keeps the quotes around a config marker
	DisableQuoteClipping bool
}

// Render returns the generated text of file: config markers substituted and
// tag marker lines blanked. The line count of the template is kept.
func Render(file *types.TemplateFile, opts Options) string {
	logger := logging.GetLogger("generator")
	text := file.Content

	configs := make([]*types.ValueConfig, len(file.Configs))
	copy(configs, file.Configs)
	sort.SliceStable(configs, func(i, j int) bool {
		return configs[i].ReplacementStart > configs[j].ReplacementStart
	})

	for _, c := range configs {
		start, end := c.ReplacementStart, c.ReplacementEnd
		if start < 0 || end > len(text) || start > end {
			logger.Warn().Str("file", file.SourcePath).Str("key", c.Identifier).Msg("Config marker out of range, skipping")
			continue
		}
		if !opts.DisableQuoteClipping && start > 0 && end < len(text) && isQuote(text[start-1]) && text[start-1] == text[end] {
			start--
			end++
		}

		value := c.Resolved()
		if !value.IsDefined() {
			logger.Warn().
				Str("file", file.DestinationPath).
				Str("key", c.Identifier).
				Msg("No value for config, inserting " + types.NotDefined)
		}
		text = text[:start] + value.String() + text[end:]
	}

	lines := strings.Split(text, "\n")
	for _, tag := range file.Tags {
		blank(lines, tag.LineStart-1)
		blank(lines, tag.LineEnd-1)
	}

	return strings.Join(lines, "\n")
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

// blank empties a line but keeps a trailing carriage return
func blank(lines []string, idx int) {
	if idx < 0 || idx >= len(lines) {
		return
	}
	if strings.HasSuffix(lines[idx], "\r") {
		lines[idx] = "\r"
		return
	}
	lines[idx] = ""
}

// Generate renders file and writes it to its destination on fs, creating
// parent directories and overwriting any existing file
func Generate(fs afero.Fs, file *types.TemplateFile, opts Options) error {
	logger := logging.GetLogger("generator")
	dest := file.DestinationPath

	if err := fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", dest).
			WithDetail("path", dest)
	}

	if err := afero.WriteFile(fs, dest, []byte(Render(file, opts)), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest).
			WithDetail("path", dest)
	}

	logger.Debug().
		Str("template", file.TemplateID).
		Str("dest", dest).
		Int("configs", len(file.Configs)).
		Int("tags", len(file.Tags)).
		Msg("Generated file")
	return nil
}
