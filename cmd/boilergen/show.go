package boilergen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/HumanBot000/BoilerGen/pkg/cobrax/topics"
	"github.com/HumanBot000/BoilerGen/pkg/deps"
	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/templates"
	"github.com/HumanBot000/BoilerGen/pkg/types"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

const readmeFile = "README.md"

func newShowCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <template_id>",
		Short: MsgShowShort,
		Long:  MsgShowLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, global, nil)
			if err != nil {
				return err
			}

			fs := afero.NewOsFs()
			catalog, err := templates.Discover(fs, cfg.Templates.Dir)
			if err != nil {
				return err
			}
			tmpl, ok := catalog.Get(args[0])
			if !ok {
				return errors.Newf(errors.ErrTemplateNotFound, MsgTemplateNotFound, args[0], cfg.Templates.Dir)
			}

			doc, err := describe(fs, tmpl, deps.Dependents(tmpl.ID, catalog.Map()))
			if err != nil {
				return err
			}

			renderer := topics.Switch{
				UsePlain: func() bool { return cfg.UI.Minimal },
				Rich:     topics.NewGlamourRenderer(),
			}
			fmt.Fprint(cmd.OutOrStdout(), renderer.Render(doc, ".md"))
			return nil
		},
	}
}

// describe builds a markdown description of tmpl followed by its README
func describe(fs afero.Fs, tmpl types.Template, dependents []string) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", tmpl.Label)
	fmt.Fprintf(&b, "`%s` in `%s`\n\n", tmpl.ID, tmpl.Path)

	writeList(&b, "Requires", tmpl.Requires)
	writeList(&b, "Required by", dependents)

	if len(tmpl.Descriptor.Config) > 0 {
		keys := make([]string, 0, len(tmpl.Descriptor.Config))
		for k := range tmpl.Descriptor.Config {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("## Config\n\n| key | default |\n| --- | --- |\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "| %s | %s |\n", k, cast.ToString(tmpl.Descriptor.Config[k]))
		}
		b.WriteString("\n")
	}

	if len(tmpl.Descriptor.Injections) > 0 {
		b.WriteString("## Injections\n\n")
		for _, inj := range tmpl.Descriptor.Injections {
			fmt.Fprintf(&b, "- %s into `%s/%s` at %s from `%s`\n",
				inj.Method, inj.TargetTemplateID, inj.TargetFile, inj.Anchor, inj.SourceFile)
		}
		b.WriteString("\n")
	}

	readme, err := afero.ReadFile(fs, filepath.Join(tmpl.Path, readmeFile))
	switch {
	case err == nil:
		b.WriteString("---\n\n")
		b.Write(readme)
	case os.IsNotExist(err):
		b.WriteString(MsgNoReadme + "\n")
	default:
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", readmeFile)
	}

	return b.String(), nil
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
