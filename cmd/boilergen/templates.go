package boilergen

import (
	"fmt"

	"github.com/HumanBot000/BoilerGen/pkg/ui/tree"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "templates [template_dir]",
		Short: MsgTemplatesShort,
		Long:  MsgTemplatesLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra := map[string]interface{}{}
			if len(args) == 1 {
				extra["templates.dir"] = args[0]
			}
			cfg, err := loadConfig(cmd, global, extra)
			if err != nil {
				return err
			}

			root, err := tree.Build(afero.NewOsFs(), cfg.Templates.Dir)
			if err != nil {
				return err
			}

			if cfg.UI.Minimal {
				fmt.Fprint(cmd.OutOrStdout(), tree.Plain(root))
				return nil
			}
			rendered, err := tree.Render(root)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
