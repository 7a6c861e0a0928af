package boilergen

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/HumanBot000/BoilerGen/internal/version"
	"github.com/HumanBot000/BoilerGen/pkg/cobrax/topics"
	"github.com/HumanBot000/BoilerGen/pkg/logging"
	"github.com/HumanBot000/BoilerGen/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity    int
	configPath   string
	templatesDir string
	minimalUI    bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "boilergen",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.templatesDir, "templates-dir", "t", "", MsgFlagTemplatesDir)
	rootCmd.PersistentFlags().BoolVar(&opts.minimalUI, "minimal-ui", false, MsgFlagMinimalUI)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCreateCmd(opts))
	rootCmd.AddCommand(newTemplatesCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	// Topic-based help
	if sub, err := fs.Sub(topicFiles, "topics"); err == nil {
		renderer := topics.Switch{
			UsePlain: func() bool { return opts.minimalUI || styles.PreferMinimal(os.Stdout) },
			Rich:     topics.NewGlamourRenderer(),
		}
		if manager, err := topics.Load(sub, topics.Options{Renderer: renderer}); err == nil {
			topics.Install(rootCmd, manager)
		} else {
			log.Warn().Err(err).Msg("Failed to load help topics")
		}
	}

	return rootCmd
}
