package boilergen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/HumanBot000/BoilerGen/pkg/deps"
	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/hooks"
	"github.com/HumanBot000/BoilerGen/pkg/logging"
	"github.com/HumanBot000/BoilerGen/pkg/navigator"
	"github.com/HumanBot000/BoilerGen/pkg/pipeline"
	"github.com/HumanBot000/BoilerGen/pkg/prompt"
	"github.com/HumanBot000/BoilerGen/pkg/templates"
	"github.com/HumanBot000/BoilerGen/pkg/ui/styles"
	"github.com/HumanBot000/BoilerGen/pkg/ui/tree"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type createOptions struct {
	output               string
	clearOutput          bool
	disableDependencies  bool
	disableQuoteClipping bool
	noInput              bool
	hooksDir             string
	set                  []string
	selectIDs            []string
}

func newCreateCmd(global *globalOptions) *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:     "create [template_dir]",
		Short:   MsgCreateShort,
		Long:    MsgCreateLong,
		Example: MsgCreateExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, global, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&opts.clearOutput, "clear-output", false, MsgFlagClearOutput)
	cmd.Flags().BoolVar(&opts.disableDependencies, "disable-dependencies", false, MsgFlagDisableDependencies)
	cmd.Flags().BoolVar(&opts.disableQuoteClipping, "disable-quote-clipping", false, MsgFlagDisableQuoteClipping)
	cmd.Flags().BoolVar(&opts.noInput, "no-input", false, MsgFlagNoInput)
	cmd.Flags().StringVar(&opts.hooksDir, "hooks-dir", "", MsgFlagHooksDir)
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, MsgFlagSet)
	cmd.Flags().StringSliceVar(&opts.selectIDs, "select", nil, MsgFlagSelect)

	return cmd
}

func runCreate(cmd *cobra.Command, global *globalOptions, opts *createOptions, args []string) error {
	logger := logging.GetLogger("cmd.create")
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	extra := map[string]interface{}{}
	if len(args) == 1 {
		extra["templates.dir"] = args[0]
	}
	cfg, err := loadConfig(cmd, global, extra)
	if err != nil {
		return err
	}

	overrides, err := parseAssignments(opts.set)
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	catalog, err := templates.Discover(fs, cfg.Templates.Dir)
	if err != nil {
		return err
	}

	isInteractive := interactive(cfg)
	driver := prompt.NewSurveyDriver(out)

	// 1. Selection
	var selection navigator.Result
	switch {
	case len(opts.selectIDs) > 0 && cfg.Generation.StrictDependencies:
		all, added := deps.Closure(opts.selectIDs, catalog.Map())
		selection = navigator.Result{IDs: all, Auto: added}
	case len(opts.selectIDs) > 0:
		selection = navigator.Result{IDs: opts.selectIDs}
	case isInteractive:
		sym := navigator.FancySymbols
		if cfg.UI.Minimal {
			sym = navigator.PlainSymbols
		}
		selection, err = prompt.Navigate(ctx, driver, fs, catalog, sym, cfg.Generation.StrictDependencies)
		if err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrInvalidInput, MsgErrNoSelection)
	}

	if len(selection.IDs) == 0 {
		fmt.Fprintln(out, MsgNothingSelected)
		return nil
	}
	fmt.Fprintf(out, MsgSelectionFormat, len(selection.IDs))
	fmt.Fprint(out, navigator.Summary(selection, catalog.Map()))

	selected, err := catalog.Select(selection.IDs)
	if err != nil {
		return err
	}

	// 2. Output directory
	outputDir := cfg.Output.Dir
	if isInteractive && !cmd.Flags().Changed("output") {
		if outputDir, err = prompt.AskOutputDir(ctx, driver, outputDir); err != nil {
			return err
		}
	}

	// 3. Generate
	env := pipeline.Env{
		FS:    fs,
		Out:   out,
		Hooks: &hooks.Runner{FS: fs, Dir: cfg.Hooks.Dir},
	}
	if isInteractive {
		env.Editor = &prompt.ConfigEditor{Driver: driver}
		env.Confirmer = &prompt.Confirmer{Driver: driver}
	}
	env.Progress = progressFor(cfg.UI.Minimal, out)

	result, err := pipeline.Run(ctx, env, selected, pipeline.Options{
		OutputDir:            outputDir,
		ClearOutput:          cfg.Output.Clear,
		StrictDependencies:   cfg.Generation.StrictDependencies,
		DisableQuoteClipping: cfg.Generation.DisableQuoteClipping,
		Overrides:            overrides,
		Interactive:          isInteractive,
	})
	if err != nil {
		return err
	}

	logger.Info().Int("files", len(result.Files)).Str("output", outputDir).Msg("Create finished")
	fmt.Fprintln(out, styles.Render("Success",
		fmt.Sprintf(MsgGeneratedFormat, len(result.Files), len(result.Templates), outputDir)))
	return nil
}

func progressFor(minimal bool, out io.Writer) pipeline.Progress {
	if minimal || !styles.IsInteractive(os.Stdout) {
		return tree.Silent{}
	}
	return &tree.Bar{Writer: out}
}

// parseAssignments turns repeated key=value flags into overrides
func parseAssignments(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrSetFormat, pair)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
