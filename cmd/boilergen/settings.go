package boilergen

import (
	"os"

	"github.com/HumanBot000/BoilerGen/pkg/config"
	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/ui/styles"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagBinding ties a command-line flag to a dotted config key
type flagBinding struct {
	flag   string
	key    string
	invert bool
}

var bindings = []flagBinding{
	{flag: "templates-dir", key: "templates.dir"},
	{flag: "minimal-ui", key: "ui.minimal"},
	{flag: "output", key: "output.dir"},
	{flag: "clear-output", key: "output.clear"},
	{flag: "disable-dependencies", key: "generation.strict_dependencies", invert: true},
	{flag: "disable-quote-clipping", key: "generation.disable_quote_clipping"},
	{flag: "no-input", key: "ui.interactive", invert: true},
	{flag: "hooks-dir", key: "hooks.dir"},
}

// flagOverrides collects the config overrides of every flag the user set.
// Flags left at their defaults never shadow file or environment values.
func flagOverrides(flags *pflag.FlagSet) map[string]interface{} {
	overrides := make(map[string]interface{})
	for _, b := range bindings {
		f := flags.Lookup(b.flag)
		if f == nil || !f.Changed {
			continue
		}
		if f.Value.Type() != "bool" {
			overrides[b.key] = f.Value.String()
			continue
		}
		value := cast.ToBool(f.Value.String())
		if b.invert {
			value = !value
		}
		overrides[b.key] = value
	}
	return overrides
}

// loadConfig resolves the configuration for cmd. extra wins over flags.
func loadConfig(cmd *cobra.Command, opts *globalOptions, extra map[string]interface{}) (*config.Config, error) {
	overrides := flagOverrides(cmd.Flags())
	for k, v := range extra {
		overrides[k] = v
	}

	cfg, err := config.Load(config.LoadOptions{
		UserConfigPath: opts.configPath,
		Overrides:      overrides,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrLoadConfig)
	}

	// colors also drop on piped output or NO_COLOR; layout follows ui.minimal only
	styles.SetMinimal(cfg.UI.Minimal || styles.PreferMinimal(os.Stdout))
	return cfg, nil
}

// interactive reports whether prompts can be shown
func interactive(cfg *config.Config) bool {
	return cfg.UI.Interactive && styles.IsInteractive(os.Stdin) && styles.IsInteractive(os.Stdout)
}
