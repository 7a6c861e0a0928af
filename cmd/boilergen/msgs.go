package boilergen

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Generate projects from template packages"
	MsgCreateShort    = "Generate a project from selected templates"
	MsgTemplatesShort = "Show the template tree"
	MsgTemplatesLong  = "Templates lists every group and template package below the template directory."
	MsgShowShort      = "Describe a template package"
	MsgShowLong       = "Show prints a template's requirements, config defaults and injections, followed by its README.md when it has one."
	MsgConfigShort    = "Print the effective configuration"
	MsgConfigLong     = "Config prints the configuration boilergen would use here, after every file, environment variable and flag has been applied."

	// Status messages
	MsgNothingSelected  = "No templates selected."
	MsgSelectionFormat  = "Selected %d template(s):\n"
	MsgGeneratedFormat  = "✔ Generated %d file(s) from %d template(s) into %s"
	MsgCancelled        = "Operation cancelled by user."
	MsgNoReadme         = "_This template has no README.md._"
	MsgTemplateNotFound = "template '%s' not found in %s"

	// Error messages
	MsgErrLoadConfig  = "failed to load configuration"
	MsgErrNoSelection = "no templates selected; pass --select or run in a terminal"
	MsgErrSetFormat   = "invalid --set value %q, expected key=value"

	// Flag descriptions
	MsgFlagVerbose              = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig               = "Path to the user config file"
	MsgFlagTemplatesDir         = "Template root directory"
	MsgFlagOutput               = "Output directory"
	MsgFlagClearOutput          = "Remove the output directory first if it exists"
	MsgFlagDisableDependencies  = "Generate even when required templates are missing"
	MsgFlagDisableQuoteClipping = "Keep the quotes around substituted config values"
	MsgFlagMinimalUI            = "Plain output without colors, icons or progress bar"
	MsgFlagNoInput              = "Never prompt; requires --select"
	MsgFlagSet                  = "Set a config value (key=value, repeatable)"
	MsgFlagSelect               = "Select a template by id (repeatable)"
	MsgFlagHooksDir             = "Directory holding pre-generation.txt and post-generation.txt"
	MsgFlagDefaults             = "Print the built-in defaults instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/create-long.txt
	msgCreateLongRaw string
	MsgCreateLong    = strings.TrimSpace(msgCreateLongRaw)

	//go:embed msgs/create-example.txt
	msgCreateExampleRaw string
	MsgCreateExample    = strings.TrimRight(msgCreateExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
