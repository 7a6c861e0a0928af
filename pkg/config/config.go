package config

// Config is the effective boilergen configuration
type Config struct {
	Templates  TemplatesConfig  `koanf:"templates" toml:"templates"`
	Output     OutputConfig     `koanf:"output" toml:"output"`
	Generation GenerationConfig `koanf:"generation" toml:"generation"`
	UI         UIConfig         `koanf:"ui" toml:"ui"`
	Hooks      HooksConfig      `koanf:"hooks" toml:"hooks"`
}

type TemplatesConfig struct {
	Dir string `koanf:"dir" toml:"dir"`
}

type OutputConfig struct {
	Dir   string `koanf:"dir" toml:"dir"`
	Clear bool   `koanf:"clear" toml:"clear"`
}

// GenerationConfig controls dependency resolution and substitution
type GenerationConfig struct {
	StrictDependencies   bool `koanf:"strict_dependencies" toml:"strict_dependencies"`
	DisableQuoteClipping bool `koanf:"disable_quote_clipping" toml:"disable_quote_clipping"`
}

type UIConfig struct {
	Minimal     bool `koanf:"minimal" toml:"minimal"`
	Interactive bool `koanf:"interactive" toml:"interactive"`
}

type HooksConfig struct {
	Dir string `koanf:"dir" toml:"dir"`
}
