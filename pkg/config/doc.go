// Package config handles configuration management for boilergen.
// It layers the embedded defaults, the user and project TOML files,
// BOILERGEN_ environment variables and explicitly set command-line flags.
package config
