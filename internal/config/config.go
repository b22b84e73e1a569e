// Package config holds flags shared across dcminspect's subcommands.
package config

// OutputFormat selects how a rendered DataSet is written to stdout.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

// GlobalConfig is embedded into the root CLI struct so every subcommand's
// Run method receives it as a parameter, following kong's bind-by-type
// convention.
type GlobalConfig struct {
	LogLevel string       `name:"log-level" enum:"debug,info,warn,error" default:"info" help:"Log verbosity"`
	Pretty   bool         `name:"pretty" default:"true" negatable:"" help:"Use colorized, human-readable log output"`
	Debug    bool         `name:"debug" help:"Report caller location in log output"`
	Format   OutputFormat `name:"format" enum:"table,json" default:"table" help:"Output rendering format"`
}
