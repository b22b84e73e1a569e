// Package main implements dcminspect, a small CLI that assembles a
// synthetic DICOM DataSet in memory (no byte-level file parsing — none
// exists in this module) and renders it, exercising the dcm/vr/tag/
// dictionary/uid packages end to end.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/codeninja55/dcmcore/internal/build"
	"github.com/codeninja55/dcmcore/internal/config"
)

const (
	appName        = "dcminspect"
	appDescription = "In-memory DICOM data model inspector"
)

// CLI represents the root command structure.
type CLI struct {
	config.GlobalConfig

	Version kong.VersionFlag `name:"version" help:"Print version information and quit"`
	Inspect InspectCmd       `cmd:"" default:"withargs" help:"Build and render a synthetic DataSet"`
}

// Run parses os.Args and executes the selected subcommand.
func Run(version, commit, date string) error {
	build.SetBuildInfo(version, commit, date)
	info := build.Get()

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": info.String()},
	)

	logger := setupLogger(&cli.GlobalConfig)
	logger.Debug("dcminspect starting", "version", version, "commit", commit, "build_date", date)

	if err := ctx.Run(&cli.GlobalConfig); err != nil {
		logger.Error("command failed", "error", err)
		return err
	}
	return nil
}

// setupLogger configures the global logger based on GlobalConfig.
func setupLogger(cfg *config.GlobalConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	switch cfg.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	if !cfg.Pretty {
		logger.SetFormatter(log.JSONFormatter)
	}

	log.SetDefault(logger)
	return logger
}
