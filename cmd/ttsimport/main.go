// Command ttsimport adds the TTS sender script reference to every HTML file
// found in immediate subdirectories, skipping files that already carry it.
package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/novel2024/sitetools/internal/config"
	"github.com/novel2024/sitetools/internal/inspect"
	"github.com/novel2024/sitetools/internal/patcher"
	"github.com/novel2024/sitetools/internal/runner"
	"github.com/novel2024/sitetools/internal/walker"
)

var CLI struct {
	Root     string `arg:"" optional:"" help:"Directory whose subdirectories are scanned for HTML files." type:"path"`
	DryRun   bool   `help:"Report which files carry the script reference without modifying any."`
	LogLevel string `help:"Log level (trace, debug, info, warn, error)."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("ttsimport"),
		kong.Description("Inject the TTS sender script into the head of every subdirectory HTML file."),
		kong.UsageOnError(),
	)

	config.SetLogLevel(CLI.LogLevel)
	cfg := config.GetConfig()
	logger := config.GetLogger()

	root := CLI.Root
	if root == "" {
		root = cfg.Root
	}

	files, err := walker.HTMLFiles(root)
	if err != nil {
		logger.Fatal().Err(err).Str("root", root).Msg("Failed to scan for HTML files")
	}
	if len(files) == 0 {
		logger.Warn().Str("root", root).Msg("No HTML files found in subdirectories")
		return
	}
	logger.Info().Int("files", len(files)).Str("root", root).Msg("Found HTML files in subdirectories")

	if CLI.DryRun {
		for _, path := range files {
			report, err := inspect.HeadFile(path)
			if err != nil {
				logger.Error().Err(err).Str("path", path).Msg("Failed to inspect file")
				continue
			}
			logger.Info().
				Str("path", path).
				Bool("already_imported", report.HasScript(cfg.Marker)).
				Int("stylesheets", len(report.Stylesheets)).
				Msg("Import report")
		}
		return
	}

	summary := runner.Run(files, func(path string) (patcher.Status, error) {
		outcome, err := patcher.InjectFile(path, cfg.Snippet, cfg.Marker)
		if err != nil {
			return patcher.StatusFailed, err
		}
		return outcome.Status, nil
	})

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
