// Command utf8lite is the detection-free variant of utf8fix: instead of
// sniffing the encoding from the content, it tries a fixed list of candidate
// encodings in order and takes the first that decodes.
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
	Root     string `help:"Directory whose subdirectories are scanned for index.html files." short:"r" type:"path"`
	DryRun   bool   `help:"Report charset declarations without modifying any file."`
	LogLevel string `help:"Log level (trace, debug, info, warn, error)."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("utf8lite"),
		kong.Description("Re-save subdirectory index.html files as UTF-8 using a fixed encoding fallback chain."),
		kong.UsageOnError(),
	)

	config.SetLogLevel(CLI.LogLevel)
	cfg := config.GetConfig()
	logger := config.GetLogger()

	root := CLI.Root
	if root == "" {
		root = cfg.Root
	}

	files, err := walker.IndexFiles(root)
	if err != nil {
		logger.Fatal().Err(err).Str("root", root).Msg("Failed to scan for index.html files")
	}
	logger.Info().Int("files", len(files)).Str("root", root).Msg("Found index.html files in subdirectories")

	if CLI.DryRun {
		for _, path := range files {
			report, err := inspect.HeadFile(path)
			if err != nil {
				logger.Error().Err(err).Str("path", path).Msg("Failed to inspect file")
				continue
			}
			logger.Info().
				Str("path", path).
				Str("charset", report.Charset).
				Bool("utf8_declared", report.HasUTF8Charset).
				Msg("Charset report")
		}
		return
	}

	normalizer := patcher.NewNormalizer(patcher.NewChainDecoder())
	summary := runner.Run(files, func(path string) (patcher.Status, error) {
		outcome, err := normalizer.Normalize(path)
		if err != nil {
			return patcher.StatusFailed, err
		}
		return outcome.Status, nil
	})

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
