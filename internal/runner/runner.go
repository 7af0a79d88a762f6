package runner

import (
	"github.com/novel2024/sitetools/internal/config"
	"github.com/novel2024/sitetools/internal/patcher"
)

// ProcessFunc handles one file and reports how it ended up.
type ProcessFunc func(path string) (patcher.Status, error)

// Failure records one failed file for the end-of-run report.
type Failure struct {
	Path string
	Err  error
}

// Summary counts how a batch run went. A failure on one file never aborts
// the run; it is recorded here and the run continues.
type Summary struct {
	Modified  int
	Unchanged int
	Skipped   int
	Failed    int
	Failures  []Failure
}

// Total returns the number of files attempted.
func (s *Summary) Total() int {
	return s.Modified + s.Unchanged + s.Skipped + s.Failed
}

// Run processes each file in order, one at a time, logging a status line per
// file and a summary at the end.
func Run(files []string, process ProcessFunc) *Summary {
	logger := config.GetLogger()
	summary := &Summary{}

	for _, path := range files {
		status, err := process(path)
		if err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{Path: path, Err: err})
			logger.Error().Err(err).Str("path", path).Msg("Failed to process file")
			continue
		}

		switch status {
		case patcher.StatusModified:
			summary.Modified++
			logger.Info().Str("path", path).Msg("Modified")
		case patcher.StatusSkippedNoAnchor:
			summary.Skipped++
			logger.Info().Str("path", path).Msg("Skipped, no insertion point")
		default:
			summary.Unchanged++
			logger.Info().Str("path", path).Msg("Unchanged")
		}
	}

	logger.Info().
		Int("total", summary.Total()).
		Int("modified", summary.Modified).
		Int("unchanged", summary.Unchanged).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("Run complete")

	for _, failure := range summary.Failures {
		logger.Error().Err(failure.Err).Str("path", failure.Path).Msg("Failure")
	}

	return summary
}
