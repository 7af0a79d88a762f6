package runner

import (
	"errors"
	"testing"

	"github.com/novel2024/sitetools/internal/patcher"
)

// TestRun_CountsEveryOutcome tests that the summary buckets statuses
// correctly and that a failure never stops the run.
func TestRun_CountsEveryOutcome(t *testing.T) {
	t.Parallel()

	outcomes := map[string]struct {
		status patcher.Status
		err    error
	}{
		"a.html": {status: patcher.StatusModified},
		"b.html": {status: patcher.StatusUnchanged},
		"c.html": {status: patcher.StatusSkippedNoAnchor},
		"d.html": {err: errors.New("boom")},
		"e.html": {status: patcher.StatusModified},
	}

	var order []string
	summary := Run([]string{"a.html", "b.html", "c.html", "d.html", "e.html"}, func(path string) (patcher.Status, error) {
		order = append(order, path)
		o := outcomes[path]
		return o.status, o.err
	})

	if len(order) != 5 {
		t.Fatalf("Expected all 5 files processed despite the failure, got %d", len(order))
	}
	if summary.Modified != 2 || summary.Unchanged != 1 || summary.Skipped != 1 || summary.Failed != 1 {
		t.Errorf("Unexpected summary: %+v", summary)
	}
	if summary.Total() != 5 {
		t.Errorf("Expected total 5, got %d", summary.Total())
	}
	if len(summary.Failures) != 1 || summary.Failures[0].Path != "d.html" {
		t.Errorf("Expected d.html recorded as the failure, got %+v", summary.Failures)
	}
}

// TestRun_Empty tests the zero-file run.
func TestRun_Empty(t *testing.T) {
	t.Parallel()

	summary := Run(nil, func(path string) (patcher.Status, error) {
		t.Error("Process function should not be called")
		return patcher.StatusUnchanged, nil
	})
	if summary.Total() != 0 {
		t.Errorf("Expected empty summary, got %+v", summary)
	}
}

// TestRun_SequentialOrder tests that files are processed one at a time in
// the given order.
func TestRun_SequentialOrder(t *testing.T) {
	t.Parallel()

	files := []string{"1.html", "2.html", "3.html"}
	var order []string
	Run(files, func(path string) (patcher.Status, error) {
		order = append(order, path)
		return patcher.StatusUnchanged, nil
	})

	for i, path := range files {
		if order[i] != path {
			t.Fatalf("Expected order %v, got %v", files, order)
		}
	}
}
