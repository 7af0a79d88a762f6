package walker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/novel2024/sitetools/internal/apperrors"
)

// IndexFiles returns the path of every index.html sitting directly inside an
// immediate subdirectory of root. The root directory itself is not searched.
func IndexFiles(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &apperrors.ErrFileAccess{Path: root, Op: "read directory", Err: err}
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := filepath.Join(root, entry.Name(), "index.html")
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			files = append(files, candidate)
		}
	}
	return files, nil
}

// HTMLFiles returns every *.html file sitting directly inside an immediate
// non-hidden subdirectory of root. Dot-directories are skipped.
func HTMLFiles(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &apperrors.ErrFileAccess{Path: root, Op: "read directory", Err: err}
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		matches, err := filepath.Glob(filepath.Join(root, entry.Name(), "*.html"))
		if err != nil {
			continue
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	return files, nil
}
