package inspect

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/novel2024/sitetools/internal/apperrors"

	"github.com/PuerkitoBio/goquery"
)

// Report describes what the head section of a document currently declares.
// It backs the CLIs' dry-run mode: the mutation path never goes through an
// HTML parser, but read-only reporting can.
type Report struct {
	// Charset is the declared charset value, empty when none is declared.
	Charset string
	// HasUTF8Charset is true when the declaration names UTF-8, via either
	// the short form or the http-equiv long form.
	HasUTF8Charset bool
	// Stylesheets holds the href of every stylesheet link in the head.
	Stylesheets []string
	// Scripts holds the src of every external script in the head.
	Scripts []string
}

// HasScript reports whether any head script reference contains marker.
func (r *Report) HasScript(marker string) bool {
	for _, src := range r.Scripts {
		if strings.Contains(src, marker) {
			return true
		}
	}
	return false
}

// Head parses a document and reports its head section's declarations.
func Head(body io.Reader) (*Report, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	report := &Report{}

	doc.Find("head meta").Each(func(i int, s *goquery.Selection) {
		if value, exists := s.Attr("charset"); exists && report.Charset == "" {
			report.Charset = value
			if strings.EqualFold(value, "utf-8") {
				report.HasUTF8Charset = true
			}
			return
		}
		if equiv, exists := s.Attr("http-equiv"); exists && strings.EqualFold(equiv, "content-type") {
			content, _ := s.Attr("content")
			if idx := strings.Index(strings.ToLower(content), "charset="); idx >= 0 {
				value := strings.TrimSpace(content[idx+len("charset="):])
				if report.Charset == "" {
					report.Charset = value
				}
				if strings.EqualFold(value, "utf-8") {
					report.HasUTF8Charset = true
				}
			}
		}
	})

	doc.Find("head link[rel]").Each(func(i int, s *goquery.Selection) {
		rel, _ := s.Attr("rel")
		if !strings.EqualFold(rel, "stylesheet") {
			return
		}
		if href, exists := s.Attr("href"); exists {
			report.Stylesheets = append(report.Stylesheets, href)
		}
	})

	doc.Find("head script[src]").Each(func(i int, s *goquery.Selection) {
		if src, exists := s.Attr("src"); exists {
			report.Scripts = append(report.Scripts, src)
		}
	})

	return report, nil
}

// HeadFile is a convenience wrapper over Head for a file path.
func HeadFile(path string) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &apperrors.ErrFileAccess{Path: path, Op: "read", Err: err}
	}
	defer file.Close()
	return Head(file)
}
