package patcher

import (
	"os"
	"regexp"
	"strings"

	"github.com/novel2024/sitetools/internal/apperrors"
	"github.com/novel2024/sitetools/internal/config"
)

const headCloseTag = "</head>"

var (
	// Non-greedy so only the first head section is captured, dot-all so the
	// section may span lines, attributes tolerated on the opening tag.
	headSectionPattern = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	// Any link element carrying a stylesheet role.
	stylesheetLinkPattern = regexp.MustCompile(`(?i)<link[^>]*stylesheet[^>]*>`)
)

// Inject splices snippet into the head section of text unless marker already
// occurs anywhere in it. The snippet goes immediately after the last
// stylesheet link inside the head, or before the closing head tag when there
// is none. Reassembly splices by the matched span's offsets, so a later
// section with identical tags is never touched. Text outside the splice
// region survives byte for byte.
func Inject(text, snippet, marker string) (string, InjectResult) {
	if marker != "" && strings.Contains(text, marker) {
		return text, AlreadyPresent
	}

	loc := headSectionPattern.FindStringIndex(text)
	if loc == nil {
		return text, NoAnchor
	}

	section := text[loc[0]:loc[1]]
	// The match always ends with the 7-character closing tag.
	body := section[:len(section)-len(headCloseTag)]
	closing := section[len(section)-len(headCloseTag):]

	var newSection string
	if links := stylesheetLinkPattern.FindAllStringIndex(body, -1); len(links) > 0 {
		end := links[len(links)-1][1]
		newSection = body[:end] + "\n" + snippet + body[end:] + closing
	} else {
		newSection = body + "\n" + snippet + "\n    " + closing
	}

	return text[:loc[0]] + newSection + text[loc[1]:], Inserted
}

// InjectFile applies Inject to the UTF-8 file at path, rewriting it only when
// an insertion happened.
func InjectFile(path, snippet, marker string) (*Outcome, error) {
	logger := config.GetLogger()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &apperrors.ErrFileAccess{Path: path, Op: "read", Err: err}
	}

	newText, result := Inject(string(raw), snippet, marker)
	outcome := &Outcome{Path: path}

	switch result {
	case AlreadyPresent:
		outcome.Status = StatusUnchanged
		return outcome, nil
	case NoAnchor:
		outcome.Status = StatusSkippedNoAnchor
		outcome.HeadMissing = true
		logger.Warn().Err(&apperrors.ErrAnchorNotFound{Path: path}).Msg("Skipping file without a <head> section")
		return outcome, nil
	}

	if err := os.WriteFile(path, []byte(newText), 0o644); err != nil {
		return nil, &apperrors.ErrFileAccess{Path: path, Op: "write", Err: err}
	}
	outcome.Status = StatusModified
	return outcome, nil
}
