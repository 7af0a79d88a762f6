package patcher

import (
	"bytes"
	"errors"
	"os"
	"regexp"

	"github.com/novel2024/sitetools/internal/apperrors"
	"github.com/novel2024/sitetools/internal/config"
)

// CharsetMetaTag is the canonical charset declaration inserted into documents
// that lack one.
const CharsetMetaTag = `<meta charset="UTF-8">`

var (
	// Both the short form and the older http-equiv long form count as an
	// existing UTF-8 declaration.
	charsetMetaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<meta\s+charset\s*=\s*["']?utf-8["']?`),
		regexp.MustCompile(`(?i)<meta\s+http-equiv\s*=\s*["']content-type["'][^>]*charset\s*=\s*utf-8`),
	}
	headOpenPattern = regexp.MustCompile(`(?i)<head[^>]*>`)
)

// HasCharsetMeta reports whether the document already declares UTF-8.
func HasCharsetMeta(text string) bool {
	for _, pattern := range charsetMetaPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// EnsureCharsetMeta inserts the canonical charset declaration right after the
// first opening head tag unless one is already present. headFound is false
// when the document has no head section; the text is then returned unchanged.
func EnsureCharsetMeta(text string) (newText string, inserted bool, headFound bool) {
	if HasCharsetMeta(text) {
		return text, false, true
	}
	loc := headOpenPattern.FindStringIndex(text)
	if loc == nil {
		return text, false, false
	}
	return text[:loc[1]] + "\n    " + CharsetMetaTag + text[loc[1]:], true, true
}

// Normalizer re-persists HTML files in UTF-8, inserting a charset declaration
// when missing. The decoding strategy is pluggable: content-based detection
// or the fixed candidate chain.
type Normalizer struct {
	decoder Decoder
}

// NewNormalizer creates a normalizer using the given decoding strategy.
func NewNormalizer(decoder Decoder) *Normalizer {
	return &Normalizer{decoder: decoder}
}

// Normalize reads the file at path, decodes it, ensures the charset meta tag
// is present, and writes the result back in UTF-8. Line endings pass through
// untouched. When the decoded content and declaration are already canonical,
// the file is not rewritten.
func (n *Normalizer) Normalize(path string) (*Outcome, error) {
	logger := config.GetLogger()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &apperrors.ErrFileAccess{Path: path, Op: "read", Err: err}
	}

	text, encodingName, err := n.decoder.Decode(raw)
	if err != nil {
		var decodeErr *apperrors.ErrDecode
		if errors.As(err, &decodeErr) {
			decodeErr.Path = path
		}
		return nil, err
	}
	logger.Debug().Str("path", path).Str("encoding", encodingName).Msg("Decoded file")

	newText, inserted, headFound := EnsureCharsetMeta(text)
	if !headFound {
		logger.Warn().Err(&apperrors.ErrAnchorNotFound{Path: path}).Msg("Could not find <head> tag to insert charset meta tag")
	}

	outcome := &Outcome{
		Path:         path,
		Encoding:     encodingName,
		MetaInserted: inserted,
		HeadMissing:  !headFound,
	}

	encoded := []byte(newText)
	if bytes.Equal(encoded, raw) {
		if !headFound {
			outcome.Status = StatusSkippedNoAnchor
		} else {
			outcome.Status = StatusUnchanged
		}
		return outcome, nil
	}

	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return nil, &apperrors.ErrFileAccess{Path: path, Op: "write", Err: err}
	}
	outcome.Status = StatusModified
	return outcome, nil
}
