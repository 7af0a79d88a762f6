package patcher

// Status classifies the result of one file-processing attempt.
type Status string

const (
	// StatusUnchanged means the file already carried the marker or meta tag
	// and its bytes were left alone.
	StatusUnchanged Status = "unchanged"
	// StatusModified means the file was rewritten.
	StatusModified Status = "modified"
	// StatusSkippedNoAnchor means no head section was found to anchor an
	// insertion to.
	StatusSkippedNoAnchor Status = "skipped-no-anchor"
	// StatusFailed means decoding or file I/O failed.
	StatusFailed Status = "failed"
)

// Outcome describes what happened to a single file.
type Outcome struct {
	Path string
	// Encoding is the name of the candidate that decoded the file. Empty for
	// injection-only operations, which assume UTF-8 input.
	Encoding     string
	Status       Status
	MetaInserted bool
	// HeadMissing is set when no head section was found. The normalizer
	// still persists the decoded content in that case; the injector skips.
	HeadMissing bool
}

// InjectResult classifies the outcome of a single snippet injection.
type InjectResult int

const (
	// Inserted means an insertion point was found and the snippet spliced in.
	Inserted InjectResult = iota
	// AlreadyPresent means the marker was found, so the text is untouched.
	AlreadyPresent
	// NoAnchor means the document has no head section. The caller decides
	// whether that is an error or a skip.
	NoAnchor
)

// String returns the human-readable name of the injection result.
func (r InjectResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case AlreadyPresent:
		return "already-present"
	case NoAnchor:
		return "no-anchor"
	default:
		return "unknown"
	}
}
