package patcher

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/novel2024/sitetools/internal/apperrors"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Decoder turns raw file bytes into UTF-8 text, reporting which encoding was
// used. Implementations never mutate the input slice.
type Decoder interface {
	Decode(raw []byte) (text string, encodingName string, err error)
}

var utf8Signature = []byte{0xEF, 0xBB, 0xBF}

// candidate is one entry of the fixed fallback chain. decode reports false
// when the bytes are not valid in this encoding.
type candidate struct {
	name   string
	decode func(raw []byte) (string, bool)
}

// ChainDecoder tries a fixed, ordered list of encodings; the first candidate
// that decodes without error wins. The order mirrors the canonical fallback
// list: UTF-8, UTF-8 with signature, Latin-1, Windows-1252. Latin-1 accepts
// every byte sequence, so Windows-1252 is a terminal safety net that only
// sees input Latin-1 would also take.
type ChainDecoder struct {
	candidates []candidate
}

// NewChainDecoder creates a decoder over the canonical candidate chain.
func NewChainDecoder() *ChainDecoder {
	return &ChainDecoder{
		candidates: []candidate{
			{name: "utf-8", decode: decodeUTF8},
			{name: "utf-8-sig", decode: decodeUTF8Sig},
			{name: "iso-8859-1", decode: decodeCharmap(charmap.ISO8859_1)},
			{name: "windows-1252", decode: decodeCharmap(charmap.Windows1252)},
		},
	}
}

// Decode implements the Decoder interface.
func (d *ChainDecoder) Decode(raw []byte) (string, string, error) {
	tried := make([]string, 0, len(d.candidates))
	for _, c := range d.candidates {
		if text, ok := c.decode(raw); ok {
			return text, c.name, nil
		}
		tried = append(tried, c.name)
	}
	return "", "", apperrors.NewDecodeError("", tried)
}

func decodeUTF8(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// decodeUTF8Sig requires the BOM so it only matches signed files; the BOM is
// stripped from the decoded text.
func decodeUTF8Sig(raw []byte) (string, bool) {
	if !bytes.HasPrefix(raw, utf8Signature) {
		return "", false
	}
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil || !utf8.Valid(out) {
		return "", false
	}
	return string(out), true
}

func decodeCharmap(cm *charmap.Charmap) func(raw []byte) (string, bool) {
	return func(raw []byte) (string, bool) {
		out, err := cm.NewDecoder().Bytes(raw)
		if err != nil {
			return "", false
		}
		return string(out), true
	}
}

// AutoDecoder detects the character encoding from the content itself (meta
// tags, BOM, byte heuristics) the same way HTML consumers do, converting to
// UTF-8. When the detection reader fails, it falls back to the fixed chain.
type AutoDecoder struct {
	fallback *ChainDecoder
}

// NewAutoDecoder creates a decoder with content-based detection and the
// canonical chain as fallback.
func NewAutoDecoder() *AutoDecoder {
	return &AutoDecoder{fallback: NewChainDecoder()}
}

// Decode implements the Decoder interface.
func (d *AutoDecoder) Decode(raw []byte) (string, string, error) {
	// charset.NewReader automatically detects encoding and converts to UTF-8.
	// contentType is empty because detection should come from the content itself.
	reader, err := charset.NewReader(bytes.NewReader(raw), "")
	if err == nil {
		if out, readErr := io.ReadAll(reader); readErr == nil {
			_, name, _ := charset.DetermineEncoding(raw, "")
			return string(out), name, nil
		}
	}
	return d.fallback.Decode(raw)
}
