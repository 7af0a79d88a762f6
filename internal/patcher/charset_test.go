package patcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/novel2024/sitetools/internal/apperrors"
)

// TestChainDecoder_UTF8First tests that valid UTF-8 wins the chain outright.
func TestChainDecoder_UTF8First(t *testing.T) {
	t.Parallel()
	decoder := NewChainDecoder()

	text, name, err := decoder.Decode([]byte("<html><body>Hello ☺</body></html>"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if name != "utf-8" {
		t.Errorf("Expected utf-8 candidate, got %s", name)
	}
	if !strings.Contains(text, "☺") {
		t.Errorf("Expected decoded text to keep the UTF-8 character, got: %s", text)
	}
}

// TestChainDecoder_InvalidUTF8FallsBackToLatin1 tests that bytes invalid in
// UTF-8 fall through to ISO-8859-1.
func TestChainDecoder_InvalidUTF8FallsBackToLatin1(t *testing.T) {
	t.Parallel()
	decoder := NewChainDecoder()

	// 0xE9 is 'é' in ISO-8859-1 but an invalid standalone byte in UTF-8
	input := append([]byte("<html><body>Caf"), 0xE9)
	input = append(input, []byte("</body></html>")...)

	text, name, err := decoder.Decode(input)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if name != "iso-8859-1" {
		t.Errorf("Expected iso-8859-1 candidate, got %s", name)
	}
	if !strings.Contains(text, "Café") {
		t.Errorf("Expected 'Café' in decoded text, got: %s", text)
	}
}

// TestChainDecoder_ASCIIRoundTrip tests that ASCII-only content survives the
// chain byte for byte, even when the file was authored as Windows-1252.
func TestChainDecoder_ASCIIRoundTrip(t *testing.T) {
	t.Parallel()
	decoder := NewChainDecoder()

	input := "<html><head></head><body>plain ascii</body></html>"
	text, _, err := decoder.Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if text != input {
		t.Errorf("Expected ASCII content unchanged, got: %s", text)
	}
}

// TestDecodeUTF8Sig tests that the signature candidate strips the BOM and
// rejects unsigned input.
func TestDecodeUTF8Sig(t *testing.T) {
	t.Parallel()

	signed := append([]byte{0xEF, 0xBB, 0xBF}, []byte("<html></html>")...)
	text, ok := decodeUTF8Sig(signed)
	if !ok {
		t.Fatal("Expected signed UTF-8 input to decode")
	}
	if text != "<html></html>" {
		t.Errorf("Expected BOM to be stripped, got: %q", text)
	}

	if _, ok := decodeUTF8Sig([]byte("<html></html>")); ok {
		t.Error("Expected unsigned input to be rejected by the signature candidate")
	}
}

// TestAutoDecoder_AlreadyUTF8 tests that UTF-8 content passes through unchanged.
func TestAutoDecoder_AlreadyUTF8(t *testing.T) {
	t.Parallel()
	decoder := NewAutoDecoder()

	input := "<html><head><meta charset=\"UTF-8\"></head><body>Hello ☺</body></html>"
	text, _, err := decoder.Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if text != input {
		t.Errorf("Expected UTF-8 content to pass through unchanged, got: %s", text)
	}
}

// TestAutoDecoder_DetectsFromMetaTag tests conversion of ISO-8859-1 content
// declared via its meta tag.
func TestAutoDecoder_DetectsFromMetaTag(t *testing.T) {
	t.Parallel()
	decoder := NewAutoDecoder()

	input := append([]byte(`<html><head><meta charset="ISO-8859-1"></head><body>Caf`), 0xE9)
	input = append(input, []byte("</body></html>")...)

	text, _, err := decoder.Decode(input)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !strings.Contains(text, "Café") {
		t.Errorf("Expected 'Café' in UTF-8 output, got: %s", text)
	}
}

// TestChainDecoder_ErrorNamesTriedCandidates tests the shape of the decode
// error. The terminal charmap candidates accept any byte sequence, so the
// error path is only reachable with an artificially truncated chain.
func TestChainDecoder_ErrorNamesTriedCandidates(t *testing.T) {
	t.Parallel()
	decoder := &ChainDecoder{
		candidates: []candidate{
			{name: "utf-8", decode: decodeUTF8},
			{name: "utf-8-sig", decode: decodeUTF8Sig},
		},
	}

	_, _, err := decoder.Decode([]byte{0xFF, 0xFE, 0xFD})
	if err == nil {
		t.Fatal("Expected decode error for input no candidate accepts")
	}
	if !errors.Is(err, &apperrors.ErrDecode{}) {
		t.Errorf("Expected ErrDecode, got %T", err)
	}
	if !strings.Contains(err.Error(), "utf-8-sig") {
		t.Errorf("Expected error to name tried candidates, got: %v", err)
	}
}
