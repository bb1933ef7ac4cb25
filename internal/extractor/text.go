package extractor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// ReadTextFile loads a plain-text document, optionally decoding Shift-JIS.
// Older Japanese scanner software still writes its text sidecar files in
// Shift-JIS rather than UTF-8.
func ReadTextFile(path, encoding string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(encoding) {
	case "", "utf8", "utf-8":
		// no transform
	case "sjis", "shift-jis", "shift_jis":
		r = transform.NewReader(f, japanese.ShiftJIS.NewDecoder())
	default:
		return "", fmt.Errorf("unsupported encoding %q (use utf-8 or sjis)", encoding)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
