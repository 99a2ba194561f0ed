// Package gcode handles the base64 transport encoding the slicing service
// uses for G-code payloads.
package gcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidEncoding indicates input that is not valid standard base64.
var ErrInvalidEncoding = errors.New("invalid base64 encoding")

// Decode decodes a standard base64 string into raw bytes. Surrounding
// whitespace is stripped first, since encoded files commonly end with a
// trailing newline.
func Decode(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return data, nil
}

// Encode encodes raw bytes as a standard base64 string.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeFile reads inPath as base64 text, decodes it, and writes the raw
// bytes to outPath, overwriting any existing file. Returns the number of
// bytes written.
func DecodeFile(inPath, outPath string) (int, error) {
	text, err := os.ReadFile(inPath)
	if err != nil {
		return 0, fmt.Errorf("reading encoded input: %w", err)
	}

	data, err := Decode(string(text))
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return 0, fmt.Errorf("writing decoded output: %w", err)
	}
	return len(data), nil
}

// EncodeFile reads inPath as raw bytes and writes its base64 encoding to
// outPath with a trailing newline. Returns the number of input bytes read.
func EncodeFile(inPath, outPath string) (int, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return 0, fmt.Errorf("reading input: %w", err)
	}

	if err := os.WriteFile(outPath, []byte(Encode(data)+"\n"), 0644); err != nil {
		return 0, fmt.Errorf("writing encoded output: %w", err)
	}
	return len(data), nil
}
