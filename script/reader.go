package script

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// maxSingleByteRune is the highest character that maps to one byte.
const maxSingleByteRune = 0xFF

// Load reads a raw script payload from the given file path.
// The bytes are returned verbatim.
//
// Example:
//
//	payload, err := script.Load("main.py")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Read reads a raw script payload from any io.Reader.
// This is useful for standard input and for testing.
func Read(r io.Reader) ([]byte, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return payload, nil
}

// FromText maps each character of a UTF-8 string to a single byte
// (ISO-8859-1). Text containing a character above U+00FF, or invalid
// UTF-8, is rejected with an InvalidCharacterError rather than guessed at.
//
// Example:
//
//	payload, err := script.FromText("print('café')")
//	// payload ends in 0xE9 0x27 0x29
func FromText(text string) ([]byte, error) {
	for off, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[off:]); size == 1 {
				return nil, &InvalidCharacterError{Offset: off, Rune: r}
			}
		}
		if r > maxSingleByteRune {
			return nil, &InvalidCharacterError{Offset: off, Rune: r}
		}
	}

	payload, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode text: %w", err)
	}
	return payload, nil
}
