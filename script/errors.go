package script

import "fmt"

// PayloadTooLargeError indicates that a payload exceeds a size limit.
// The limit is either the 16-bit header length field or an application
// policy limit on the flash region reserved for the script.
type PayloadTooLargeError struct {
	Size  int
	Limit int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("payload too large: %d bytes exceeds limit of %d bytes", e.Size, e.Limit)
}

// InvalidCharacterError indicates that script text contains a character
// that cannot be stored in a single byte.
type InvalidCharacterError struct {
	// Offset is the byte offset of the character in the source text
	Offset int

	// Rune is the offending character (utf8.RuneError for invalid UTF-8)
	Rune rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %U at offset %d: only U+0000-U+00FF can be encoded", e.Rune, e.Offset)
}
