// Package script frames a script payload for the MicroPython bootloader.
//
// # Frame Format
//
// The bootloader locates an appended script by a 4-byte header followed by
// the script bytes, zero-padded to a multiple of 16 bytes:
//
//	[MAGIC_H][MAGIC_L][LEN_L][LEN_H][PAYLOAD...][PADDING...]
//
// Example frame for the one-byte script "A":
//
//	4D 50 01 00 41 00 00 00 00 00 00 00 00 00 00 00
//	  4D 50 = Magic ('M', 'P')
//	  01 00 = Payload length (little-endian, 1 byte)
//	  41    = Payload
//	  00... = Padding up to 16 bytes
//
// # Usage
//
// Frame a payload read from disk:
//
//	payload, err := script.Load("main.py")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	frame, err := script.Build(payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Frame: %d bytes\n", len(frame.Data))
//
// Map script text to single-byte characters first when the source is text:
//
//	payload, err := script.FromText(src)
//
// # Error Handling
//
// Build and FromText return typed errors:
//   - PayloadTooLargeError when the payload does not fit the 16-bit length field
//   - InvalidCharacterError when text contains a character above U+00FF
package script
