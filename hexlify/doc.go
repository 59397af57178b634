// Package hexlify turns a MicroPython script into Intel HEX records that can
// be appended to a firmware image.
//
// # Overview
//
// This package performs the complete transform from script bytes to text:
//   - Framing the payload with the 'MP' magic and its little-endian length
//   - Padding the frame to a multiple of 16 bytes
//   - Emitting one Extended Linear Address record for the target segment
//   - Emitting one data record per 16-byte chunk, in ascending address order
//
// # Basic Usage
//
// The simplest way to encode a script:
//
//	payload, err := script.Load("main.py")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := hexlify.Encode(payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
//
// # Configuration Options
//
// The defaults target the micro:bit bootloader (start address 0x3E000,
// segment 0x0003, magic 0x4D50, 8K script region). Customize them with
// functional options:
//
//	enc := hexlify.New(
//	    hexlify.WithStartAddress(0x3E000),
//	    hexlify.WithSegment(0x0003),
//	    hexlify.WithMagic(0x4D50),
//	    hexlify.WithMaxPayloadSize(0x2000),
//	    hexlify.WithLogger(myLogger),
//	)
//
// # Combining With Firmware
//
// Combine splices the records into an existing firmware image, ahead of its
// UICR region or closing records:
//
//	err := enc.Combine(out, firmwareFile, payload)
//
// # Error Handling
//
// The package provides structured error types:
//   - script.PayloadTooLargeError: payload exceeds the length field or the policy limit
//   - AddressOverflowError: frame runs past the end of the segment
//   - SegmentMismatchError: start address is outside the configured segment
//   - script.InvalidCharacterError: script text has a character above U+00FF
//
// Encoding is a pure function of the payload and configuration. No partial
// output is produced when an error is returned.
package hexlify
