// Package ihex builds Intel HEX records.
//
// This package provides the record-level primitives used to serialize a
// binary image as Intel HEX text: record construction, the record checksum,
// and upper-case hexadecimal formatting.
//
// # Record Format
//
// Every record is one line of text:
//
//	:[COUNT][ADDR_H][ADDR_L][TYPE][DATA...][CHECKSUM]
//
// Where:
//   - COUNT = number of data bytes (1 byte)
//   - ADDR = 16-bit load offset (big-endian)
//   - TYPE = record type (RecordTypeData or RecordTypeExtendedLinearAddress)
//   - CHECKSUM = two's complement of the sum of all preceding record bytes
//
// Each byte is written as two upper-case hex digits, with no separators.
//
// # Record Builders
//
// Use the constructors to create records:
//
//	rec, err := ihex.DataRecord(0xE000, chunk)
//	rec, err := ihex.ExtendedLinearAddressRecord(0x0003)
//	line := rec.String() // ":020000040003F7"
//
// # Error Handling
//
// Records of unsupported types or with malformed data are rejected with a
// RecordError:
//
//	_, err := ihex.NewRecord(0, 0x01, nil)
//	// err.Error() returns: "record type 0x01: unsupported record type"
//
// Only Data and Extended Linear Address records are produced. Decoding is
// not supported.
package ihex
