package ihex

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// Record is a single Intel HEX record.
type Record struct {
	// Address is the 16-bit load offset
	Address uint16

	// Type is the record type
	Type byte

	// Data holds the record data bytes
	Data []byte

	// Checksum is the two's complement checksum of the record
	Checksum byte
}

// NewRecord constructs a record of the given type and computes its checksum.
// The data is copied, so the caller may reuse its buffer.
//
// Record constraints:
//   - recordType must be RecordTypeData or RecordTypeExtendedLinearAddress
//   - data may not exceed MaxDataSize bytes
//   - an Extended Linear Address record carries exactly 2 data bytes at address 0
func NewRecord(address uint16, recordType byte, data []byte) (*Record, error) {
	switch recordType {
	case RecordTypeData:
	case RecordTypeExtendedLinearAddress:
		if len(data) != ExtendedAddressDataSize {
			return nil, &RecordError{
				Type:   recordType,
				Reason: fmt.Sprintf("data must be exactly %d bytes, got %d", ExtendedAddressDataSize, len(data)),
			}
		}
		if address != 0 {
			return nil, &RecordError{
				Type:   recordType,
				Reason: fmt.Sprintf("address must be 0x0000, got 0x%04X", address),
			}
		}
	default:
		return nil, &RecordError{Type: recordType, Reason: "unsupported record type"}
	}

	if len(data) > MaxDataSize {
		return nil, &RecordError{
			Type:   recordType,
			Reason: fmt.Sprintf("data length %d exceeds maximum %d bytes", len(data), MaxDataSize),
		}
	}

	rec := &Record{
		Address: address,
		Type:    recordType,
		Data:    make([]byte, len(data)),
	}
	copy(rec.Data, data)

	raw := rec.header()
	raw = append(raw, rec.Data...)
	rec.Checksum = Checksum(raw)

	return rec, nil
}

// DataRecord constructs a Data record for the given 16-bit load offset.
func DataRecord(address uint16, data []byte) (*Record, error) {
	return NewRecord(address, RecordTypeData, data)
}

// ExtendedLinearAddressRecord constructs the record that sets the upper
// 16 address bits to segment for all following data records.
//
// Example:
//
//	rec, _ := ihex.ExtendedLinearAddressRecord(0x0003)
//	fmt.Println(rec) // :020000040003F7
func ExtendedLinearAddressRecord(segment uint16) (*Record, error) {
	data := make([]byte, ExtendedAddressDataSize)
	binary.BigEndian.PutUint16(data, segment)
	return NewRecord(0, RecordTypeExtendedLinearAddress, data)
}

// ByteCount returns the value of the COUNT field.
func (r *Record) ByteCount() byte {
	return byte(len(r.Data))
}

// Bytes returns the binary form of the record:
//
//	[COUNT][ADDR_H][ADDR_L][TYPE][DATA...][CHECKSUM]
func (r *Record) Bytes() []byte {
	raw := make([]byte, 0, RecordHeaderSize+len(r.Data)+RecordChecksumSize)
	raw = append(raw, r.header()...)
	raw = append(raw, r.Data...)
	raw = append(raw, r.Checksum)
	return raw
}

// String returns the record as a line of Intel HEX text, without a line terminator.
func (r *Record) String() string {
	var sb strings.Builder
	sb.Grow(1 + 2*(RecordHeaderSize+len(r.Data)+RecordChecksumSize))
	sb.WriteByte(StartCode)
	sb.WriteString(strings.ToUpper(hex.EncodeToString(r.Bytes())))
	return sb.String()
}

func (r *Record) header() []byte {
	h := make([]byte, RecordHeaderSize, RecordHeaderSize+len(r.Data)+RecordChecksumSize)
	h[0] = r.ByteCount()
	binary.BigEndian.PutUint16(h[1:3], r.Address)
	h[3] = r.Type
	return h
}
