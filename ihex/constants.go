package ihex

// Record type codes.
const (
	// RecordTypeData carries data bytes for a 16-bit load offset
	RecordTypeData = 0x00

	// RecordTypeExtendedLinearAddress sets the upper 16 bits of the address
	// for all following data records
	RecordTypeExtendedLinearAddress = 0x04
)

// Record structure constants.
const (
	// StartCode is the character that begins every record line
	StartCode = ':'

	// RecordHeaderSize is the size of the record header in bytes:
	// COUNT(1) + ADDR(2) + TYPE(1)
	RecordHeaderSize = 4

	// RecordChecksumSize is the size of the trailing checksum field
	RecordChecksumSize = 1

	// MaxDataSize is the largest data field a record can carry (8-bit count)
	MaxDataSize = 0xFF

	// DefaultDataSize is the conventional number of data bytes per record
	DefaultDataSize = 16

	// ExtendedAddressDataSize is the data size of an Extended Linear Address record
	ExtendedAddressDataSize = 2

	// SegmentShift converts between a segment value and a 32-bit linear address
	SegmentShift = 16

	// SegmentSize is the span of addresses covered by one segment
	SegmentSize = 1 << SegmentShift
)
