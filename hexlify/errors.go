package hexlify

import (
	"errors"
	"fmt"
)

// ErrFirmwareTooShort indicates that a firmware image has too few lines to
// splice a script into.
var ErrFirmwareTooShort = errors.New("firmware must contain at least 2 lines")

// AddressOverflowError indicates that the frame would run past the 64K
// segment selected by the Extended Linear Address record.
type AddressOverflowError struct {
	Start  uint32
	Length int
	Limit  uint64
}

func (e *AddressOverflowError) Error() string {
	return fmt.Sprintf("address overflow: %d bytes at 0x%05X end at 0x%05X, segment ends at 0x%05X",
		e.Length, e.Start, uint64(e.Start)+uint64(e.Length), e.Limit)
}

// SegmentMismatchError indicates that the start address lies outside the
// configured segment.
type SegmentMismatchError struct {
	Start   uint32
	Segment uint16
}

func (e *SegmentMismatchError) Error() string {
	return fmt.Sprintf("start address 0x%05X is not in segment 0x%04X", e.Start, e.Segment)
}
