package script

import "encoding/binary"

// Build frames payload with DefaultMagic.
//
// Example:
//
//	frame, err := script.Build([]byte("A"))
//	// frame.Data = 4D 50 01 00 41 00 00 00 00 00 00 00 00 00 00 00
func Build(payload []byte) (*Frame, error) {
	return BuildWithMagic(payload, DefaultMagic)
}

// BuildWithMagic frames payload with the given header magic.
// The payload is copied into a freshly allocated frame buffer.
//
// Returns a PayloadTooLargeError if the payload is longer than MaxPayloadSize.
func BuildWithMagic(payload []byte, magic uint16) (*Frame, error) {
	if len(payload) > MaxPayloadSize {
		return nil, &PayloadTooLargeError{Size: len(payload), Limit: MaxPayloadSize}
	}

	size := FrameSize(len(payload))
	data := make([]byte, size)

	binary.BigEndian.PutUint16(data[0:2], magic)
	binary.LittleEndian.PutUint16(data[2:4], uint16(len(payload)))
	copy(data[HeaderSize:], payload)

	return &Frame{
		Magic:  magic,
		Length: uint16(len(payload)),
		Data:   data,
	}, nil
}

// FrameSize returns the size of the frame for a payload of n bytes.
// An already aligned header plus payload gets no padding.
func FrameSize(n int) int {
	unpadded := HeaderSize + n
	return unpadded + PaddingSize(unpadded)
}

// PaddingSize returns the number of zero bytes needed to align n to Alignment.
// The result is in the range [0, Alignment).
func PaddingSize(n int) int {
	return (Alignment - n%Alignment) % Alignment
}
