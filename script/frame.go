package script

// Frame layout constants.
const (
	// DefaultMagic is the header magic the bootloader looks for ('M', 'P')
	DefaultMagic = 0x4D50

	// HeaderSize is the size of the frame header: MAGIC(2) + LEN(2)
	HeaderSize = 4

	// Alignment is the frame size granularity in bytes
	Alignment = 16

	// MaxPayloadSize is the largest payload the 16-bit length field can describe
	MaxPayloadSize = 0xFFFF
)

// Frame is a payload wrapped with its header and padding.
type Frame struct {
	// Magic is the 2-byte header magic, written big-endian
	Magic uint16

	// Length is the payload length recorded in the header
	Length uint16

	// Data is the complete frame: header, payload and zero padding.
	// len(Data) is always a non-zero multiple of Alignment.
	Data []byte
}

// Payload returns the payload portion of the frame.
func (f *Frame) Payload() []byte {
	return f.Data[HeaderSize : HeaderSize+int(f.Length)]
}

// Padding returns the number of zero bytes appended after the payload.
func (f *Frame) Padding() int {
	return len(f.Data) - HeaderSize - int(f.Length)
}

// Chunks splits the frame data into consecutive slices of size bytes.
// The last chunk is shorter when size does not divide the frame length.
// The returned slices alias Data.
func (f *Frame) Chunks(size int) [][]byte {
	if size <= 0 {
		return nil
	}

	chunks := make([][]byte, 0, (len(f.Data)+size-1)/size)
	for off := 0; off < len(f.Data); off += size {
		end := off + size
		if end > len(f.Data) {
			end = len(f.Data)
		}
		chunks = append(chunks, f.Data[off:end])
	}
	return chunks
}
