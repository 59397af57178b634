package hexlify

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/marcinbor85/gohex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moffa90/go-hexlify/script"
)

// MockLogger records logged messages for assertions.
type MockLogger struct {
	mu        sync.Mutex
	debugMsgs []string
	infoMsgs  []string
	errorMsgs []string
}

func (l *MockLogger) Debug(msg string, kv ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugMsgs = append(l.debugMsgs, msg)
}

func (l *MockLogger) Info(msg string, kv ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infoMsgs = append(l.infoMsgs, msg)
}

func (l *MockLogger) Error(msg string, kv ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorMsgs = append(l.errorMsgs, msg)
}

// decode parses encoder output with an independent Intel HEX reader.
func decode(t *testing.T, out string) []gohex.DataSegment {
	t.Helper()

	mem := gohex.NewMemory()
	err := mem.ParseIntelHex(strings.NewReader(out + "\n:00000001FF\n"))
	require.NoError(t, err)
	return mem.GetDataSegments()
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    string
	}{
		{
			name:    "empty payload",
			payload: []byte{},
			want: ":020000040003F7\n" +
				":10E000004D50000000000000000000000000000073",
		},
		{
			name:    "single byte",
			payload: []byte("A"),
			want: ":020000040003F7\n" +
				":10E000004D50010041000000000000000000000031",
		},
		{
			name:    "aligned payload",
			payload: []byte("xxxxxxxxxxxx"),
			want: ":020000040003F7\n" +
				":10E000004D500C00787878787878787878787878C7",
		},
		{
			name:    "two records",
			payload: []byte("print(\"hello\")\n"),
			want: ":020000040003F7\n" +
				":10E000004D500F007072696E74282268656C6C6FD9\n" +
				":10E0100022290A00000000000000000000000000AB",
		},
		{
			name:    "three records",
			payload: []byte("display.scroll(\"Hello, World!\")\n"),
			want: ":020000040003F7\n" +
				":10E000004D502000646973706C61792E7363726F78\n" +
				":10E010006C6C282248656C6C6F2C20576F726C6496\n" +
				":10E020002122290A0000000000000000000000007A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEncodeOutputShape(t *testing.T) {
	out, err := Encode([]byte("from microbit import *\ndisplay.show(Image.HAPPY)\n"))
	require.NoError(t, err)

	assert.False(t, strings.HasPrefix(out, "\n"), "leading newline")
	assert.False(t, strings.HasSuffix(out, "\n"), "trailing newline")

	lines := strings.Split(out, "\n")
	assert.Equal(t, ":020000040003F7", lines[0])

	elaCount := 0
	for _, line := range lines {
		if line[7:9] == "04" {
			elaCount++
		}
	}
	assert.Equal(t, 1, elaCount, "exactly one extended linear address record")
}

func TestEncodeRecordProperties(t *testing.T) {
	for _, n := range []int{0, 1, 11, 12, 13, 27, 28, 29, 100, 1000} {
		payload := make([]byte, n)
		for i := range payload {
			payload[i] = byte(i*13 + 7)
		}

		lines, err := New().EncodeLines(payload)
		require.NoError(t, err)

		frame, err := script.Build(payload)
		require.NoError(t, err)
		require.Len(t, lines, len(frame.Data)/16+1)

		var joined []byte
		for i, line := range lines {
			require.Equal(t, byte(':'), line[0])
			raw, err := hex.DecodeString(line[1:])
			require.NoError(t, err)

			var sum byte
			for _, b := range raw {
				sum += b
			}
			assert.Equal(t, byte(0), sum, "payload %d record %d checksum", n, i)

			if i == 0 {
				continue
			}
			assert.Equal(t, byte(16), raw[0])
			assert.Equal(t, byte(0x00), raw[3])

			wantAddr := uint32(DefaultStartAddress + (i-1)*16)
			gotAddr := uint32(raw[1])<<8 | uint32(raw[2])
			assert.Equal(t, wantAddr&0xFFFF, gotAddr, "payload %d record %d address", n, i)

			joined = append(joined, raw[4:len(raw)-1]...)
		}
		assert.Equal(t, frame.Data, joined, "payload %d", n)
	}
}

func TestEncodeRoundTripThroughDecoder(t *testing.T) {
	payload := bytes.Repeat([]byte("import music\nmusic.play(music.NYAN)\n"), 20)

	out, err := Encode(payload)
	require.NoError(t, err)

	segments := decode(t, out)
	require.Len(t, segments, 1)
	assert.Equal(t, uint32(DefaultStartAddress), segments[0].Address)

	frame, err := script.Build(payload)
	require.NoError(t, err)
	assert.Equal(t, frame.Data, segments[0].Data)
}

func TestEncodeText(t *testing.T) {
	out, err := New().EncodeText("é")
	require.NoError(t, err)
	assert.Equal(t, ":020000040003F7\n:10E000004D500100E9000000000000000000000089", out)
}

func TestEncodeTextInvalidCharacter(t *testing.T) {
	logger := &MockLogger{}
	out, err := New(WithLogger(logger)).EncodeText("print('€')")
	require.Error(t, err)
	assert.Empty(t, out)

	var invalid *script.InvalidCharacterError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, '€', invalid.Rune)
	assert.NotEmpty(t, logger.errorMsgs)
}

func TestEncodeLargestFittingPayload(t *testing.T) {
	payload := make([]byte, 0x2000-script.HeaderSize)

	lines, err := New().EncodeLines(payload)
	require.NoError(t, err)
	require.Len(t, lines, 0x2000/16+1)
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], ":10FFF000"))
}

func TestEncodeSegmentBoundary(t *testing.T) {
	enc := New(WithStartAddress(0x3FFF0))

	out, err := enc.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, ":020000040003F7\n:10FFF0004D50000000000000000000000000000064", out)

	_, err = enc.Encode(make([]byte, 13))
	var overflow *AddressOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Equal(t, uint32(0x3FFF0), overflow.Start)
	assert.Equal(t, 32, overflow.Length)
	assert.Equal(t, uint64(0x40000), overflow.Limit)
}

func TestEncodeAddressOverflow(t *testing.T) {
	logger := &MockLogger{}
	out, err := New(WithLogger(logger)).Encode(make([]byte, 0x2000-script.HeaderSize+1))
	require.Error(t, err)
	assert.Empty(t, out)

	var overflow *AddressOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Equal(t, 0x2010, overflow.Length)
	assert.Contains(t, err.Error(), "address overflow")
	assert.Len(t, logger.errorMsgs, 1)
	assert.Empty(t, logger.debugMsgs)
}

func TestEncodePayloadTooLarge(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		size      int
		wantLimit int
	}{
		{
			name:      "policy limit",
			size:      DefaultMaxPayloadSize + 1,
			wantLimit: DefaultMaxPayloadSize,
		},
		{
			name:      "custom policy limit",
			opts:      []Option{WithMaxPayloadSize(100)},
			size:      101,
			wantLimit: 100,
		},
		{
			name:      "length field limit",
			opts:      []Option{WithMaxPayloadSize(0)},
			size:      0x10000,
			wantLimit: script.MaxPayloadSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...).Encode(make([]byte, tt.size))
			require.Error(t, err)

			var tooLarge *script.PayloadTooLargeError
			require.True(t, errors.As(err, &tooLarge))
			assert.Equal(t, tt.size, tooLarge.Size)
			assert.Equal(t, tt.wantLimit, tooLarge.Limit)
		})
	}
}

func TestEncodeSegmentMismatch(t *testing.T) {
	_, err := New(WithStartAddress(0x5E000)).Encode([]byte("A"))
	require.Error(t, err)

	var mismatch *SegmentMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, uint32(0x5E000), mismatch.Start)
	assert.Equal(t, uint16(DefaultSegment), mismatch.Segment)
}

func TestEncodeCustomSegment(t *testing.T) {
	out, err := New(WithStartAddress(0x5E000), WithSegment(0x0005)).Encode([]byte("A"))
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, ":020000040005F5", lines[0])

	segments := decode(t, out)
	require.Len(t, segments, 1)
	assert.Equal(t, uint32(0x5E000), segments[0].Address)
}

func TestEncodeCustomMagic(t *testing.T) {
	out, err := New(WithMagic(0xCAFE)).Encode(nil)
	require.NoError(t, err)

	segments := decode(t, out)
	require.Len(t, segments, 1)
	assert.Equal(t, []byte{0xCA, 0xFE, 0x00, 0x00}, segments[0].Data[:4])
}

func TestEncodeRecordSize(t *testing.T) {
	lines, err := New(WithRecordSize(32)).EncodeLines(make([]byte, 40))
	require.NoError(t, err)

	// 48-byte frame: one full record and one short final record.
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], ":20E00000"))
	assert.True(t, strings.HasPrefix(lines[2], ":10E02000"))
}

func TestEncodeLogsDebug(t *testing.T) {
	logger := &MockLogger{}
	_, err := New(WithLogger(logger)).Encode([]byte("A"))
	require.NoError(t, err)

	assert.Equal(t, []string{"encoded script"}, logger.debugMsgs)
	assert.Empty(t, logger.errorMsgs)
}

func TestEncodeConcurrent(t *testing.T) {
	enc := New()
	want, err := enc.Encode([]byte("concurrent"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := enc.Encode([]byte("concurrent"))
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	cfg := New(
		WithRecordSize(0),
		WithRecordSize(256),
		WithMaxPayloadSize(-1),
	).Config()

	assert.Equal(t, 16, cfg.RecordSize)
	assert.Equal(t, DefaultMaxPayloadSize, cfg.MaxPayloadSize)
}

func TestDefaultConfig(t *testing.T) {
	cfg := New().Config()

	assert.Equal(t, uint32(0x3E000), cfg.StartAddress)
	assert.Equal(t, uint16(0x0003), cfg.Segment)
	assert.Equal(t, uint16(0x4D50), cfg.Magic)
	assert.Equal(t, 0x2000, cfg.MaxPayloadSize)
	assert.Nil(t, cfg.Logger)
}
