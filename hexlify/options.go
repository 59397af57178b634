package hexlify

import (
	"github.com/moffa90/go-hexlify/ihex"
	"github.com/moffa90/go-hexlify/script"
)

// Defaults for the MicroPython micro:bit bootloader.
const (
	// DefaultStartAddress is the flash offset where the bootloader looks for a script
	DefaultStartAddress = 0x3E000

	// DefaultSegment is the upper 16 address bits of DefaultStartAddress
	DefaultSegment = 0x0003

	// DefaultMaxPayloadSize is the size of the flash region reserved for the script
	DefaultMaxPayloadSize = 0x2000
)

// Config holds the encoder configuration.
type Config struct {
	// StartAddress is the 32-bit flash address of the first data record
	StartAddress uint32

	// Segment is the value of the Extended Linear Address record.
	// It must equal StartAddress >> 16.
	Segment uint16

	// Magic is the 2-byte frame header magic
	Magic uint16

	// MaxPayloadSize is the policy limit on payload length.
	// Zero disables the limit; the 16-bit header bound always applies.
	MaxPayloadSize int

	// RecordSize is the number of data bytes per data record
	RecordSize int

	// Logger is used for logging operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		StartAddress:   DefaultStartAddress,
		Segment:        DefaultSegment,
		Magic:          script.DefaultMagic,
		MaxPayloadSize: DefaultMaxPayloadSize,
		RecordSize:     ihex.DefaultDataSize,
	}
}

// Option is a functional option for configuring the Encoder.
type Option func(*Config)

// WithStartAddress sets the flash address of the first data record.
// Pair it with WithSegment when moving to another 64K segment.
//
// Example:
//
//	enc := hexlify.New(
//	    hexlify.WithStartAddress(0x5E000),
//	    hexlify.WithSegment(0x0005),
//	)
func WithStartAddress(addr uint32) Option {
	return func(c *Config) {
		c.StartAddress = addr
	}
}

// WithSegment sets the upper 16 address bits emitted in the Extended
// Linear Address record.
func WithSegment(segment uint16) Option {
	return func(c *Config) {
		c.Segment = segment
	}
}

// WithMagic sets the frame header magic.
//
// Example:
//
//	enc := hexlify.New(hexlify.WithMagic(0x4D50))
func WithMagic(magic uint16) Option {
	return func(c *Config) {
		c.Magic = magic
	}
}

// WithMaxPayloadSize sets the policy limit on payload length.
// A size of 0 disables the limit. Negative sizes are ignored.
func WithMaxPayloadSize(size int) Option {
	return func(c *Config) {
		if size >= 0 {
			c.MaxPayloadSize = size
		}
	}
}

// WithRecordSize sets the number of data bytes per data record.
// Default is 16. Sizes outside 1-255 are ignored.
//
// Example:
//
//	enc := hexlify.New(hexlify.WithRecordSize(32))
func WithRecordSize(size int) Option {
	return func(c *Config) {
		if size > 0 && size <= ihex.MaxDataSize {
			c.RecordSize = size
		}
	}
}

// WithLogger sets a logger for the encoder operations.
//
// Example:
//
//	enc := hexlify.New(hexlify.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
