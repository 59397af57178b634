package hexlify

import (
	"fmt"
	"strings"

	"github.com/moffa90/go-hexlify/ihex"
	"github.com/moffa90/go-hexlify/script"
)

// Encoder turns script payloads into Intel HEX text that the bootloader
// can find at a fixed flash address.
//
// Encoder holds no mutable state and is safe for concurrent use.
type Encoder struct {
	config Config
}

// New creates a new Encoder with the given options.
//
// Example:
//
//	enc := hexlify.New(
//	    hexlify.WithLogger(logger),
//	    hexlify.WithMaxPayloadSize(0),
//	)
func New(opts ...Option) *Encoder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Encoder{config: cfg}
}

// Encode encodes payload with the default configuration.
func Encode(payload []byte) (string, error) {
	return New().Encode(payload)
}

// Config returns a copy of the encoder configuration.
func (e *Encoder) Config() Config {
	return e.config
}

// Encode frames payload and returns the Intel HEX records as text, one
// record per line, joined by "\n" with no trailing newline.
//
// The output is one Extended Linear Address record followed by one data
// record per chunk of the frame, in ascending address order.
//
// Example:
//
//	out, err := hexlify.New().Encode([]byte("A"))
//	// :020000040003F7
//	// :10E000004D50010041000000000000000000000031
func (e *Encoder) Encode(payload []byte) (string, error) {
	lines, err := e.EncodeLines(payload)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// EncodeText maps script text to single-byte characters and encodes it.
// See script.FromText for the character rules.
func (e *Encoder) EncodeText(text string) (string, error) {
	payload, err := script.FromText(text)
	if err != nil {
		e.logError("script text rejected", "error", err)
		return "", err
	}
	return e.Encode(payload)
}

// EncodeLines is like Encode but returns the records as separate lines.
func (e *Encoder) EncodeLines(payload []byte) ([]string, error) {
	records, err := e.Records(payload)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = rec.String()
	}
	return lines, nil
}

// Records frames payload and returns the records to emit.
// All range checks run before any record is built:
//  1. The start address must lie in the configured segment
//  2. The payload must fit the policy limit and the 16-bit length field
//  3. The frame must end within the segment
func (e *Encoder) Records(payload []byte) ([]*ihex.Record, error) {
	cfg := e.config

	if uint32(cfg.Segment) != cfg.StartAddress>>ihex.SegmentShift {
		err := &SegmentMismatchError{Start: cfg.StartAddress, Segment: cfg.Segment}
		e.logError("invalid address configuration", "error", err)
		return nil, err
	}

	if cfg.MaxPayloadSize > 0 && len(payload) > cfg.MaxPayloadSize {
		err := &script.PayloadTooLargeError{Size: len(payload), Limit: cfg.MaxPayloadSize}
		e.logError("payload rejected", "error", err)
		return nil, err
	}

	frame, err := script.BuildWithMagic(payload, cfg.Magic)
	if err != nil {
		e.logError("payload rejected", "error", err)
		return nil, err
	}

	limit := (uint64(cfg.Segment) + 1) << ihex.SegmentShift
	if uint64(cfg.StartAddress)+uint64(len(frame.Data)) > limit {
		err := &AddressOverflowError{
			Start:  cfg.StartAddress,
			Length: len(frame.Data),
			Limit:  limit,
		}
		e.logError("frame does not fit segment", "error", err)
		return nil, err
	}

	chunks := frame.Chunks(cfg.RecordSize)
	records := make([]*ihex.Record, 0, len(chunks)+1)

	ela, err := ihex.ExtendedLinearAddressRecord(cfg.Segment)
	if err != nil {
		return nil, fmt.Errorf("extended linear address record: %w", err)
	}
	records = append(records, ela)

	addr := cfg.StartAddress
	for i, chunk := range chunks {
		rec, err := ihex.DataRecord(uint16(addr), chunk)
		if err != nil {
			return nil, fmt.Errorf("data record %d at 0x%05X: %w", i, addr, err)
		}
		records = append(records, rec)
		addr += uint32(len(chunk))
	}

	e.logDebug("encoded script",
		"payload_bytes", len(payload),
		"frame_bytes", len(frame.Data),
		"padding", frame.Padding(),
		"records", len(records),
		"start_address", fmt.Sprintf("0x%05X", cfg.StartAddress),
		"end_address", fmt.Sprintf("0x%05X", addr),
	)

	return records, nil
}

// logDebug logs a debug message if a logger is configured.
func (e *Encoder) logDebug(msg string, keysAndValues ...interface{}) {
	if e.config.Logger != nil {
		e.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (e *Encoder) logInfo(msg string, keysAndValues ...interface{}) {
	if e.config.Logger != nil {
		e.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (e *Encoder) logError(msg string, keysAndValues ...interface{}) {
	if e.config.Logger != nil {
		e.config.Logger.Error(msg, keysAndValues...)
	}
}
