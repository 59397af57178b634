package main

import (
	"github.com/spf13/cobra"

	"github.com/moffa90/go-hexlify/internal/config"
)

// encoderFlags override the encoder section of the configuration.
type encoderFlags struct {
	startAddress uint32
	segment      uint16
	magic        uint16
	maxSize      int
	raw          bool
}

func (f *encoderFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint32Var(&f.startAddress, "start-address", 0, "Flash address of the first data record (default from config, 0x3E000)")
	cmd.Flags().Uint16Var(&f.segment, "segment", 0, "Extended linear address segment (default: start address >> 16)")
	cmd.Flags().Uint16Var(&f.magic, "magic", 0, "Frame header magic (default from config, 0x4D50)")
	cmd.Flags().IntVar(&f.maxSize, "max-size", 0, "Maximum script size in bytes, 0 for no limit (default from config, 8192)")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "Use script bytes verbatim instead of mapping UTF-8 text to single bytes")
}

// apply returns enc with the flags the user set on cmd.
func (f *encoderFlags) apply(cmd *cobra.Command, enc config.EncoderConfig) config.EncoderConfig {
	fs := cmd.Flags()
	if fs.Changed("start-address") {
		enc.StartAddress = f.startAddress
		if !fs.Changed("segment") {
			enc.Segment = uint16(f.startAddress >> 16)
		}
	}
	if fs.Changed("segment") {
		enc.Segment = f.segment
	}
	if fs.Changed("magic") {
		enc.Magic = f.magic
	}
	if fs.Changed("max-size") {
		enc.MaxPayloadSize = f.maxSize
	}
	return enc
}
