package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moffa90/go-hexlify/hexlify"
	"github.com/moffa90/go-hexlify/internal/config"
	"github.com/moffa90/go-hexlify/internal/logging"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

// appState is filled in by the root command before any subcommand runs.
type appState struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	state := &appState{}

	rootCmd := &cobra.Command{
		Use:   "hexlify",
		Short: "Convert MicroPython scripts to Intel HEX for the micro:bit",
		Long: `hexlify frames a MicroPython script and encodes it as Intel HEX records
at the flash address where the bootloader looks for it. The records can be
appended to, or combined with, a MicroPython firmware image.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.init(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if state.logger != nil {
				_ = state.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ./hexlify.yaml or $HOME/.config/hexlify/hexlify.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newScriptCmd(state))
	rootCmd.AddCommand(newCombineCmd(state))
	rootCmd.AddCommand(newConfigCmd(state))

	return rootCmd
}

func (s *appState) init(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.InitLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	s.cfg = cfg
	s.logger = logger
	return nil
}

// encoder builds an Encoder from the loaded configuration.
func (s *appState) encoder(enc config.EncoderConfig) *hexlify.Encoder {
	return hexlify.New(
		hexlify.WithStartAddress(enc.StartAddress),
		hexlify.WithSegment(enc.Segment),
		hexlify.WithMagic(enc.Magic),
		hexlify.WithMaxPayloadSize(enc.MaxPayloadSize),
		hexlify.WithRecordSize(enc.RecordSize),
		hexlify.WithLogger(logging.NewEncoderLogger(s.logger)),
	)
}
