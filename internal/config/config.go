package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override file settings.
const EnvPrefix = "HEXLIFY"

// EncoderConfig selects where and how the script is placed in flash.
type EncoderConfig struct {
	StartAddress   uint32 `mapstructure:"startAddress" yaml:"startAddress"`
	Segment        uint16 `mapstructure:"segment" yaml:"segment"`
	Magic          uint16 `mapstructure:"magic" yaml:"magic"`
	MaxPayloadSize int    `mapstructure:"maxPayloadSize" yaml:"maxPayloadSize"`
	RecordSize     int    `mapstructure:"recordSize" yaml:"recordSize"`
}

// LumberjackConfig configures the rolling log file.
type LumberjackConfig struct {
	Filename   string `mapstructure:"filename" yaml:"filename"`
	MaxSizeMB  int    `mapstructure:"maxSize" yaml:"maxSize"`
	MaxBackups int    `mapstructure:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAge" yaml:"maxAge"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// LoggingConfig configures log level and outputs.
type LoggingConfig struct {
	Level  string           `mapstructure:"level" yaml:"level"`
	Format string           `mapstructure:"format" yaml:"format"`
	File   LumberjackConfig `mapstructure:"file" yaml:"file"`
}

// Config is the top-level configuration.
type Config struct {
	Encoder EncoderConfig `mapstructure:"encoder" yaml:"encoder"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// Load reads configuration from a YAML/TOML/JSON file and the environment.
// If path is empty, HEXLIFY_CONFIG is consulted, then hexlify.* in the
// working directory and in $HOME/.config/hexlify. A missing default file is
// not an error; defaults and environment variables apply.
//
// Environment variables use the HEXLIFY_ prefix with dots replaced by
// underscores, e.g. HEXLIFY_ENCODER_STARTADDRESS=0x3E000.
func Load(path string) (*Config, error) {
	v := viper.New()

	if err := v.BindEnv("config", EnvPrefix+"_CONFIG"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	if path == "" {
		path = v.GetString("config")
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/hexlify")
		v.SetConfigName("hexlify")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults are static and always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("encoder.startAddress", 0x3E000)
	v.SetDefault("encoder.segment", 0x0003)
	v.SetDefault("encoder.magic", 0x4D50)
	v.SetDefault("encoder.maxPayloadSize", 0x2000)
	v.SetDefault("encoder.recordSize", 16)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.filename", "")
	v.SetDefault("logging.file.maxSize", 10)
	v.SetDefault("logging.file.maxBackups", 3)
	v.SetDefault("logging.file.maxAge", 28)
	v.SetDefault("logging.file.compress", false)
}

// Validate checks the configuration for values the encoder cannot use.
func (c *Config) Validate() error {
	e := c.Encoder
	if uint32(e.Segment) != e.StartAddress>>16 {
		return fmt.Errorf("encoder.startAddress 0x%05X is not in encoder.segment 0x%04X", e.StartAddress, e.Segment)
	}
	if e.MaxPayloadSize < 0 || e.MaxPayloadSize > 0xFFFF {
		return fmt.Errorf("encoder.maxPayloadSize must be 0-65535, got %d", e.MaxPayloadSize)
	}
	if e.RecordSize < 1 || e.RecordSize > 0xFF {
		return fmt.Errorf("encoder.recordSize must be 1-255, got %d", e.RecordSize)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of console, json", c.Logging.Format)
	}
	return nil
}
