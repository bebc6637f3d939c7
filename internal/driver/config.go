package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dcreager/cobs-go/cobs"
)

// Config controls a fuzzing run.
type Config struct {
	// Convention is how inputs to the decode oracle are framed.
	Convention cobs.Convention
	// Trials is the number of generated inputs, in addition to the corpus.
	Trials int
	// MaxLength bounds the length of generated payloads and raw inputs.
	MaxLength int
	// Seed is added to the trial number to seed each trial's generator.
	Seed int64
	// Workers is the number of goroutines sharing the trials.  Zero means
	// GOMAXPROCS.
	Workers int
	// CorpusDir holds extra inputs, one per file.  Optional.
	CorpusDir string
	// CrashDir receives every discrepancy as a Go fuzz corpus file.
	// Optional.
	CrashDir string
	// MetricsListenAddr serves prometheus metrics while running.  Optional.
	MetricsListenAddr string
	// LogLevel is a zerolog level name; COBS_ORACLE_LOG_LEVEL overrides
	// it.
	LogLevel string
	// CompareEncoders also runs each input through the encode oracle, as a
	// payload.
	CompareEncoders bool
}

// DefaultConfig returns the settings used for keys that a config file
// leaves out.
func DefaultConfig() Config {
	return Config{
		Convention:      cobs.Delimited,
		Trials:          10000,
		MaxLength:       512,
		LogLevel:        "info",
		CompareEncoders: true,
	}
}

// cobs-oracle config.toml key mapping to Config.
type fileConfig struct {
	Convention        cobs.Convention `toml:"convention"`
	Trials            int             `toml:"trials"`
	MaxLength         int             `toml:"max_length"`
	Seed              int64           `toml:"seed"`
	Workers           int             `toml:"workers"`
	CorpusDir         string          `toml:"corpus_dir"`
	CrashDir          string          `toml:"crash_dir"`
	MetricsListenAddr string          `toml:"metrics_listen_addr"`
	LogLevel          string          `toml:"log_level"`
	CompareEncoders   bool            `toml:"compare_encoders"`
}

// LoadConfig reads a TOML config file and overlays it on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load oracle config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load oracle config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("convention") {
		cfg.Convention = raw.Convention
	}
	if meta.IsDefined("trials") {
		cfg.Trials = raw.Trials
	}
	if meta.IsDefined("max_length") {
		cfg.MaxLength = raw.MaxLength
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("corpus_dir") {
		cfg.CorpusDir = strings.TrimSpace(raw.CorpusDir)
	}
	if meta.IsDefined("crash_dir") {
		cfg.CrashDir = strings.TrimSpace(raw.CrashDir)
	}
	if meta.IsDefined("metrics_listen_addr") {
		cfg.MetricsListenAddr = strings.TrimSpace(raw.MetricsListenAddr)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("compare_encoders") {
		cfg.CompareEncoders = raw.CompareEncoders
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load oracle config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if _, err := c.Convention.MarshalText(); err != nil {
		return err
	}
	if c.Trials < 0 {
		return errors.New("trials must not be negative")
	}
	if c.MaxLength < 0 {
		return errors.New("max_length must not be negative")
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	return nil
}
