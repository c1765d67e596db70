// Package benchcfg resolves the settings shared by the command line
// drivers.
//
// Every setting can come from a flag, an environment variable or a config
// file, in that order of precedence. Environment variable names are the
// flag names upper-cased, with dashes turned into underscores and a
// QUEUEBENCH_ prefix:
//
//	QUEUEBENCH_N=1000000 QUEUEBENCH_LOG_LEVEL=debug go run ./cmd/fifo
//
// The config file is only read when --config names one. Its format follows
// its extension (yaml, json, toml and the others viper supports).
package benchcfg

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment variable name.
const EnvPrefix = "QUEUEBENCH"

// Config holds the resolved settings.
type Config struct {
	// N is the iteration count of the timing drivers and the item count
	// of queuecheck.
	N int
	// Size is the number of items pushed per batch.
	Size int
	// Laws restricts queuecheck to the named laws; empty means all.
	Laws []string
	// LogLevel is a zap level name.
	LogLevel string
	// Dev selects zap's development logger.
	Dev bool
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Config {
	return Config{
		N:        10_000_000,
		Size:     1024,
		LogLevel: "info",
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if c.N < 0 {
		return fmt.Errorf("benchcfg: n must not be negative, got %d", c.N)
	}
	if c.Size < 1 {
		return fmt.Errorf("benchcfg: size must be positive, got %d", c.Size)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("benchcfg: %w", err)
	}
	return nil
}

// RunFunc is the body of a driver command.
type RunFunc func(cmd *cobra.Command, cfg Config, log *zap.Logger) error

// Command returns a cobra command with the shared flags. Before run is
// called the settings are resolved, validated and turned into a logger.
func Command(use, short string, defaults Config, run RunFunc) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:          use,
		Short:        short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := Load(v, cfgFile)
			if err != nil {
				return err
			}
			log, err := NewLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return run(cmd, cfg, log)
		},
	}

	addFlags(cmd.Flags(), defaults, &cfgFile)
	// Only fails on a nil flag set.
	_ = v.BindPFlags(cmd.Flags())
	return cmd
}

func addFlags(flags *pflag.FlagSet, defaults Config, cfgFile *string) {
	flags.StringVar(cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.Int("n", defaults.N, "number of iterations")
	flags.Int("size", defaults.Size, "items pushed per batch")
	flags.StringSlice("laws", defaults.Laws, "laws to check (default all)")
	flags.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.Bool("dev", defaults.Dev, "human readable development logging")
}

// Load resolves the settings bound to v, reading cfgFile first when it is
// not empty.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("benchcfg: reading %s: %w", cfgFile, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := Config{
		N:        v.GetInt("n"),
		Size:     v.GetInt("size"),
		Laws:     splitList(v.GetStringSlice("laws")),
		LogLevel: v.GetString("log-level"),
		Dev:      v.GetBool("dev"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// splitList flattens comma separated entries and drops empty ones.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// NewLogger builds the zap logger cfg asks for.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("benchcfg: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	if cfg.Dev {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
