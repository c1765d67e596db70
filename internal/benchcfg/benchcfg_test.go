package benchcfg_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/randomizedcoder/go-fp-queues/internal/benchcfg"
)

// execute runs a driver command with args and returns the Config its body
// received.
func execute(t *testing.T, args ...string) (benchcfg.Config, error) {
	t.Helper()
	var got benchcfg.Config
	cmd := benchcfg.Command("test", "test driver", benchcfg.Defaults(),
		func(_ *cobra.Command, cfg benchcfg.Config, log *zap.Logger) error {
			require.NotNil(t, log)
			got = cfg
			return nil
		})
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return got, err
}

func TestCommand_Defaults(t *testing.T) {
	cfg, err := execute(t)
	require.NoError(t, err)
	require.Equal(t, benchcfg.Defaults().N, cfg.N)
	require.Equal(t, 1024, cfg.Size)
	require.Empty(t, cfg.Laws)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.Dev)
}

func TestCommand_Flags(t *testing.T) {
	cfg, err := execute(t, "--n", "5", "--size", "16", "--laws", "order,sum", "--laws", "growth", "--log-level", "debug", "--dev")
	require.NoError(t, err)
	require.Equal(t, 5, cfg.N)
	require.Equal(t, 16, cfg.Size)
	require.Equal(t, []string{"order", "sum", "growth"}, cfg.Laws)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.Dev)
}

func TestCommand_Env(t *testing.T) {
	t.Setenv("QUEUEBENCH_N", "77")
	t.Setenv("QUEUEBENCH_LOG_LEVEL", "warn")
	t.Setenv("QUEUEBENCH_LAWS", "order, map-order")

	cfg, err := execute(t)
	require.NoError(t, err)
	require.Equal(t, 77, cfg.N)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, []string{"order", "map-order"}, cfg.Laws)

	// Flags take precedence over environment variables.
	cfg, err = execute(t, "--n", "3")
	require.NoError(t, err)
	require.Equal(t, 3, cfg.N)
}

func TestCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 42\nsize: 8\nlaws: [sum]\n"), 0o600))

	cfg, err := execute(t, "--config", path)
	require.NoError(t, err)
	require.Equal(t, 42, cfg.N)
	require.Equal(t, 8, cfg.Size)
	require.Equal(t, []string{"sum"}, cfg.Laws)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "missing.yaml")
}

func TestCommand_Invalid(t *testing.T) {
	_, err := execute(t, "--size", "0")
	require.ErrorContains(t, err, "size")

	_, err = execute(t, "--n", "-1")
	require.ErrorContains(t, err, "n must not be negative")

	_, err = execute(t, "--log-level", "loud")
	require.Error(t, err)

	_, err = execute(t, "extra")
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	log, err := benchcfg.NewLogger(benchcfg.Config{LogLevel: "warn"})
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Core().Enabled(zapcore.WarnLevel))

	log, err = benchcfg.NewLogger(benchcfg.Config{LogLevel: "debug", Dev: true})
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zapcore.DebugLevel))

	_, err = benchcfg.NewLogger(benchcfg.Config{LogLevel: "nope"})
	require.Error(t, err)
}
