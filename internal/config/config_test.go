package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/redjax/storbar/internal/constants"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(nil, "")
	require.NoError(t, err)

	require.Equal(t, constants.DefaultTooltipMode, s.TooltipMode)
	require.Equal(t, constants.DefaultLanguage, s.Language)
	require.Equal(t, constants.DefaultInterval, s.Interval)
	require.Equal(t, constants.DefaultMountTable, s.Table)
	require.Equal(t, int64(constants.DefaultMaxTableSize), s.MaxTableSize)
	require.Equal(t, time.Duration(0), s.ProbeTimeout)
	require.Equal(t, constants.DefaultHostProcess, s.SignalProcess)
	require.Equal(t, constants.DefaultSignalOffset, s.SignalOffset)

	require.NoError(t, s.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storbar.yaml")
	cfg := []byte("interval: 5s\nmount:\n  table: /tmp/mounts\nsignal:\n  process: mybar\n")
	require.NoError(t, os.WriteFile(path, cfg, 0o600))

	s, err := Load(nil, path)
	require.NoError(t, err)

	require.Equal(t, 5*time.Second, s.Interval)
	require.Equal(t, "/tmp/mounts", s.Table)
	require.Equal(t, "mybar", s.SignalProcess)
	// Keys the file does not mention keep their defaults.
	require.Equal(t, constants.DefaultTooltipMode, s.TooltipMode)
}

func TestLoadUnsupportedConfigFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storbar.ini")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := Load(nil, path)
	require.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storbar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval: 5s\n"), 0o600))

	t.Setenv("STORBAR_INTERVAL", "45s")
	t.Setenv("STORBAR_TOOLTIP_MODE", "compact")

	s, err := Load(nil, path)
	require.NoError(t, err)

	require.Equal(t, 45*time.Second, s.Interval)
	require.Equal(t, "compact", s.TooltipMode)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("STORBAR_MOUNT_TABLE", "/from/env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("table", constants.DefaultMountTable, "")
	flags.Duration("interval", constants.DefaultInterval, "")
	require.NoError(t, flags.Parse([]string{"--table", "/from/flag"}))

	s, err := Load(flags, "")
	require.NoError(t, err)

	require.Equal(t, "/from/flag", s.Table)
	// Unchanged flags do not shadow env/file values.
	require.Equal(t, constants.DefaultInterval, s.Interval)
}

func TestLoadUnchangedFlagKeepsEnvValue(t *testing.T) {
	t.Setenv("STORBAR_INTERVAL", "7s")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Duration("interval", constants.DefaultInterval, "")
	require.NoError(t, flags.Parse(nil))

	s, err := Load(flags, "")
	require.NoError(t, err)
	require.Equal(t, 7*time.Second, s.Interval)
}

func TestLoadInvalidDurationIsFatal(t *testing.T) {
	t.Setenv("STORBAR_INTERVAL", "soon")

	_, err := Load(nil, "")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Settings {
		s, err := Load(nil, "")
		require.NoError(t, err)
		return s
	}

	t.Run("invalid language", func(t *testing.T) {
		s := base()
		s.Language = "not a tag"
		require.Error(t, s.Validate())
	})

	t.Run("valid language tag", func(t *testing.T) {
		s := base()
		s.Language = "pt-BR"
		require.NoError(t, s.Validate())
	})

	t.Run("non-positive interval", func(t *testing.T) {
		s := base()
		s.Interval = 0
		require.Error(t, s.Validate())
	})

	t.Run("negative probe timeout", func(t *testing.T) {
		s := base()
		s.ProbeTimeout = -time.Second
		require.Error(t, s.Validate())
	})

	t.Run("signal offset out of range", func(t *testing.T) {
		s := base()
		s.SignalOffset = 99
		require.Error(t, s.Validate())
	})

	t.Run("empty process name", func(t *testing.T) {
		s := base()
		s.SignalProcess = ""
		require.Error(t, s.Validate())
	})
}
