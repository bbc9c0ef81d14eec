package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/redjax/storbar/internal/constants"
)

// Settings holds everything configurable about the daemon. It is built once
// at startup and read-only afterwards; commands pass it down by pointer.
type Settings struct {
	// TooltipMode selects the multi-line tooltip layout: "normal" or "compact".
	TooltipMode string
	// Language is a BCP-47 tag. Reserved; output is not translated yet.
	Language string
	// Interval is the delay between report cycles.
	Interval time.Duration
	// Table is the mount table path read each cycle.
	Table string
	// MaxTableSize bounds how many bytes of the table are read per cycle.
	MaxTableSize int64
	// ProbeTimeout bounds each filesystem probe. Zero disables the bound,
	// restoring fully blocking probes.
	ProbeTimeout time.Duration
	// SignalProcess is the bar process signaled after each report.
	SignalProcess string
	// SignalOffset is added to SIGRTMIN to form the re-render signal.
	SignalOffset int
}

// CLI flag names that map to nested config keys. Flags not listed here use
// their own name as the key.
var flagKeys = map[string]string{
	"table":          "mount.table",
	"max-table-size": "mount.maxsize",
	"probe-timeout":  "probe.timeout",
	"process":        "signal.process",
	"rt-offset":      "signal.rtoffset",
	"mode":           "tooltip.mode",
}

// Load builds Settings from, in increasing precedence: built-in defaults, an
// optional config file, STORBAR_* environment variables, and any changed
// flags in flagSet. The run command's positional arguments are applied on
// top by the caller.
func Load(flagSet *pflag.FlagSet, configFile string) (*Settings, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"tooltip.mode":    constants.DefaultTooltipMode,
		"language":        constants.DefaultLanguage,
		"interval":        constants.DefaultInterval,
		"mount.table":     constants.DefaultMountTable,
		"mount.maxsize":   int64(constants.DefaultMaxTableSize),
		"probe.timeout":   time.Duration(0),
		"signal.process":  constants.DefaultHostProcess,
		"signal.rtoffset": constants.DefaultSignalOffset,
	}
	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %q: %w", key, err)
		}
	}

	if configFile != "" {
		parser, err := parserForFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configFile, err)
		}
	}

	// STORBAR_MOUNT_TABLE becomes mount.table, and so on.
	if err := k.Load(env.Provider("STORBAR_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "STORBAR_")), "_", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flagSet != nil {
		p := posflag.ProviderWithFlag(flagSet, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key := f.Name
			if mapped, ok := flagKeys[f.Name]; ok {
				key = mapped
			}
			// Unchanged flags must not shadow file/env values.
			if !f.Changed && k.Exists(key) {
				return "", nil
			}
			return key, posflag.FlagVal(flagSet, f)
		})
		if err := k.Load(p, nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	interval, err := durationKey(k, "interval")
	if err != nil {
		return nil, err
	}
	probeTimeout, err := durationKey(k, "probe.timeout")
	if err != nil {
		return nil, err
	}

	return &Settings{
		TooltipMode:   k.String("tooltip.mode"),
		Language:      k.String("language"),
		Interval:      interval,
		Table:         k.String("mount.table"),
		MaxTableSize:  k.Int64("mount.maxsize"),
		ProbeTimeout:  probeTimeout,
		SignalProcess: k.String("signal.process"),
		SignalOffset:  k.Int("signal.rtoffset"),
	}, nil
}

// durationKey reads a duration that may arrive as a native duration (flag or
// default), a number of nanoseconds (json/toml), or a string like "20s"
// (env or yaml).
func durationKey(k *koanf.Koanf, path string) (time.Duration, error) {
	switch v := k.Get(path).(type) {
	case nil:
		return 0, nil
	case time.Duration:
		return v, nil
	case int:
		return time.Duration(v), nil
	case int64:
		return time.Duration(v), nil
	case float64:
		return time.Duration(int64(v)), nil
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %w", path, err)
		}
		return d, nil
	default:
		return 0, fmt.Errorf("invalid duration for %s: unsupported type %T", path, v)
	}
}

// Validate rejects settings that would misbehave at runtime. Tooltip mode is
// validated separately by the report layer, which owns the mode enum.
func (s *Settings) Validate() error {
	if _, err := language.Parse(s.Language); err != nil {
		return fmt.Errorf("invalid language %q: %w", s.Language, err)
	}
	if s.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", s.Interval)
	}
	if s.MaxTableSize <= 0 {
		return fmt.Errorf("max table size must be positive, got %d", s.MaxTableSize)
	}
	if s.ProbeTimeout < 0 {
		return fmt.Errorf("probe timeout cannot be negative, got %v", s.ProbeTimeout)
	}
	if s.SignalProcess == "" {
		return fmt.Errorf("signal process name cannot be empty")
	}
	// SIGRTMIN..SIGRTMAX spans 34..64 in userspace.
	if s.SignalOffset < 0 || constants.SigrtMin+s.SignalOffset > 64 {
		return fmt.Errorf("signal offset %d is outside the real-time signal range", s.SignalOffset)
	}
	return nil
}

func parserForFile(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
