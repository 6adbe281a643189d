package configs

import (
	"fmt"
	"strings"

	"one-billion-row/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "AGGREGATOR"

// Command-line flag names.
const (
	FlagConfig     = "config"
	FlagThreads    = "threads"
	FlagNumThreads = "num-threads"
	FlagLogLevel   = "log-level"
	FlagInputMode  = "input-mode"
	FlagOutputDir  = "output-dir"
)

// NewFlagSet declares the command-line surface. The first positional argument,
// when present, is the input path.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String(FlagConfig, "", "path to a YAML config file")
	flags.IntP(FlagThreads, "t", 0, "number of parallel workers (0 = number of CPUs)")
	flags.Int(FlagNumThreads, 0, "alias of --threads")
	flags.String(FlagLogLevel, "", "log level (trace, debug, info, warn, error)")
	flags.String(FlagInputMode, "", "input acquisition: mmap or read")
	flags.String(FlagOutputDir, "", "directory receiving a JSON copy of the summary")
	return flags
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("input.path", "./measurements.txt")
	v.SetDefault("input.mode", "mmap")
	v.SetDefault("input.compression", "auto")
	v.SetDefault("aggregation.workers", 0)
	v.SetDefault("aggregation.page_align", true)
	v.SetDefault("aggregation.max_key_bytes", 100)
	v.SetDefault("output.dir", "")
	v.SetDefault("metrics.textfile_path", "")
	v.SetDefault("profile.enabled", false)
	v.SetDefault("profile.mode", "cpu")
	v.SetDefault("profile.dir", ".")
}

// LoadConfig resolves configuration from, in increasing precedence: defaults, the
// YAML file at configPath (skipped when empty), AGGREGATOR_* environment variables
// and the parsed flags (nil means no flags). The result is validated.
var LoadConfig = func(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	threads := flags.Lookup(FlagThreads)
	if alias := flags.Lookup(FlagNumThreads); alias != nil && alias.Changed && (threads == nil || !threads.Changed) {
		threads = alias
	}
	bindings := map[string]*pflag.Flag{
		"aggregation.workers": threads,
		"log.level":           flags.Lookup(FlagLogLevel),
		"input.mode":          flags.Lookup(FlagInputMode),
		"output.dir":          flags.Lookup(FlagOutputDir),
	}
	for key, flag := range bindings {
		// only explicitly set flags take part, so flag zero values never mask defaults
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	if flags.NArg() > 0 {
		v.Set("input.path", flags.Arg(0))
	}
	return nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "aggregation.maxkeybytes")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Input.Mode" -> "input.mode")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case "loglevel":
		msg = fmt.Sprintf("%s (unknown log level %q)", field, e.Value())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
