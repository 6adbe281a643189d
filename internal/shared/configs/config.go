package configs

// Config holds all configuration for the application.
type Config struct {
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Input       InputConfig       `mapstructure:"input" validate:"required"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
	Output      OutputConfig      `mapstructure:"output"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Profile     ProfileConfig     `mapstructure:"profile"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,loglevel"`
}

// InputConfig describes where the measurements come from and how they are acquired.
type InputConfig struct {
	Path        string `mapstructure:"path" validate:"required"`
	Mode        string `mapstructure:"mode" validate:"required,oneof=mmap read"`
	Compression string `mapstructure:"compression" validate:"required,oneof=auto none zstd"`
}

// AggregationConfig holds the engine knobs.
type AggregationConfig struct {
	Workers     int  `mapstructure:"workers" validate:"min=0,max=4096"` // 0 = number of CPUs
	PageAlign   bool `mapstructure:"page_align"`
	MaxKeyBytes int  `mapstructure:"max_key_bytes" validate:"required,min=1,max=65536"`
}

// OutputConfig holds summary persistence configuration. An empty Dir disables it.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// MetricsConfig holds metrics export configuration. An empty TextfilePath disables it.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"`
}

// ProfileConfig holds profiling configuration.
type ProfileConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Mode    string `mapstructure:"mode" validate:"required,oneof=cpu mem"`
	Dir     string `mapstructure:"dir" validate:"required"`
}
