package models

// WorkspaceConfig holds settings read from .rfconfig via Viper.
type WorkspaceConfig struct {
	WorkspaceID           string         `yaml:"workspace_id" mapstructure:"workspace_id"`
	DefaultAudience       string         `yaml:"default_audience" mapstructure:"default_audience"`
	DefaultTimeCommitment TimeCommitment `yaml:"default_time_commitment" mapstructure:"default_time_commitment"`
	DefaultDuration       int            `yaml:"default_duration" mapstructure:"default_duration"`
	SampleSeed            int64          `yaml:"sample_seed" mapstructure:"sample_seed"`
	LogLevel              string         `yaml:"log_level" mapstructure:"log_level"`
}
