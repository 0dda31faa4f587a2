package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/raptorflow/pkg/models"
)

// ConfigFileName is the name of the workspace configuration file (without
// extension) looked up in the base path.
const ConfigFileName = ".rfconfig"

// ConfigurationManager loads and validates the workspace configuration.
type ConfigurationManager interface {
	LoadConfig() (*models.WorkspaceConfig, error)
	ValidateConfig(cfg *models.WorkspaceConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// .rfconfig relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultConfig returns a WorkspaceConfig populated with defaults.
func DefaultConfig() *models.WorkspaceConfig {
	return &models.WorkspaceConfig{
		WorkspaceID:           "default",
		DefaultAudience:       "",
		DefaultTimeCommitment: models.TimeNone,
		DefaultDuration:       DefaultDuration,
		SampleSeed:            1,
		LogLevel:              "warn",
	}
}

// LoadConfig reads .rfconfig from the base path. A missing file yields the
// defaults; a present but invalid file is an error.
func (cm *viperConfigManager) LoadConfig() (*models.WorkspaceConfig, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("workspace.id", cfg.WorkspaceID)
	v.SetDefault("defaults.audience", cfg.DefaultAudience)
	v.SetDefault("defaults.time_commitment", string(cfg.DefaultTimeCommitment))
	v.SetDefault("defaults.duration", cfg.DefaultDuration)
	v.SetDefault("sample.seed", cfg.SampleSeed)
	v.SetDefault("log.level", cfg.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}

	cfg.WorkspaceID = v.GetString("workspace.id")
	cfg.DefaultAudience = v.GetString("defaults.audience")
	cfg.DefaultDuration = v.GetInt("defaults.duration")
	cfg.SampleSeed = v.GetInt64("sample.seed")
	cfg.LogLevel = strings.ToLower(v.GetString("log.level"))

	cfg.DefaultTimeCommitment = models.TimeCommitment(v.GetString("defaults.time_commitment"))

	if err := cm.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	// Validated above, so only the "none" alias is rewritten here.
	cfg.DefaultTimeCommitment, _ = models.ParseTimeCommitment(string(cfg.DefaultTimeCommitment))
	return cfg, nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateConfig reports every invalid field of cfg in one error.
func (cm *viperConfigManager) ValidateConfig(cfg *models.WorkspaceConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if strings.TrimSpace(cfg.WorkspaceID) == "" {
		errs = append(errs, "workspace.id must not be empty")
	}

	if _, err := models.ParseTimeCommitment(string(cfg.DefaultTimeCommitment)); err != nil {
		errs = append(errs, fmt.Sprintf("defaults.time_commitment: %v", err))
	}

	if cfg.DefaultDuration < 1 || cfg.DefaultDuration > MaxDuration {
		errs = append(errs, fmt.Sprintf(
			"defaults.duration %d is invalid, must be between 1 and %d",
			cfg.DefaultDuration, MaxDuration,
		))
	}

	if !validLogLevels[cfg.LogLevel] {
		errs = append(errs, fmt.Sprintf(
			"log.level %q is invalid, must be one of: debug, info, warn, error",
			cfg.LogLevel,
		))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
