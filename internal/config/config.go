package config

import (
	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	"github.com/sentinelops/dbx-resource-monitor/internal/log"
	"github.com/sentinelops/dbx-resource-monitor/internal/reporting/text"
)

type Config struct {
	ResourceType  string         `mapstructure:"resource_type" validate:"required"`
	ActionMode    string         `mapstructure:"action_mode" validate:"required,oneof=alert delete"`
	WhitelistPath string         `mapstructure:"whitelist_path"`
	DryRun        bool           `mapstructure:"dry_run"`
	Profile       string         `mapstructure:"profile"`
	Settings      SettingsConfig `mapstructure:"settings"`
}

type SettingsConfig struct {
	LogLevel   log.Level  `mapstructure:"log_level"`
	LogFormat  log.Format `mapstructure:"log_format"`
	Reporter   string     `mapstructure:"reporter" validate:"omitempty,oneof=text json"`
	APIRateRPS int        `mapstructure:"api_rate_rps" validate:"omitempty,min=0,max=50"`
	NoColor    bool       `mapstructure:"no_color"`
}

func (c *Config) ResourceTypeValue() domain.ResourceType {
	return domain.ResourceType(c.ResourceType)
}

func (c *Config) ActionModeValue() domain.ActionMode {
	return domain.ActionMode(c.ActionMode)
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:  log.LevelInfo,
			LogFormat: log.FormatText,
			Reporter:  text.ReporterTypeText,
		},
	}
}
