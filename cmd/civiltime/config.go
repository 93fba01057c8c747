package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/k-yomo/civiltime/pkg/validate"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

type Layout string

const (
	LayoutDatetime Layout = "datetime"
	LayoutDate     Layout = "date"
	LayoutTime     Layout = "time"
	LayoutAMPM     Layout = "ampm"
	LayoutDiff     Layout = "diff"
)

type Config struct {
	// Datetime is a UTC `YYYY-MM-DD hh:mm:ss` datetime.
	// If both Datetime and Schedule are empty, the current time is used.
	Datetime string `yaml:"datetime" validate:"excluded_with=Schedule"`
	// Timezones to read Datetime in (e.g. `America/New_York`)
	Timezones []string `yaml:"timezones" validate:"required,min=1,dive,required"`
	// Layout of the output, `datetime` by default
	Layout Layout `yaml:"layout" validate:"omitempty,oneof=datetime date time ampm diff"`
	// Schedule is a cron format schedule, its next occurrence is converted instead of Datetime.
	// default timezone is machine local timezone,
	// if you want to specify, set TZ= prefix (e.g. `TZ=UTC 0 9 * * 1-5`)
	Schedule string `yaml:"schedule"`
}

func loadConfig(path string) (*Config, error) {
	configBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	config := &Config{}
	if err := yaml.Unmarshal(configBytes, config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if config.Layout == "" {
		config.Layout = LayoutDatetime
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config == nil {
		return errors.New("config must not be nil")
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if config.Datetime != "" && !validate.IsDateTime(config.Datetime) {
		return fmt.Errorf("validate datetime: '%s' is not in `YYYY-MM-DD hh:mm:ss` format", config.Datetime)
	}
	if config.Schedule != "" {
		if _, err := cron.ParseStandard(config.Schedule); err != nil {
			return fmt.Errorf("validate cron schedule: %w", err)
		}
	}
	return nil
}
