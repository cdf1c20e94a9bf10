// Package config
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"

	DefaultFileName       = "sysinfo.txt"
	DefaultSampleInterval = time.Second
)

type Config struct {
	OutputPath        string        `json:"output_path" validate:"required_if=WriteFile true"`
	Console           bool          `json:"console"`
	WriteFile         bool          `json:"write_file"`
	CPUSampleInterval time.Duration `json:"cpu_sample_interval" validate:"gt=0,lte=1m"`
	LogLevel          string        `json:"log_level" validate:"oneof=debug info warn error"`
	LogFormat         string        `json:"log_format" validate:"oneof=text json"`
}

func Default() *Config {
	return &Config{
		OutputPath:        defaultOutputPath(),
		Console:           true,
		WriteFile:         true,
		CPUSampleInterval: DefaultSampleInterval,
		LogLevel:          "info",
		LogFormat:         LogFormatText,
	}
}

func Load() *Config {
	godotenv.Load()

	cfg := Default()

	if path := os.Getenv("SYSINFO_OUTPUT"); path != "" {
		cfg.OutputPath = path
	}

	cfg.Console = envBool("SYSINFO_CONSOLE", cfg.Console)
	cfg.WriteFile = envBool("SYSINFO_FILE", cfg.WriteFile)

	if raw := os.Getenv("CPU_SAMPLE_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			cfg.CPUSampleInterval = parsed
		}
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}

	return cfg
}

func defaultOutputPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultFileName
	}

	return filepath.Join(home, DefaultFileName)
}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}

	return v
}
