package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const configFileEnv = "CONVERTER_CONFIG"

type Config struct {
	InputPath string `yaml:"input_path"`
	OutputDir string `yaml:"output_dir"`
	LogLevel  string `yaml:"log_level"`

	ValidateOutput  bool   `yaml:"validate_output"`
	XLSXExportPath  string `yaml:"xlsx_export_path"`
	MetricsTextfile string `yaml:"metrics_textfile"`
}

func defaults() Config {
	return Config{
		InputPath:      "Pig_commercial_final.json",
		OutputDir:      ".",
		LogLevel:       "info",
		ValidateOutput: true,
	}
}

// Load builds the configuration from defaults, the optional YAML file named by
// CONVERTER_CONFIG and environment variables, in increasing precedence.
func Load() (Config, error) {
	cfg := defaults()
	if path := os.Getenv(configFileEnv); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.InputPath = mustEnv("INPUT_PATH", cfg.InputPath)
	cfg.OutputDir = mustEnv("OUTPUT_DIR", cfg.OutputDir)
	cfg.LogLevel = mustEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.ValidateOutput = mustEnvBool("VALIDATE_OUTPUT", cfg.ValidateOutput)
	cfg.XLSXExportPath = mustEnv("XLSX_EXPORT_PATH", cfg.XLSXExportPath)
	cfg.MetricsTextfile = mustEnv("METRICS_TEXTFILE", cfg.MetricsTextfile)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
