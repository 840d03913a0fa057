package core

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         int    `yaml:"port"`
	WatchDir     string `yaml:"watchDir"`
	DebugHeaders bool   `yaml:"debugHeaders"`
	DebugLogs    bool   `yaml:"debugLogs"`
}

func LoadConfig(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{
			Port:         8080,
			WatchDir:     ".",
			DebugHeaders: false,
			DebugLogs:    false,
		}
	}

	var cfg Config
	yaml.Unmarshal(data, &cfg)

	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.WatchDir == "" {
		cfg.WatchDir = "."
	}

	return cfg
}
