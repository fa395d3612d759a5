package config

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	defaultAddress      = "127.0.0.1:3000"
	defaultLatinFile    = "regions_uz_Uz.json"
	defaultCyrillicFile = "regions_uz_Kr.json"
)

//go:embed config.yaml
var embedded []byte

type Config struct {
	Server struct {
		Address      string        `yaml:"address"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
	} `yaml:"server"`
	Regions struct {
		Latin    string `yaml:"uz_Uz"`
		Cyrillic string `yaml:"uz_Kr"`
	} `yaml:"regions"`
}

// Default returns the fallback settings: loopback port 3000 and the two
// documents in the working directory. WriteTimeout is left at zero so a
// document read has no deadline.
func Default() Config {
	var cfg Config
	cfg.Server.Address = defaultAddress
	cfg.Server.IdleTimeout = time.Minute
	cfg.Server.ReadTimeout = 5 * time.Second
	cfg.Regions.Latin = defaultLatinFile
	cfg.Regions.Cyrillic = defaultCyrillicFile
	return cfg
}

// LoadConfig returns the settings compiled into the binary. Nothing is read
// from disk or the environment at runtime.
func LoadConfig() (Config, error) {
	return parse(embedded)
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config data: %w", err)
	}
	return cfg, nil
}
