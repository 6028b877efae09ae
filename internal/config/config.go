package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	Dev          string `yaml:"dev"`      // e.g. /dev/spidev0.0; empty picks the first port
	SpeedHz      int    `yaml:"speed_hz"` // e.g. 2500000
	MOSIIdleHigh bool   `yaml:"mosi_idle_high"`
}

type Config struct {
	Pixels     int     `yaml:"pixels"`
	FPS        int     `yaml:"fps"`
	Brightness float64 `yaml:"brightness"`
	Pattern    string  `yaml:"pattern"` // "rainbow" | "chase" | "solid"

	SPI SPI `yaml:"spi,omitempty"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
