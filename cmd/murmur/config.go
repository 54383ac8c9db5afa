package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// config holds the driver settings. Flags override file values.
type config struct {
	Train     string `yaml:"train"`
	Order     int    `yaml:"order"`
	Tokenizer string `yaml:"tokenizer"`
	Seed      int64  `yaml:"seed"`
	Count     int    `yaml:"count"`
}

func defaultConfig() config {
	return config{
		Order:     2,
		Tokenizer: "word",
		Seed:      1,
		Count:     20,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// override applies any explicitly set flag values on top of the file config.
func (c *config) override(train string, order int, tokenizer string, seed int64, count int) {
	if train != "" {
		c.Train = train
	}
	if order > 0 {
		c.Order = order
	}
	if tokenizer != "" {
		c.Tokenizer = tokenizer
	}
	if seed != 0 {
		c.Seed = seed
	}
	if count > 0 {
		c.Count = count
	}
}
