package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the deployment configuration of the screening record service.
// Values in the YAML file may reference environment variables; they are
// expanded before parsing.
type Config struct {
	MongoDB struct {
		URI              string `yaml:"uri"`
		Database         string `yaml:"database"`
		PersonCollection string `yaml:"person_collection"`
	} `yaml:"mongodb"`
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
		// Timezone is the IANA zone used to compute dateUpdated values.
		Timezone string `yaml:"timezone"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigin string `yaml:"allowed_origin"`
	} `yaml:"cors"`
}

// LoadConfig reads and parses the configuration file at the given path.
func LoadConfig(filePath string) (*Config, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	expanded := os.ExpandEnv(string(file))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filePath, err)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.MongoDB.URI == "" {
		c.MongoDB.URI = "mongodb://127.0.0.1:27017"
	}
	if c.MongoDB.Database == "" {
		c.MongoDB.Database = "personsDB"
	}
	if c.MongoDB.PersonCollection == "" {
		c.MongoDB.PersonCollection = "persons"
	}
	if c.Server.Port == "" {
		c.Server.Port = "3000"
	}
	if c.Server.Timezone == "" {
		c.Server.Timezone = "UTC"
	}
	if c.Log.Level == "" {
		c.Log.Level = "INFO"
	}
	if c.CORS.AllowedOrigin == "" {
		c.CORS.AllowedOrigin = "*"
	}
}
