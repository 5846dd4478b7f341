package config

import (
	"os"

	"blindpoker/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for blindpoker
type Config struct {
	loaded bool

	Log struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	}

	Simulation struct {
		Games int   `yaml:"games" envconfig:"games"`
		Seed  int64 `yaml:"seed" envconfig:"seed"`
	}

	Rules struct {
		HandSize      int   `yaml:"handSize" envconfig:"hand_size"`
		HandsPerRound int   `yaml:"handsPerRound" envconfig:"hands_per_round"`
		DrawsPerRound int   `yaml:"drawsPerRound" envconfig:"draws_per_round"`
		MaxSelected   int   `yaml:"maxSelected" envconfig:"max_selected"`
		Blinds        []int `yaml:"blinds" envconfig:"blinds"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the environment alone may configure everything
func Load() error {
	config = Config{}
	config.Simulation.Games = 100

	configFile := util.Getenv("BLINDPOKER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("blindpoker", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
