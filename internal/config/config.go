package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogOutput string  `yaml:"log-output" env:"TICTACTOE_LOG_OUTPUT" env-default:"stderr"`
	Players   Players `yaml:"players"`
	Console   Console `yaml:"console"`
}

// Players holds the default names offered when the console asks for them.
type Players struct {
	FirstName  string `yaml:"first-name" env:"TICTACTOE_FIRST_NAME" env-default:"Player 1"`
	SecondName string `yaml:"second-name" env:"TICTACTOE_SECOND_NAME" env-default:"Player 2"`
}

type Console struct {
	NoColor bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
	XColor  string `yaml:"x-color" env-default:"#E06C75"`
	OColor  string `yaml:"o-color" env-default:"#61AFEF"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yaml file at path, environment variables take precedence.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
