package main

import (
	"errors"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Brokers       []string `env:"KAFKA_BROKERS" env-default:"kafka:9092"`
	Topics        []string `env:"KAFKA_TOPICS" env-default:"assignment-events,submission-events,assignment-reminders"`
	GroupID       string   `env:"KAFKA_GROUP_ID" env-default:"portal-notifier"`
	LogProduction bool     `env:"LOG_PRODUCTION" env-default:"true"`
}

// loadConfig reads path as a .env file, falling back to the process
// environment when the file does not exist.
func loadConfig(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return nil, err
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}
