package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	Client     Client `yaml:"client"`
	HTTPServer `yaml:"http_server"`
}

type Client struct {
	BaseURL     string        `yaml:"base_url" env-default:"http://localhost:8082"`
	Token       string        `yaml:"token" env:"REMOTE_TOKEN" env-required:"true"`
	Timeout     time.Duration `yaml:"timeout" env-default:"30s"`
	StartOffset time.Duration `yaml:"start_offset" env-default:"24h"`
	Duration    time.Duration `yaml:"duration" env-default:"5h"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8082"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
