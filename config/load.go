package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const devSecret = "local_dev_secret"

// Load reads path when given, then the environment, which wins.
func Load(path string) (App, error) {
	var cfg App
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return App{}, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return App{}, err
	}
	return cfg, nil
}

// Usage describes every setting and its environment variable.
func Usage() string {
	help, err := cleanenv.GetDescription(&App{}, nil)
	if err != nil {
		return err.Error()
	}
	return help
}

func (a App) validate() error {
	switch a.StoreDriver {
	case "mongo", "memory":
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", a.StoreDriver)
	}
	if a.SessionSecret == "" {
		return errors.New("config: SESSION_SECRET is empty")
	}
	if a.IsProduction() && a.SessionSecret == devSecret {
		return errors.New("config: SESSION_SECRET must be set in production")
	}
	if a.SessionTTL <= 0 {
		return errors.New("config: SESSION_TTL must be positive")
	}
	return nil
}
