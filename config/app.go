package config

import "time"

type App struct {
	Port          string        `yaml:"port" env:"APP_PORT" env-default:"8080" env-description:"HTTP listen port"`
	Env           string        `yaml:"env" env:"APP_ENV" env-default:"development" env-description:"development or production"`
	StoreDriver   string        `yaml:"store_driver" env:"STORE_DRIVER" env-default:"mongo" env-description:"mongo or memory"`
	MongoURI      string        `yaml:"mongo_uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017" env-description:"MongoDB connection string"`
	MongoDB       string        `yaml:"mongo_db" env:"MONGO_DB" env-default:"local_library" env-description:"MongoDB database name"`
	SessionSecret string        `yaml:"session_secret" env:"SESSION_SECRET" env-default:"local_dev_secret" env-description:"HMAC key for session cookies"`
	SessionTTL    time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"24h" env-description:"session lifetime"`
	CookieSecure  bool          `yaml:"cookie_secure" env:"COOKIE_SECURE" env-default:"false" env-description:"mark cookies Secure"`
}

func (a App) IsProduction() bool { return a.Env == "production" }
