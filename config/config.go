package config

import "os"

// Config is the process runtime configuration, read once at startup.
type Config struct {
	Port              string
	OpenWeatherAPIKey string
}

// Load reads configuration from the environment, falling back to
// development defaults. The OpenWeather key has no default; the
// passthrough endpoint reports an error without it.
func Load() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
