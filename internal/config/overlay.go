package config

import (
	"os"
	"strconv"
)

// OverlayEnv applies environment overrides on top of the loaded file.
// Credentials usually arrive this way in container deployments; the file
// keeps working for desktop use.
func OverlayEnv(cfg *Config) {
	if v := os.Getenv("ADZUNA_APP_ID"); v != "" {
		cfg.Providers.Adzuna.AppID = v
	}
	if v := os.Getenv("ADZUNA_APP_KEY"); v != "" {
		cfg.Providers.Adzuna.AppKey = v
	}
	if v := os.Getenv("REED_API_KEY"); v != "" {
		cfg.Providers.Reed.APIKey = v
	}
	if v := os.Getenv("JOBSCOUT_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	}
}
