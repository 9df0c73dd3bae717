package httpapi

import (
	"net/http"
	"sync/atomic"
	"time"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/secrets"
)

type HealthHandler struct {
	CfgVal *atomic.Value // config.Config
}

// Health reports which providers have credentials so a caller can tell an
// empty result set apart from a misconfigured deployment. The keyring is
// consulted on a throwaway copy; resolved keys never reach the live config.
func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	secrets.ResolveProviderKeys(&cfg)
	writeJSON(w, map[string]any{
		"status":            "healthy",
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
		"adzuna_configured": adzunaConfigured(cfg),
		"reed_configured":   reedConfigured(cfg),
		"email_configured":  cfg.Email.Enabled,
	})
}

func adzunaConfigured(cfg config.Config) bool {
	a := cfg.Providers.Adzuna
	return a.Enabled && a.AppID != "" && a.AppKey != ""
}

func reedConfigured(cfg config.Config) bool {
	return cfg.Providers.Reed.Enabled && cfg.Providers.Reed.APIKey != ""
}
