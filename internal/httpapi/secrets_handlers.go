package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/secrets"
)

// SecretsHandler stores provider credentials in the OS keyring so they
// never land in the config file.
type SecretsHandler struct {
	CfgVal *atomic.Value // config.Config
}

type secretBody struct {
	Value string `json:"value"`
}

func (h SecretsHandler) SetAdzunaKey(w http.ResponseWriter, r *http.Request) {
	h.set(w, r, secrets.AdzunaAppKeyAccount)
}

func (h SecretsHandler) SetReedKey(w http.ResponseWriter, r *http.Request) {
	h.set(w, r, secrets.ReedAPIKeyAccount)
}

func (h SecretsHandler) SetIMAPPassword(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	h.set(w, r, secrets.IMAPAccount(cfg))
}

func (h SecretsHandler) set(w http.ResponseWriter, r *http.Request, account string) {
	var body secretBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if err := secrets.Set(account, body.Value); err != nil {
		WriteError(w, r, http.StatusBadRequest, "keyring_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}
