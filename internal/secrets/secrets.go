package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"jobscout-engine/internal/config"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "jobscout"

// Account names for provider credentials. Config/env values win when set;
// the keyring is the fallback so keys never have to live in a file.
const (
	AdzunaAppKeyAccount = "jobscout:adzuna:app_key"
	ReedAPIKeyAccount   = "jobscout:reed:api_key"
)

func IMAPAccount(cfg config.Config) string {
	return fmt.Sprintf("jobscout:imap:%s@%s", cfg.Email.Username, cfg.Email.IMAPHost)
}

func Get(account string) (string, error) {
	if strings.TrimSpace(account) == "" {
		return "", errors.New("keyring account name is empty")
	}
	v, err := keyring.Get(KeyringService, account)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(v) == "" {
		return "", errors.New("secret is empty")
	}
	return v, nil
}

func Set(account, value string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("secret is empty")
	}
	return keyring.Set(KeyringService, account, value)
}

func Delete(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}

// ResolveProviderKeys fills in any credentials missing from cfg with
// keyring values. Lookups are best-effort; a locked or absent keyring just
// leaves the field empty and the provider reports itself unconfigured.
func ResolveProviderKeys(cfg *config.Config) {
	if cfg.Providers.Adzuna.AppKey == "" {
		if v, err := Get(AdzunaAppKeyAccount); err == nil {
			cfg.Providers.Adzuna.AppKey = v
		}
	}
	if cfg.Providers.Reed.APIKey == "" {
		if v, err := Get(ReedAPIKeyAccount); err == nil {
			cfg.Providers.Reed.APIKey = v
		}
	}
}
