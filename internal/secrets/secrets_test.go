package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"jobscout-engine/internal/config"
)

func TestSetGetDelete(t *testing.T) {
	keyring.MockInit()

	require.NoError(t, Set(AdzunaAppKeyAccount, "adz-key"))
	v, err := Get(AdzunaAppKeyAccount)
	require.NoError(t, err)
	assert.Equal(t, "adz-key", v)

	require.NoError(t, Delete(AdzunaAppKeyAccount))
	_, err = Get(AdzunaAppKeyAccount)
	assert.Error(t, err)
}

func TestSetRejectsEmpty(t *testing.T) {
	keyring.MockInit()

	assert.Error(t, Set("", "value"))
	assert.Error(t, Set(AdzunaAppKeyAccount, "  "))
	_, err := Get("")
	assert.Error(t, err)
}

func TestIMAPAccount(t *testing.T) {
	var cfg config.Config
	cfg.Email.Username = "me@example.com"
	cfg.Email.IMAPHost = "imap.example.com"
	assert.Equal(t, "jobscout:imap:me@example.com@imap.example.com", IMAPAccount(cfg))
}

func TestResolveProviderKeys(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, Set(AdzunaAppKeyAccount, "kr-adzuna"))
	require.NoError(t, Set(ReedAPIKeyAccount, "kr-reed"))

	t.Run("fills empty fields", func(t *testing.T) {
		var cfg config.Config
		ResolveProviderKeys(&cfg)
		assert.Equal(t, "kr-adzuna", cfg.Providers.Adzuna.AppKey)
		assert.Equal(t, "kr-reed", cfg.Providers.Reed.APIKey)
	})

	t.Run("config values win", func(t *testing.T) {
		var cfg config.Config
		cfg.Providers.Adzuna.AppKey = "from-file"
		ResolveProviderKeys(&cfg)
		assert.Equal(t, "from-file", cfg.Providers.Adzuna.AppKey)
		assert.Equal(t, "kr-reed", cfg.Providers.Reed.APIKey)
	})
}
