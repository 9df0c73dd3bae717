package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	var cfg Config
	cfg.App.Port = 8000
	cfg.App.DataDir = "/tmp/jobscout"
	cfg.Search.DefaultLocation = "london"
	cfg.Search.DefaultMaxResults = 50
	cfg.Search.FetchTimeoutSeconds = 30
	cfg.Search.DescriptionMaxChars = 500
	cfg.Match.Threshold = 0.6
	cfg.Match.FillerWords = []string{"junior", "senior"}
	cfg.Providers.Adzuna.Enabled = true
	cfg.Providers.Adzuna.Country = "gb"
	cfg.Providers.Reed.Enabled = true
	cfg.Limits.HostReqPerSec = 1
	cfg.Limits.HostBurst = 2
	return cfg
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  port: 9001
search:
  default_location: leeds
  default_max_results: 25
match:
  threshold: 0.7
  filler_words: [junior, senior]
providers:
  adzuna:
    enabled: true
    country: gb
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9001, cfg.App.Port)
	assert.Equal(t, "leeds", cfg.Search.DefaultLocation)
	assert.Equal(t, 25, cfg.Search.DefaultMaxResults)
	assert.Equal(t, 0.7, cfg.Match.Threshold)
	assert.Equal(t, []string{"junior", "senior"}, cfg.Match.FillerWords)
	assert.True(t, cfg.Providers.Adzuna.Enabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestNormalizeAndValidateOK(t *testing.T) {
	out, res := NormalizeAndValidate(validConfig())
	assert.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Equal(t, "gb", out.Providers.Adzuna.Country)
}

func TestNormalizeTrimsAndDedupesLists(t *testing.T) {
	cfg := validConfig()
	cfg.Match.FillerWords = []string{" junior ", "", "Junior", "senior"}
	cfg.Email.SearchSubjectAny = []string{"Job Alert", " job alert ", "new jobs"}

	out, _ := NormalizeAndValidate(cfg)
	assert.Equal(t, []string{"junior", "senior"}, out.Match.FillerWords)
	assert.Equal(t, []string{"Job Alert", "new jobs"}, out.Email.SearchSubjectAny)
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"bad port", func(c *Config) { c.App.Port = 0 }, "app.port"},
		{"bad max results", func(c *Config) { c.Search.DefaultMaxResults = 500 }, "default_max_results"},
		{"bad timeout", func(c *Config) { c.Search.FetchTimeoutSeconds = 0 }, "fetch_timeout_seconds"},
		{"threshold above one", func(c *Config) { c.Match.Threshold = 1.2 }, "match.threshold"},
		{"threshold zero", func(c *Config) { c.Match.Threshold = 0 }, "match.threshold"},
		{"adzuna without country", func(c *Config) { c.Providers.Adzuna.Country = "" }, "adzuna.country"},
		{"email without host", func(c *Config) { c.Email.Enabled = true; c.Email.IMAPPort = 993; c.Email.Username = "u"; c.Email.Mailbox = "INBOX" }, "imap_host"},
		{"bad rate limit", func(c *Config) { c.Limits.HostReqPerSec = 0 }, "host_req_per_sec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			_, res := NormalizeAndValidate(cfg)
			require.False(t, res.OK())
			assert.Contains(t, strings.Join(res.Errors, "\n"), tt.errSub)
		})
	}
}

func TestValidationWarnings(t *testing.T) {
	cfg := validConfig()
	cfg.Match.FillerWords = nil
	cfg.Providers.Adzuna.Enabled = false
	cfg.Providers.Reed.Enabled = false

	_, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK(), "warnings must not block")
	assert.NotEmpty(t, res.Warnings)
}

func TestSaveAtomicRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	cfg := validConfig()
	require.NoError(t, SaveAtomic(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.App.Port, loaded.App.Port)
	assert.Equal(t, cfg.Match.Threshold, loaded.Match.Threshold)
	assert.Equal(t, cfg.Match.FillerWords, loaded.Match.FillerWords)
	assert.Equal(t, cfg.Providers.Adzuna.Country, loaded.Providers.Adzuna.Country)

	// second save writes a backup of the first
	cfg.App.Port = 9999
	require.NoError(t, SaveAtomic(path, cfg))
	_, err = os.Stat(path + ".bak")
	assert.NoError(t, err)

	loaded, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9999, loaded.App.Port)
}

func TestEnsureUserConfig(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "default.yml")
	require.NoError(t, os.WriteFile(src, []byte("app:\n  port: 8000\n"), 0o644))

	dataDir := filepath.Join(dir, "data")
	path, err := EnsureUserConfig(dataDir, src)
	require.NoError(t, err)
	assert.FileExists(t, path)

	// editing the user copy survives a second call
	require.NoError(t, os.WriteFile(path, []byte("app:\n  port: 9000\n"), 0o644))
	again, err := EnsureUserConfig(dataDir, src)
	require.NoError(t, err)
	assert.Equal(t, path, again)

	cfg, err := Load(again)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.App.Port)
}
