package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type AdzunaConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Country string `yaml:"country" json:"country"` // ISO country code in the API path, e.g. "gb"
	AppID   string `yaml:"app_id" json:"app_id"`
	AppKey  string `yaml:"app_key" json:"app_key"`
}

type ReedConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	APIKey  string `yaml:"api_key" json:"api_key"`
}

type EmailConfig struct {
	Enabled          bool     `yaml:"enabled" json:"enabled"`
	IMAPHost         string   `yaml:"imap_host" json:"imap_host"`
	IMAPPort         int      `yaml:"imap_port" json:"imap_port"`
	Username         string   `yaml:"username" json:"username"`
	Mailbox          string   `yaml:"mailbox" json:"mailbox"`
	SearchSubjectAny []string `yaml:"search_subject_any" json:"search_subject_any"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Search struct {
		DefaultLocation     string `yaml:"default_location" json:"default_location"`
		DefaultMaxResults   int    `yaml:"default_max_results" json:"default_max_results"`
		FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds" json:"fetch_timeout_seconds"`
		DescriptionMaxChars int    `yaml:"description_max_chars" json:"description_max_chars"`
	} `yaml:"search" json:"search"`

	// Match drives the deduplicator. The filler-word list is deliberately
	// config, not code: it decides which title words count, so it has to be
	// visible and tunable without touching matcher logic.
	Match struct {
		Threshold   float64  `yaml:"threshold" json:"threshold"`
		FillerWords []string `yaml:"filler_words" json:"filler_words"`
	} `yaml:"match" json:"match"`

	Providers struct {
		Adzuna AdzunaConfig `yaml:"adzuna" json:"adzuna"`
		Reed   ReedConfig   `yaml:"reed" json:"reed"`
	} `yaml:"providers" json:"providers"`

	Email EmailConfig `yaml:"email" json:"email"`

	Limits struct {
		HostReqPerSec float64 `yaml:"host_req_per_sec" json:"host_req_per_sec"`
		HostBurst     int     `yaml:"host_burst" json:"host_burst"`
	} `yaml:"limits" json:"limits"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
