package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"

	"jobscout-engine/internal/config"
	internalhttp "jobscout-engine/internal/http"
	"jobscout-engine/internal/http/handlers"
	"jobscout-engine/internal/httpapi"
	"jobscout-engine/internal/match"
	"jobscout-engine/internal/provider"
	"jobscout-engine/internal/provider/adzuna"
	"jobscout-engine/internal/provider/email"
	"jobscout-engine/internal/provider/reed"
	"jobscout-engine/internal/provider/util"
	"jobscout-engine/internal/search"
	"jobscout-engine/internal/secrets"
)

func main() {
	// Engine data dir: use env if provided, else local folder.
	dataDir := os.Getenv("JOBSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; a second instance would fight over the
	// user config file.
	lock := flock.New(filepath.Join(dataDir, "jobscout.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock: %v", err)
	}
	if !locked {
		log.Fatalf("another engine is already running for %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	loadCfg := func() (config.Config, error) {
		return loadConfig(userCfgPath)
	}

	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}

	var cfgVal atomic.Value // stores config.Config
	cfgVal.Store(cfg)

	searcher := liveSearcher{cfgVal: &cfgVal}

	apiMux := httpapi.NewMux(httpapi.Deps{
		Agg:         searcher,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})
	root := internalhttp.Routes(handlers.Handlers{Agg: searcher}, apiMux)
	handler := httpapi.Chain(root,
		httpapi.RequestID,
		httpapi.AccessLog,
		httpapi.Recover,
		httpapi.Cors,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	if err := internalhttp.Serve(ctx, addr, handler); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// loadConfig reads, overlays, and validates the user config. Keyring
// credentials are deliberately not resolved here: the result is stored in
// the live config that GET /config echoes and PUT /config saves back to
// disk, and secrets must never travel either path.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	config.OverlayEnv(&cfg)

	cfg, vr := config.NormalizeAndValidate(cfg)
	for _, warn := range vr.Warnings {
		log.Printf("[config] warning: %s", warn)
	}
	if !vr.OK() {
		return cfg, fmt.Errorf("config invalid: %v", vr.Errors)
	}
	return cfg, nil
}

// liveSearcher rebuilds the fetch pipeline from the live config on every
// search, so a PUT /config (new filler words, new credentials) applies to
// the next request. Everything request-scoped is cheap to construct.
type liveSearcher struct {
	cfgVal *atomic.Value
}

func (s liveSearcher) Search(ctx context.Context, p search.Params) (search.Result, error) {
	cfg := s.cfgVal.Load().(config.Config)
	return buildAggregator(cfg).Search(ctx, p)
}

// buildAggregator wires fetchers in fixed priority order: adzuna, reed,
// email. Disabled providers simply don't participate.
func buildAggregator(cfg config.Config) *search.Aggregator {
	// cfg is a copy: keyring credentials resolved here live only as long as
	// the fetchers built from them, never in the shared config value.
	secrets.ResolveProviderKeys(&cfg)

	limiter := util.NewHostLimiter(cfg.Limits.HostReqPerSec, cfg.Limits.HostBurst)

	var fetchers []provider.Fetcher
	if cfg.Providers.Adzuna.Enabled {
		fetchers = append(fetchers, adzuna.New(adzuna.Config{
			AppID:               cfg.Providers.Adzuna.AppID,
			AppKey:              cfg.Providers.Adzuna.AppKey,
			Country:             cfg.Providers.Adzuna.Country,
			DescriptionMaxChars: cfg.Search.DescriptionMaxChars,
		}, limiter))
	}
	if cfg.Providers.Reed.Enabled {
		fetchers = append(fetchers, reed.New(reed.Config{
			APIKey:              cfg.Providers.Reed.APIKey,
			DescriptionMaxChars: cfg.Search.DescriptionMaxChars,
		}, limiter))
	}
	if cfg.Email.Enabled {
		fetchers = append(fetchers, email.New(email.Config{
			Host:       cfg.Email.IMAPHost,
			Port:       cfg.Email.IMAPPort,
			Username:   cfg.Email.Username,
			Mailbox:    cfg.Email.Mailbox,
			SubjectAny: cfg.Email.SearchSubjectAny,
			Password: func() (string, error) {
				return secrets.Get(secrets.IMAPAccount(cfg))
			},
		}))
	}

	norm := match.NewNormalizer(cfg.Match.FillerWords)
	matcher := match.NewMatcher(norm, cfg.Match.Threshold)
	timeout := time.Duration(cfg.Search.FetchTimeoutSeconds) * time.Second

	return search.NewAggregator(fetchers, matcher, timeout)
}
