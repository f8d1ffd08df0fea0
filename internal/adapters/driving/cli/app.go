package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsmd/internal/adapters/driven/auth"
	"github.com/custodia-labs/docsmd/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docsmd/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsmd/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docsmd/internal/connectors/google"
	"github.com/custodia-labs/docsmd/internal/connectors/google/docs"
	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/core/ports/driven"
	"github.com/custodia-labs/docsmd/internal/core/ports/driving"
	"github.com/custodia-labs/docsmd/internal/core/services"
	"github.com/custodia-labs/docsmd/internal/logger"
	"github.com/custodia-labs/docsmd/internal/normalisers"
	"github.com/custodia-labs/docsmd/internal/normalisers/gdocs"
)

// EnvAccessToken names an environment variable holding a ready OAuth
// access token. It takes precedence over the stored session.
const EnvAccessToken = "DOCSMD_ACCESS_TOKEN"

// app holds the wired services shared by commands.
type app struct {
	config  driven.ConfigStore
	session *auth.Session
	fetcher driven.DocumentFetcher
	export  driving.ExportService
	closers []func() error
}

// appOptions are the flag values that shape wiring.
type appOptions struct {
	configDir string
	noLedger  bool
	token     string
}

// newApp builds the application. Tests replace it.
var newApp = defaultApp

var current *app

// getApp returns the application, building it on first use.
func getApp(cmd *cobra.Command) (*app, error) {
	if current != nil {
		return current, nil
	}

	a, err := newApp(cmd.Context(), appOptions{
		configDir: configDir,
		noLedger:  exportNoLedger,
		token:     os.Getenv(EnvAccessToken),
	})
	if err != nil {
		return nil, err
	}
	current = a
	return a, nil
}

func closeApp() {
	if current == nil {
		return
	}
	for _, c := range current.closers {
		if err := c(); err != nil {
			logger.Warn("closing: %v", err)
		}
	}
	current = nil
}

func defaultApp(ctx context.Context, opts appOptions) (*app, error) {
	dir := opts.configDir
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	cfg, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	session := auth.NewSession(
		cfg.GetString(domain.ConfigGoogleClientID),
		cfg.GetString(domain.ConfigGoogleClientSecret),
		auth.NewTokenFile(dir),
	)

	a := &app{config: cfg, session: session}

	var provider driven.TokenProvider
	switch {
	case opts.token != "":
		logger.Debug("using access token from %s", EnvAccessToken)
		provider = auth.NewStaticTokenProvider(opts.token)
	case session.IsAuthenticated():
		provider = session
	}

	if provider != nil {
		fetchCfg := docs.DefaultConfig()
		fetchCfg.DocsRequestsPerSecond = cfg.GetFloat(domain.ConfigDocsRPS)

		fetcher, err := docs.Connect(ctx, google.NewTokenSource(ctx, provider), fetchCfg)
		if err != nil {
			return nil, err
		}
		a.fetcher = fetcher
	}

	var store driven.ExportStore
	if opts.noLedger {
		store = memory.NewExportStore()
	} else {
		db, err := sqlite.NewStore(filepath.Join(dir, "data"))
		if err != nil {
			return nil, fmt.Errorf("opening export ledger: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		store = db.ExportStore()
	}

	registry := normalisers.NewRegistry(gdocs.New())
	a.export = services.NewExportService(registry, a.fetcher, store)

	return a, nil
}
