package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/winter3671/TakeMeTrip/internal/adapters/api"
	"github.com/winter3671/TakeMeTrip/internal/adapters/navigator"
	itineraryadapter "github.com/winter3671/TakeMeTrip/internal/adapters/render/itinerary"
	tomlrepo "github.com/winter3671/TakeMeTrip/internal/adapters/repo/toml"
	chainstore "github.com/winter3671/TakeMeTrip/internal/adapters/secrets/chain"
	"github.com/winter3671/TakeMeTrip/internal/application"
	"github.com/winter3671/TakeMeTrip/internal/config"
	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/logger"
	"github.com/winter3671/TakeMeTrip/internal/session"
	"github.com/winter3671/TakeMeTrip/internal/version"
	"golang.org/x/time/rate"
)

type app struct {
	settings          config.Settings
	logger            zerolog.Logger
	nav               *navigator.Terminal
	session           *session.Controller
	planner           *application.Planner
	community         *application.CommunityService
	catalog           *application.CatalogService
	itineraryRenderer func(domain.Draft, itineraryadapter.RenderOptions) (string, error)
	prompter          prompter
	now               func() time.Time
}

type wireOptions struct {
	Debug  bool
	Output io.Writer
}

func (a *app) wire(ctx context.Context, opts wireOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	settings, err := config.Resolve(cfg)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	log := logger.Setup(opts.Output, opts.Debug || settings.Debug)
	nav := navigator.NewTerminal(opts.Output)

	client := &api.Client{
		BaseURL:        settings.APIBaseURL,
		HTTPClient:     &http.Client{Timeout: settings.APITimeout},
		CatalogClient:  api.NewCachingHTTPClient(settings.CacheDir, settings.APITimeout),
		RequestTimeout: settings.APITimeout,
		Limiter:        newLimiter(settings.RateLimit),
		UserAgent:      "tmt/" + version.Version,
		Logger:         log,
	}

	secretStore, err := chainstore.Open(settings.SecretsBackend, settings.SecretsDir)
	if err != nil {
		return fmt.Errorf("wire secret store: %w", err)
	}

	controller := session.NewController(client, nav,
		session.WithSecretStore(secretStore),
		session.WithLogger(log),
	)
	if err := controller.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("restore session, continuing signed out")
	}

	drafts, err := tomlrepo.NewDraftRepository(cfg)
	if err != nil {
		return fmt.Errorf("wire draft repository: %w", err)
	}

	*a = app{
		settings:          settings,
		logger:            log,
		nav:               nav,
		session:           controller,
		planner:           application.NewPlanner(controller, client, drafts, nav, application.WithPlannerLogger(log)),
		community:         application.NewCommunityService(controller, client, nav, log),
		catalog:           application.NewCatalogService(client),
		itineraryRenderer: itineraryadapter.Render,
		prompter:          newPrompter(),
		now:               time.Now,
	}

	return nil
}

func newLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}

	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}

	return rate.NewLimiter(rate.Limit(perSecond), burst)
}
