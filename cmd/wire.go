package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/3-14mpa/AITO/internal/adapters/history/sqlite"
	"github.com/3-14mpa/AITO/internal/adapters/llm/gemini"
	reportadapter "github.com/3-14mpa/AITO/internal/adapters/render/report"
	"github.com/3-14mpa/AITO/internal/adapters/render/transcript"
	tomlrepo "github.com/3-14mpa/AITO/internal/adapters/repo/toml"
	yamlrepo "github.com/3-14mpa/AITO/internal/adapters/repo/yaml"
	chainstore "github.com/3-14mpa/AITO/internal/adapters/secrets/chain"
	"github.com/3-14mpa/AITO/internal/application"
	"github.com/3-14mpa/AITO/internal/config"
	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app holds the process configuration. Adapters that touch files or the
// network are opened on first use so init, auth and version work before the
// persona file exists.
type app struct {
	viper          *viper.Viper
	cfg            config.Config
	logger         *zap.Logger
	secretStore    ports.SecretStore
	clock          ports.Clock
	reportRenderer func(application.ReflectionReport, reportadapter.RenderOptions) (string, error)

	mu      sync.Mutex
	store   *sqlite.Store
	catalog *tomlrepo.Catalog
	llm     *gemini.Client
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v := config.New(homeDir)
	cfg, err := config.Load(v, homeDir)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	secretStore := chainstore.NewDefault(cfg.SecretsDir, map[string][]string{
		cfg.Gemini.APIKeyRef: {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	})

	return &app{
		viper:          v,
		cfg:            cfg,
		logger:         zap.NewNop(),
		secretStore:    secretStore,
		clock:          ports.SystemClock{},
		reportRenderer: reportadapter.Render,
	}, nil
}

func (a *app) personaRepository() (*tomlrepo.Repository, error) {
	repo, err := tomlrepo.NewRepository(a.viper)
	if err != nil {
		return nil, fmt.Errorf("wire persona repository: %w", err)
	}
	return repo, nil
}

func (a *app) personas(ctx context.Context) (*tomlrepo.Catalog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog != nil {
		return a.catalog, nil
	}

	repo, err := a.personaRepository()
	if err != nil {
		return nil, err
	}
	catalog, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load personas: %w", err)
	}

	a.catalog = catalog
	return catalog, nil
}

func (a *app) history(ctx context.Context) (*sqlite.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.store != nil {
		return a.store, nil
	}

	store, err := sqlite.Open(ctx, a.cfg.HistoryPath)
	if err != nil {
		return nil, fmt.Errorf("open conversation history: %w", err)
	}

	a.store = store
	return store, nil
}

func (a *app) generator() *gemini.Client {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.llm == nil {
		a.llm = gemini.New(gemini.Config{
			Backend:   a.cfg.Gemini.Backend,
			Project:   a.cfg.Gemini.Project,
			Location:  a.cfg.Gemini.Location,
			APIKeyRef: a.cfg.Gemini.APIKeyRef,
			Timeout:   a.cfg.Gemini.Timeout,
			BaseURL:   a.cfg.Gemini.BaseURL,
		}, a.secretStore, gemini.WithLogger(a.logger))
	}
	return a.llm
}

func (a *app) memorySearch(ctx context.Context) (*application.MemorySearchTool, error) {
	store, err := a.history(ctx)
	if err != nil {
		return nil, err
	}
	return application.NewMemorySearchTool(store, store, a.cfg.UserID), nil
}

func (a *app) reflectionService(ctx context.Context) (*application.ReflectionService, error) {
	store, err := a.history(ctx)
	if err != nil {
		return nil, err
	}

	constitution, err := yamlrepo.LoadConstitution(ctx, a.cfg.ConstitutionPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		a.logger.Warn("constitution file missing, validated insights will be rejected",
			zap.String("path", a.cfg.ConstitutionPath),
		)
		constitution = yamlrepo.EmptyConstitution()
	case err != nil:
		return nil, fmt.Errorf("load constitution: %w", err)
	}

	llm := a.generator()
	models := a.cfg.Models
	logger := application.WithLogger(a.logger)

	return application.NewReflectionService(
		application.NewDailyContextBuilder(store, a.clock, domain.DefaultReactorSet(), logger),
		application.NewAnalysisPanel(llm.Model(models.Factual), llm.Model(models.Thematic), llm.Model(models.Insight)),
		application.NewArbiter(llm.Model(models.Arbiter), logger),
		application.NewRiskValidator(constitution, llm.Model(models.Judge), logger),
		logger,
	), nil
}

func (a *app) meetingOrchestrator(ctx context.Context, out io.Writer, overrides application.MeetingConfig) (*application.MeetingOrchestrator, error) {
	catalog, err := a.personas(ctx)
	if err != nil {
		return nil, err
	}
	store, err := a.history(ctx)
	if err != nil {
		return nil, err
	}
	memory, err := a.memorySearch(ctx)
	if err != nil {
		return nil, err
	}
	tools, err := application.NewToolRegistry(memory)
	if err != nil {
		return nil, fmt.Errorf("wire tools: %w", err)
	}

	cfg := application.MeetingConfig{
		Participants:      a.cfg.Meeting.Participants,
		MaxRounds:         a.cfg.Meeting.MaxRounds,
		MaxToolIterations: a.cfg.Meeting.MaxToolIterations,
		Prompts:           catalog.Prompts(),
	}
	if len(overrides.Participants) > 0 {
		cfg.Participants = overrides.Participants
	}
	if overrides.MaxRounds > 0 {
		cfg.MaxRounds = overrides.MaxRounds
	}

	return application.NewMeetingOrchestrator(
		catalog,
		a.generator(),
		store,
		transcript.NewPublisher(out),
		tools,
		a.clock,
		cfg,
		application.WithLogger(a.logger),
	), nil
}

func (a *app) close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
		a.store = nil
	}
	return errors.Join(errs...)
}
