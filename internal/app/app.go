package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"taskBoard/internal/config"
	"taskBoard/internal/handlers"
	"taskBoard/internal/logger"
	"taskBoard/internal/middleware"
	"taskBoard/internal/repository/task/inmemory"
	"taskBoard/internal/repository/task/postgres"
	"taskBoard/internal/repository/task/sqlite"
	"taskBoard/internal/seed"
	"taskBoard/internal/service"
	"taskBoard/internal/worker"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config     *config.Config
	server     *http.Server
	router     *chi.Mux
	repository service.TaskRepository
	service    *service.TaskService
	sweeper    *worker.BoardSweeper
	shutdowns  []func()
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

// Init wires logger, storage, service, router and sweeper from the config.
func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("App: flushing logs")
		logger.Sync()
	})

	if err := a.initRepository(ctx); err != nil {
		return err
	}

	a.service = service.NewTaskService(a.repository)
	a.initRouter()

	a.server = &http.Server{
		Addr:         a.config.GetServerAddr(),
		Handler:      a.router,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	if a.config.Worker.Enabled {
		interval := a.config.Worker.Interval
		a.sweeper = worker.NewBoardSweeper(a.repository, &interval)
	}

	logger.Info("App: initialized",
		zap.String("repository", a.config.Repository.Type),
		zap.String("addr", a.server.Addr),
		zap.Bool("sweeper", a.sweeper != nil))
	return nil
}

func (a *App) initRepository(ctx context.Context) error {
	switch a.config.Repository.Type {
	case config.RepositoryPostgres:
		if err := postgres.Migrate(a.config.Database.URL); err != nil {
			return fmt.Errorf("migrate postgres: %w", err)
		}
		storage, err := postgres.New(ctx, a.config.Database.URL, postgres.Options{
			MaxConns:        a.config.Database.MaxConnections,
			MinConns:        a.config.Database.MinConnections,
			MaxConnIdleTime: a.config.Database.IdleTimeout,
		})
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		a.repository = storage
		a.shutdowns = append(a.shutdowns, func() {
			logger.Info("App: closing PostgreSQL pool")
			storage.Close()
		})

	case config.RepositorySQLite:
		storage, err := sqlite.New(ctx, a.config.SQLite.Path)
		if err != nil {
			return fmt.Errorf("open sqlite: %w", err)
		}
		a.repository = storage
		a.shutdowns = append(a.shutdowns, func() {
			logger.Info("App: closing SQLite database")
			if err := storage.Close(); err != nil {
				logger.Warn("App: failed to close SQLite", zap.Error(err))
			}
		})

	case config.RepositoryInMemory:
		a.repository = inmemory.NewTaskStorage()

	default:
		return fmt.Errorf("unknown repository type %q", a.config.Repository.Type)
	}
	return nil
}

func (a *App) initRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.config.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.Timeout(a.config.Server.RequestTimeout))
	r.Use(middleware.RateLimit(a.config.Server.RateLimit))

	handlers.NewTaskHandler(a.service).Routes(r)
	a.router = r
}

func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) Service() *service.TaskService {
	return a.service
}

// Seed fills an empty store from the configured seed file, or from the
// built in board when no file is configured.
func (a *App) Seed(ctx context.Context) (int, error) {
	inputs := seed.Default()
	if path := a.config.Seed.File; path != "" {
		loaded, err := seed.NewOsLoader().Load(path)
		if err != nil {
			return 0, err
		}
		inputs = loaded
	}

	n, err := a.service.Seed(ctx, inputs)
	if err != nil {
		return n, err
	}
	logger.Info("App: seed finished", zap.Int("inserted", n))
	return n, nil
}

// Run serves HTTP and runs the sweeper until ctx is done or one of them
// fails, then shuts the server down gracefully and releases resources.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("App: server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	if a.sweeper != nil {
		g.Go(func() error {
			a.sweeper.Start(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("App: shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close runs the registered shutdown hooks in reverse order.
func (a *App) Close() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	a.shutdowns = nil
}
