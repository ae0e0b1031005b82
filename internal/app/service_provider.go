package app

import (
	"context"
	"errors"
	"lucky_spinner/internal/animation"
	"lucky_spinner/internal/api/middleware"
	spinnerAPI "lucky_spinner/internal/api/spinner"
	"lucky_spinner/internal/audio"
	"lucky_spinner/internal/config"
	"lucky_spinner/internal/config/env"
	"lucky_spinner/internal/repository"
	"lucky_spinner/internal/repository/memory_repo"
	"lucky_spinner/internal/repository/pg_repo"
	"lucky_spinner/internal/repository/redis_repo"
	"lucky_spinner/internal/repository/sqlite_repo"
	"lucky_spinner/internal/service"
	"lucky_spinner/internal/service/spinner"
	"lucky_spinner/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const defaultWheelConfigPath = "config.yaml"

// Options то, что приходит из флагов CLI; пустые значения берутся из окружения
type Options struct {
	ConfigPath string
	Driver     string
	DSN        string

	// Scheduler и Logger подменяются в тестах
	Scheduler animation.Scheduler
	Logger    *zap.Logger
}

type ServiceProvider struct {
	opts Options

	// Logging
	logCfg config.LogConfig
	logger *zap.Logger

	//TXManager
	txManager trm.Manager

	// Storage
	storageCfg config.StorageConfig
	pgConfig   config.PGConfig
	dbClient   *pgxpool.Pool
	redisCfg   config.RedisConfig
	stateRepo  repository.StateRepository

	// Wheel bits
	wheelCfg    config.WheelConfig
	scheduler   animation.Scheduler
	spinSound   audio.Player
	winSound    audio.Player
	spinnerServ service.SpinnerService
	spinnerHand *spinnerAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func NewServiceProvider(opts Options) *ServiceProvider {
	return &ServiceProvider{opts: opts}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		if sp.opts.Logger != nil {
			sp.logger = sp.opts.Logger
		} else {
			cfg := sp.LogCfg()
			sp.logger = logger.New(logger.Config{
				Level: cfg.Level(),
				App:   cfg.App(),
				Dir:   cfg.Dir(),
				File:  cfg.File(),
			})
		}
	}
	return sp.logger
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfigWith(sp.opts.Driver, sp.opts.DSN)
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		dsn := sp.StorageCfg().DSN()
		if dsn == "" {
			panic("failed to get database config: empty dsn")
		}
		sp.pgConfig = env.NewPGConfigWith(dsn)
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			dbc.Close()
			panic("failed to ping db: " + err.Error())
		}
		err = pg_repo.CreateSchema(ctx, dbc)
		if err != nil {
			dbc.Close()
			panic(err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig(sp.StorageCfg().DSN())
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

// StateRepository хранилище выбирается драйвером из флагов или STORAGE_DRIVER
func (sp *ServiceProvider) StateRepository(ctx context.Context) repository.StateRepository {
	if sp.stateRepo == nil {
		cfg := sp.StorageCfg()
		switch cfg.Driver() {
		case env.DriverPostgres:
			sp.stateRepo = pg_repo.NewStateRepository(sp.DBClient(ctx), sp.TXManager(ctx))
		case env.DriverRedis:
			rdb, err := redis_repo.NewRedisClient(ctx, sp.RedisCfg())
			if err != nil {
				panic("failed to connect to redis: " + err.Error())
			}
			sp.stateRepo = redis_repo.NewStateRepository(rdb)
		case env.DriverMemory:
			sp.stateRepo = memory_repo.NewMemoryRepository()
		default:
			store, err := sqlite_repo.Open(cfg.DSN())
			if err != nil {
				panic("failed to open sqlite storage: " + err.Error())
			}
			sp.stateRepo = store
		}
		sp.Logger().Debug("storage ready", zap.String("driver", cfg.Driver()))
	}
	return sp.stateRepo
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		path := sp.opts.ConfigPath
		if path == "" {
			path = defaultWheelConfigPath
		}
		cfg, err := env.NewWheelConfigFromYAML(path)
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) Scheduler() animation.Scheduler {
	if sp.scheduler == nil {
		if sp.opts.Scheduler != nil {
			sp.scheduler = sp.opts.Scheduler
		} else {
			sp.scheduler = animation.NewTicker(sp.WheelCfg().FrameInterval())
		}
	}
	return sp.scheduler
}

func (sp *ServiceProvider) SpinSound() audio.Player {
	if sp.spinSound == nil {
		sp.spinSound = audio.NewLogPlayer(audio.SpinCue, sp.Logger())
	}
	return sp.spinSound
}

func (sp *ServiceProvider) WinSound() audio.Player {
	if sp.winSound == nil {
		sp.winSound = audio.NewLogPlayer(audio.ClapCue, sp.Logger())
	}
	return sp.winSound
}

// SpinnerService при первом обращении читает сохранённое состояние
func (sp *ServiceProvider) SpinnerService(ctx context.Context) service.SpinnerService {
	if sp.spinnerServ == nil {
		serv := spinner.NewSpinnerService(spinner.Deps{
			Config:    sp.WheelCfg(),
			Repo:      sp.StateRepository(ctx),
			Scheduler: sp.Scheduler(),
			SpinSound: sp.SpinSound(),
			WinSound:  sp.WinSound(),
			Logger:    sp.Logger().Named("spinner"),
		})
		if err := serv.Load(ctx); err != nil {
			panic("failed to load state: " + err.Error())
		}
		sp.spinnerServ = serv
	}
	return sp.spinnerServ
}

func (sp *ServiceProvider) SpinnerHandler(ctx context.Context) *spinnerAPI.Handler {
	if sp.spinnerHand == nil {
		sp.spinnerHand = spinnerAPI.NewHandler(spinnerAPI.HandlerDeps{
			Serv:   sp.SpinnerService(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.spinnerHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chiMiddleware.RequestID)
		r.Use(chiMiddleware.Recoverer)
		r.Use(middleware.Logging(sp.Logger().Named("http")))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		h := sp.SpinnerHandler(ctx)

		r.Get("/health", h.Health)
		r.Handle("/metrics", promhttp.Handler())

		// Option registry
		r.Route("/options", func(rr chi.Router) {
			rr.Get("/", h.ListOptions)
			rr.Post("/", h.AddOption)
			rr.Delete("/", h.ClearOptions)
			rr.Post("/sort", h.SortOptions)
			rr.Post("/shuffle", h.ShuffleOptions)
			rr.Put("/{id}", h.UpdateOption)
			rr.Delete("/{id}", h.RemoveOption)
		})

		// Wheel
		r.Post("/spin", h.Spin)
		r.Route("/wheel", func(rr chi.Router) {
			rr.Get("/", h.Wheel)
			rr.Post("/reset", h.ResetWheel)
			rr.Post("/dismiss", h.DismissWinner)
		})

		// History, import/export, theme
		r.Get("/results", h.Results)
		r.Delete("/results", h.ClearResults)
		r.Get("/export", h.Export)
		r.Post("/import", h.Import)
		r.Get("/theme", h.Theme)
		r.Put("/theme", h.SetTheme)

		sp.router = r
	}

	return sp.router
}

// Close останавливает анимацию и освобождает хранилище и звуки
func (sp *ServiceProvider) Close() error {
	var errs []error
	if sp.spinnerServ != nil {
		errs = append(errs, sp.spinnerServ.Close())
	}
	if t, ok := sp.scheduler.(*animation.Ticker); ok {
		errs = append(errs, t.Close())
	}
	if sp.spinSound != nil {
		errs = append(errs, sp.spinSound.Close())
	}
	if sp.winSound != nil {
		errs = append(errs, sp.winSound.Close())
	}
	if sp.stateRepo != nil {
		errs = append(errs, sp.stateRepo.Close())
	}
	if sp.logger != nil && sp.opts.Logger == nil {
		_ = sp.logger.Sync()
	}
	return errors.Join(errs...)
}
