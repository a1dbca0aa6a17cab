package app

import (
	gameAPI "board_backend/internal/api/game"
	"board_backend/internal/config"
	"board_backend/internal/config/env"
	"board_backend/internal/middleware"
	"board_backend/internal/repository"
	"board_backend/internal/repository/game_repo"
	"board_backend/internal/repository/memory_repo"
	"board_backend/internal/repository/sqlite_repo"
	"board_backend/internal/repository/stats_repo"
	"board_backend/internal/service"
	"board_backend/internal/service/game"
	"context"
	"os"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	gameConfigPath = "config.yaml"
	requestTimeout = 60 * time.Second
)

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	logger *zerolog.Logger

	//TXManager
	txManager trm.Manager

	// Database
	storageCfg config.StorageConfig
	pgConfig   config.PGConfig
	dbClient   *pgxpool.Pool
	sqliteCfg  config.SQLiteConfig
	sqliteRepo *sqlite_repo.Repo

	// Game bits
	gameCfg   config.GameConfig
	gameRepo  repository.GameRepository
	statsRepo repository.StatsRepository
	gameServ  service.GameService
	gameHand  *gameAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zerolog.Logger {
	if sp.logger == nil {
		cfg := sp.LogCfg()
		zerolog.SetGlobalLevel(cfg.Level())

		var logger zerolog.Logger
		if cfg.Console() {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		} else {
			logger = zerolog.New(os.Stdout)
		}
		logger = logger.With().Timestamp().Logger()
		sp.logger = &logger
	}
	return sp.logger
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
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
			panic("failed to ping db: " + err.Error())
		}
		err = game_repo.Migrate(ctx, dbc)
		if err != nil {
			panic("failed to migrate db: " + err.Error())
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

// Transactor Для Postgres - менеджер транзакций, для остальных хранилищ - прямой вызов
func (sp *ServiceProvider) Transactor(ctx context.Context) game.Transactor {
	if sp.StorageCfg().Driver() == config.StoragePostgres {
		return sp.TXManager(ctx)
	}
	return game.NewDirectTransactor()
}

func (sp *ServiceProvider) SQLiteCfg() config.SQLiteConfig {
	if sp.sqliteCfg == nil {
		cfg, err := env.NewSQLiteConfig()
		if err != nil {
			panic("failed to get sqlite config: " + err.Error())
		}
		sp.sqliteCfg = cfg
	}
	return sp.sqliteCfg
}

func (sp *ServiceProvider) SQLiteRepository(ctx context.Context) *sqlite_repo.Repo {
	if sp.sqliteRepo == nil {
		r, err := sqlite_repo.NewSQLiteRepository(ctx, sp.SQLiteCfg().Path())
		if err != nil {
			panic("failed to open sqlite: " + err.Error())
		}
		sp.sqliteRepo = r
	}
	return sp.sqliteRepo
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(gameConfigPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) GameRepository(ctx context.Context) repository.GameRepository {
	if sp.gameRepo == nil {
		switch sp.StorageCfg().Driver() {
		case config.StoragePostgres:
			sp.gameRepo = game_repo.NewGameRepository(sp.DBClient(ctx))
		case config.StorageSQLite:
			sp.gameRepo = sp.SQLiteRepository(ctx)
		default:
			sp.gameRepo = memory_repo.NewMemoryRepository()
		}
		sp.Logger().Info().Str("driver", sp.StorageCfg().Driver()).Msg("storage ready")
	}
	return sp.gameRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.GameCfg().StatsWindow())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(game.ServiceDeps{
			Cfg:       sp.GameCfg(),
			Repo:      sp.GameRepository(ctx),
			StatsRepo: sp.StatsRepository(),
			TxManager: sp.Transactor(ctx),
			SessionID: sp.StorageCfg().SessionID(),
			Logger:    sp.Logger(),
		})
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv: sp.GameService(ctx),
			Cfg:  sp.GameCfg(),
		})
	}
	return sp.gameHand
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

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.RequestLogger(*sp.Logger()))
		r.Use(chimw.Recoverer)
		r.Use(chimw.Timeout(requestTimeout))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		gameHandler := sp.GameHandler(ctx)
		r.Get("/health", gameHandler.Health)
		r.Get("/dice", gameHandler.Dice)

		// Game endpoints
		r.Route("/game", func(rr chi.Router) {
			rr.Post("/bet", gameHandler.PlaceBet)
			rr.Post("/reset", gameHandler.Reset)
			rr.Get("/board", gameHandler.Board)
			rr.Get("/state", gameHandler.State)
		})

		// Stats endpoints
		r.Route("/stats", func(rr chi.Router) {
			rr.Get("/", gameHandler.Stats)
			rr.Get("/rounds", gameHandler.Rounds)
		})

		sp.router = r
	}

	return sp.router
}

// Close Освобождает соединения с базами
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.sqliteRepo != nil {
		if err := sp.sqliteRepo.Close(); err != nil {
			sp.Logger().Error().Err(err).Msg("failed to close sqlite")
		}
	}
}
