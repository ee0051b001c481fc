package app

import (
	"context"
	gameAPI "quantum_slots/internal/api/game"
	"quantum_slots/internal/catalog"
	"quantum_slots/internal/config"
	"quantum_slots/internal/config/env"
	"quantum_slots/internal/logger"
	"quantum_slots/internal/middleware"
	"quantum_slots/internal/repository"
	"quantum_slots/internal/repository/session_repo"
	"quantum_slots/internal/repository/settlement_feed_repo"
	"quantum_slots/internal/repository/settlement_repo"
	"quantum_slots/internal/repository/stats_repo"
	"quantum_slots/internal/service"
	"quantum_slots/internal/service/game"
	"quantum_slots/internal/service/session"
	"quantum_slots/internal/service/settlement"
	"quantum_slots/pkg/rng"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	logger *zap.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisCfg    config.RedisConfig
	redisClient redis.UniversalClient

	// Game bits
	gameCfg     config.GameConfig
	catalog     *catalog.Catalog
	sessionRepo repository.SessionRepository
	statsRepo   repository.StatsRepository
	gameServ    service.GameService
	gameHand    *gameAPI.Handler

	// Settlement bits
	settlementCfg  config.SettlementConfig
	settlementRepo repository.SettlementRepository
	settlementFeed repository.SettlementFeed
	settlementServ service.SettlementService

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

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(sp.LogCfg())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
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

// RedisCfg nil, если REDIS_ADDR не задан: расчеты тогда не публикуются
func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			sp.Logger().Warn("redis disabled", zap.Error(err))
			return nil
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) redis.UniversalClient {
	if sp.redisClient == nil {
		cfg := sp.RedisCfg()
		if cfg == nil {
			return nil
		}
		rdb := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{cfg.Addr()}})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfig()
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) Catalog() *catalog.Catalog {
	if sp.catalog == nil {
		c, err := catalog.Default().WithOverrides(sp.GameCfg().Rules().SymbolOverrides)
		if err != nil {
			panic("failed to build catalog: " + err.Error())
		}
		sp.catalog = c
	}
	return sp.catalog
}

func (sp *ServiceProvider) SessionRepository() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository()
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(0)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) SettlementCfg() config.SettlementConfig {
	if sp.settlementCfg == nil {
		cfg, err := env.NewSettlementConfig()
		if err != nil {
			panic("failed to get settlement config: " + err.Error())
		}
		sp.settlementCfg = cfg
	}
	return sp.settlementCfg
}

func (sp *ServiceProvider) SettlementRepository(ctx context.Context) repository.SettlementRepository {
	if sp.settlementRepo == nil {
		sp.settlementRepo = settlement_repo.NewSettlementRepository(sp.DBClient(ctx))
	}
	return sp.settlementRepo
}

func (sp *ServiceProvider) SettlementFeed(ctx context.Context) repository.SettlementFeed {
	if sp.settlementFeed == nil {
		rdb := sp.RedisClient(ctx)
		if rdb == nil {
			return nil
		}
		sp.settlementFeed = settlement_feed_repo.NewSettlementFeed(rdb, sp.RedisCfg().Channel())
	}
	return sp.settlementFeed
}

// SettlementService без SETTLEMENT_ENABLED база и redis не нужны
func (sp *ServiceProvider) SettlementService(ctx context.Context) service.SettlementService {
	if sp.settlementServ == nil {
		if !sp.SettlementCfg().Enabled() {
			sp.settlementServ = settlement.NewDisabledService()
			return sp.settlementServ
		}
		sp.settlementServ = settlement.NewSettlementService(
			sp.SettlementCfg(),
			sp.SettlementRepository(ctx),
			sp.SettlementFeed(ctx),
			sp.TXManager(ctx),
			sp.Logger().Named("settlement"),
		)
	}
	return sp.settlementServ
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		deps := game.Deps{
			Catalog: sp.Catalog(),
			Rules:   sp.GameCfg().Rules(),
			NewRNG:  rng.NewDefault,
		}
		sp.gameServ = session.NewGameService(
			deps,
			sp.SessionRepository(),
			sp.StatsRepository(),
			sp.SettlementService(ctx),
			sp.Logger().Named("game"),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv: sp.GameService(ctx),
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
		r.Use(middleware.Recoverer(sp.Logger()))
		r.Use(middleware.Logging(sp.Logger().Named("http")))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Game endpoints
		r.Route("/api", sp.GameHandler(ctx).Routes)

		sp.router = r
	}

	return sp.router
}

// Close освобождает внешние ресурсы
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.redisClient != nil {
		if err := sp.redisClient.Close(); err != nil {
			sp.Logger().Warn("close redis", zap.Error(err))
		}
	}
	if sp.logger != nil {
		_ = sp.logger.Sync()
	}
}
