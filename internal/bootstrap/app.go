package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"lifespan-backend/internal/calculations"
	"lifespan-backend/internal/lifecalc"
	"lifespan-backend/internal/lifespan"
	"lifespan-backend/internal/services/health"
	"lifespan-backend/internal/shared/auth"
	"lifespan-backend/internal/shared/config"
	"lifespan-backend/internal/shared/metrics"
	"lifespan-backend/internal/shared/server"
	"lifespan-backend/internal/shared/server/middleware"
	"lifespan-backend/internal/shared/storage/db"
	"lifespan-backend/internal/shared/telemetry"
)

// App holds shared dependencies and the configured router.
type App struct {
	Config              config.Config
	Router              *gin.Engine
	DB                  *sql.DB
	Baseline            lifecalc.BaselineTable
	Engine              *lifecalc.CachedEngine
	CalculationsRepo    calculations.Repo
	CalculationsService *calculations.Service
	CalculationsHandler *calculations.Handler
	LifespanHandler     *lifespan.Handler
	Health              *health.Service
}

// Build prepares every dependency and wires the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	auth.SetSecret(cfg.JWTSecret)

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	baseline, err := buildBaseline(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		DB:       sqlDB,
		Baseline: baseline,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              app.Config,
		Health:              app.Health,
		LifespanHandler:     app.LifespanHandler,
		CalculationsHandler: app.CalculationsHandler,
		Limiter:             middleware.NewRateLimiter(nil),
	})
	return app, nil
}

// Close releases the database pool if one was opened.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.db_disabled", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			_ = sqlDB.Close()
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Error("bootstrap.db_fallback", map[string]any{"err": err})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildBaseline(cfg config.Config) (lifecalc.BaselineTable, error) {
	path := strings.TrimSpace(cfg.BaselineTablePath)
	if path == "" {
		return lifecalc.DefaultBaselineTable(), nil
	}
	table, err := lifecalc.LoadBaselineTable(path)
	if err != nil {
		return lifecalc.BaselineTable{}, err
	}
	telemetry.Info("bootstrap.baseline_loaded", map[string]any{
		"path":      path,
		"countries": len(table.Countries),
	})
	return table, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.CalculationsRepo = &calculations.PGRepo{DB: app.DB}
	} else {
		app.CalculationsRepo = calculations.NewMemoryRepo()
	}

	engine := lifecalc.NewCachedEngine(
		lifecalc.NewEngine(lifecalc.WithBaselineTable(app.Baseline)),
		app.Config.CalcCacheSize,
	)
	engine.Observe = metrics.IncCacheLookup
	app.Engine = engine

	app.CalculationsService = calculations.NewService(app.CalculationsRepo, engine)
	app.CalculationsHandler = calculations.NewHandler(app.CalculationsService)
	app.LifespanHandler = lifespan.NewHandler(app.CalculationsService, app.Baseline)
	app.Health = health.NewService(app.DB)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}
