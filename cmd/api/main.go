// @title        StockAlert API
// @version      1.0
// @description  Alertas de stock bajo por empresa: listado priorizado, resumen y reporte PDF.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/stockalert-api/docs"
	appinventory "github.com/jhoicas/stockalert-api/internal/application/inventory"
	infrapdf "github.com/jhoicas/stockalert-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/stockalert-api/internal/interfaces/http"
	"github.com/jhoicas/stockalert-api/internal/observability"
	"github.com/jhoicas/stockalert-api/pkg/config"
	"github.com/jhoicas/stockalert-api/pkg/logger"
)

// version se sobreescribe en el build con -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	if cfg.Store.Driver == config.StoreDriverMemory {
		log.Warn().Msg("STORE_DRIVER=memory: almacén vacío en proceso, solo para desarrollo")
	}

	metrics := observability.NewMetrics()
	alertUC := appinventory.NewLowStockAlertUseCase(appinventory.Deps{
		Repos: st.repos,
		Config: appinventory.Config{
			FetchTimeout:       cfg.Alerts.FetchTimeout,
			MaxParallelFetches: cfg.Alerts.MaxParallelFetches,
		},
		Logger:   log.Zerolog(),
		Observer: metrics,
		Renderer: infrapdf.NewLowStockReportGenerator(),
	})

	errs := httpRouter.NewErrorResponder(log.Zerolog(), cfg.App.IsProduction())
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errs.FiberErrorHandler(),
	})
	app.Use(recover.New())
	app.Use(httpRouter.SecurityHeaders(cfg.App.IsProduction()))
	app.Use(httpRouter.RequestLogger(log.Zerolog()))
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "StockAlert API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AlertUC:     alertUC,
		Errors:      errs,
		Metrics:     metrics,
		Health:      st.health,
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Env,
		Version:     version,
		StoreDriver: cfg.Store.Driver,
		JWTSecret:   cfg.JWT.Secret,
		RateLimit:   cfg.RateLimit.Requests,
		RateWindow:  cfg.RateLimit.Window,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := st.close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre del almacén")
	}

	log.Info().Msg("aplicación detenida")
}
