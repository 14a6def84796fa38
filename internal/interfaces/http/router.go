package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appinventory "github.com/jhoicas/stockalert-api/internal/application/inventory"
	"github.com/jhoicas/stockalert-api/internal/observability"
	"github.com/jhoicas/stockalert-api/pkg/jwt"
)

// HealthChecker verifica la conexión con el almacén.
type HealthChecker func(ctx context.Context) error

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AlertUC     *appinventory.LowStockAlertUseCase
	Errors      *ErrorResponder
	Metrics     *observability.Metrics
	Health      HealthChecker
	ServiceName string
	Environment string
	Version     string
	StoreDriver string
	// JWTSecret vacío deja las rutas de alertas sin autenticación.
	JWTSecret  string
	RateLimit  int
	RateWindow time.Duration
}

// AlertReaderRoles roles que pueden consultar alertas cuando hay autenticación.
var AlertReaderRoles = []string{jwt.RoleAdmin, jwt.RoleWarehouse, jwt.RoleSeller}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps))
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")
	if deps.RateLimit > 0 && deps.RateWindow > 0 {
		api.Use(RateLimit(deps.RateLimit, deps.RateWindow))
	}

	companyAlerts := api.Group("/companies/:company_id/alerts")
	if deps.JWTSecret != "" {
		companyAlerts.Use(
			AuthMiddleware(deps.JWTSecret),
			RequireRole(AlertReaderRoles...),
			RequireCompanyAccess("company_id"),
		)
	}

	alertHandler := NewAlertHandler(deps.AlertUC, deps.Errors)
	companyAlerts.Get("/low-stock", alertHandler.LowStock)
	companyAlerts.Get("/low-stock/summary", alertHandler.Summary)
	companyAlerts.Get("/low-stock/report.pdf", alertHandler.Report)
}

// healthHandler godoc
// @Summary  Estado del servicio
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Failure  503  {object}  map[string]interface{}
// @Router   /health [get]
func healthHandler(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		connected := true
		if deps.Health != nil {
			ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
			defer cancel()
			connected = deps.Health(ctx) == nil
		}
		status, database, code := "ok", "connected", fiber.StatusOK
		if !connected {
			status, database, code = "degraded", "disconnected", fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":      status,
			"service":     deps.ServiceName,
			"environment": deps.Environment,
			"version":     deps.Version,
			"store":       deps.StoreDriver,
			"database":    database,
			"timestamp":   time.Now().UTC(),
		})
	}
}
