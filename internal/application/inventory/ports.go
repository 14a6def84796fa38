package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/stockalert-api/internal/application/dto"
	"github.com/jhoicas/stockalert-api/internal/domain/repository"
)

// Ventanas de agregación sobre el registro de ventas, en días hacia atrás desde "ahora".
const (
	RecencyWindowDays  = 30
	VelocityWindowDays = 7
)

// Mensajes de los resultados vacíos (respuesta 200 sin alertas).
const (
	MsgNoActiveWarehouses = "No active warehouses found for this company"
	MsgNoRecentSales      = "No products with recent sales activity found"
)

// Repositories agrupa los puertos de lectura que consume el motor de alertas.
type Repositories struct {
	IDs        repository.IDValidator
	Companies  repository.CompanyRepository
	Warehouses repository.WarehouseRepository
	Sales      repository.SalesActivityRepository
	Inventory  repository.InventoryLevelRepository
	Suppliers  repository.SupplierRepository
}

// Config límites operativos de la fase de lectura.
type Config struct {
	// FetchTimeout acota todas las consultas de una petición; cero = sin límite propio.
	FetchTimeout time.Duration
	// MaxParallelFetches consultas concurrentes por petición (mínimo 1).
	MaxParallelFetches int
}

// PipelineObserver recibe la duración y el resultado de cada ejecución del motor.
// La implementación vive en internal/observability.
type PipelineObserver interface {
	ObservePipeline(operation string, elapsed time.Duration, alerts int, err error)
}

// ReportRenderer genera el documento descargable del listado de alertas.
type ReportRenderer interface {
	RenderLowStockReport(ctx context.Context, report *dto.LowStockAlertsResponse) ([]byte, error)
}
