package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockalert-api/internal/application/dto"
)

func sampleReport() *dto.LowStockAlertsResponse {
	days := int64(3)
	return &dto.LowStockAlertsResponse{
		Alerts: []dto.LowStockAlertDTO{
			{
				ProductName: "Camisa", SKU: "CM-01", WarehouseName: "Norte",
				CurrentStock: 15, Threshold: 25, DaysUntilStockout: &days,
				AverageDailySales: decimal.NewFromInt(5),
				Supplier:          dto.SupplierDTO{Name: "Textiles A"},
			},
			{
				ProductName: "Router", SKU: "RT-01", WarehouseName: "Central",
				CurrentStock: -2, Threshold: 10,
				Supplier: dto.SupplierDTO{Name: "No supplier assigned"},
			},
		},
		TotalAlerts:    2,
		LimitedAlerts:  2,
		CompanyName:    "Ferretería Andina",
		ThresholdsUsed: map[string]int{"electronics": 10, "clothing": 25, "food": 50, "default": 20},
		FiltersApplied: dto.FiltersAppliedDTO{CompanyID: "c1", Limit: 100, ThresholdOverride: "none"},
		GeneratedAt:    time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderLowStockReport_GeneraPDF(t *testing.T) {
	doc, err := NewLowStockReportGenerator().RenderLowStockReport(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestRenderLowStockReport_SinAlertas(t *testing.T) {
	report := sampleReport()
	report.Alerts = []dto.LowStockAlertDTO{}
	report.Message = "No products with recent sales activity found"

	doc, err := NewLowStockReportGenerator().RenderLowStockReport(context.Background(), report)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestFormatThresholds_OrdenAlfabetico(t *testing.T) {
	got := formatThresholds(map[string]int{"food": 50, "clothing": 25, "default": 20, "electronics": 10})
	assert.Equal(t, "clothing=25, default=20, electronics=10, food=50", got)
}

func TestFormatDays(t *testing.T) {
	n := int64(0)
	assert.Equal(t, "n/d", formatDays(nil))
	assert.Equal(t, "0", formatDays(&n))
}
