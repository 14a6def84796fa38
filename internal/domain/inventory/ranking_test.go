package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockalert-api/internal/domain/inventory"
)

func days(n int64) *int64 { return &n }

func ids(alerts []inventory.Alert) []string {
	out := make([]string, len(alerts))
	for i, a := range alerts {
		out[i] = a.ProductID
	}
	return out
}

func TestRankAlerts_ConHorizonteAntesQueNil(t *testing.T) {
	alerts := []inventory.Alert{
		{ProductID: "sin-ventas", AvailableStock: 0, Threshold: 10},
		{ProductID: "cinco-dias", AvailableStock: 9, Threshold: 10, DaysUntilStockout: days(5)},
		{ProductID: "un-dia", AvailableStock: 9, Threshold: 10, DaysUntilStockout: days(1)},
	}

	inventory.RankAlerts(alerts)

	assert.Equal(t, []string{"un-dia", "cinco-dias", "sin-ventas"}, ids(alerts),
		"nil va al final aunque su proporción sea la menor")
}

func TestRankAlerts_EmpateDeDiasUsaProporcion(t *testing.T) {
	alerts := []inventory.Alert{
		{ProductID: "b", AvailableStock: 8, Threshold: 10, DaysUntilStockout: days(2)},
		{ProductID: "a", AvailableStock: 2, Threshold: 10, DaysUntilStockout: days(2)},
		{ProductID: "n2", AvailableStock: 5, Threshold: 10},
		{ProductID: "n1", AvailableStock: 1, Threshold: 10},
	}

	inventory.RankAlerts(alerts)

	assert.Equal(t, []string{"a", "b", "n1", "n2"}, ids(alerts))
}

func TestRankAlerts_EstableEnEmpatesCompletos(t *testing.T) {
	alerts := []inventory.Alert{
		{ProductID: "primero", AvailableStock: 5, Threshold: 10},
		{ProductID: "segundo", AvailableStock: 10, Threshold: 20},
		{ProductID: "tercero", AvailableStock: 5, Threshold: 10},
	}

	inventory.RankAlerts(alerts)
	first := ids(alerts)
	inventory.RankAlerts(alerts)

	assert.Equal(t, []string{"primero", "segundo", "tercero"}, first)
	assert.Equal(t, first, ids(alerts), "ordenar dos veces produce la misma lista")
}

func TestStockRatio_UmbralCero(t *testing.T) {
	assert.Equal(t, 0.0, inventory.StockRatio(0, 0))
	assert.True(t, math.IsInf(inventory.StockRatio(-1, 0), -1))
	assert.True(t, math.IsInf(inventory.StockRatio(1, 0), 1))
	assert.Equal(t, 0.3, inventory.StockRatio(3, 10))
}

func TestApplyLimit(t *testing.T) {
	alerts := make([]inventory.Alert, 7)

	assert.Len(t, inventory.ApplyLimit(alerts, 5), 5)
	assert.Len(t, inventory.ApplyLimit(alerts, 100), 7)
}

func TestValidLimit(t *testing.T) {
	assert.True(t, inventory.ValidLimit(1))
	assert.True(t, inventory.ValidLimit(1000))
	assert.False(t, inventory.ValidLimit(0))
	assert.False(t, inventory.ValidLimit(5000), "5000 se rechaza, no se recorta a 1000")
}
