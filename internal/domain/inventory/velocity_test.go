package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockalert-api/internal/domain/inventory"
)

// 10 unidades vendidas en 2 días distintos: promedio 5, con 15 disponibles
// el quiebre llega en ceil(15/5) = 3 días.
func TestSalesVelocity_DivideEntreDiasConVentas(t *testing.T) {
	v := inventory.SalesVelocity{TotalQuantity: 10, DaysWithSales: 2}

	assert.True(t, v.AverageDailySales().Equal(decimal.NewFromInt(5)))
	days := v.DaysUntilStockout(15)
	require.NotNil(t, days)
	assert.Equal(t, int64(3), *days)
}

func TestSalesVelocity_CeilExactoSinErrorDeRedondeo(t *testing.T) {
	// promedio 10/3; 10 / (10/3) = 3 exacto, nunca 4
	v := inventory.SalesVelocity{TotalQuantity: 10, DaysWithSales: 3}
	days := v.DaysUntilStockout(10)
	require.NotNil(t, days)
	assert.Equal(t, int64(3), *days)

	// 11 / (10/3) = 3.3 -> 4
	days = v.DaysUntilStockout(11)
	require.NotNil(t, days)
	assert.Equal(t, int64(4), *days)
}

func TestSalesVelocity_StockCeroYNegativo(t *testing.T) {
	v := inventory.SalesVelocity{TotalQuantity: 10, DaysWithSales: 2}

	days := v.DaysUntilStockout(0)
	require.NotNil(t, days)
	assert.Equal(t, int64(0), *days)

	// -3 / 5 = -0.6 -> ceil = 0
	days = v.DaysUntilStockout(-3)
	require.NotNil(t, days)
	assert.Equal(t, int64(0), *days)

	// -12 / 5 = -2.4 -> ceil = -2
	days = v.DaysUntilStockout(-12)
	require.NotNil(t, days)
	assert.Equal(t, int64(-2), *days)
}

func TestSalesVelocity_SinVentasDevuelveNil(t *testing.T) {
	var v inventory.SalesVelocity

	assert.Nil(t, v.DaysUntilStockout(5), "sin ventas el horizonte es desconocido, no cero")
	assert.True(t, v.AverageDailySales().IsZero())
}
