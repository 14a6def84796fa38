package inventory

import "github.com/shopspring/decimal"

// SalesVelocity ventas de un par en la ventana de velocidad.
// El divisor son los días con al menos una venta, no la longitud de la ventana.
type SalesVelocity struct {
	TotalQuantity int64
	DaysWithSales int
}

// AverageDailySales = TotalQuantity / DaysWithSales (cero si no hubo ventas).
func (v SalesVelocity) AverageDailySales() decimal.Decimal {
	if v.TotalQuantity <= 0 || v.DaysWithSales <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(v.TotalQuantity).Div(decimal.NewFromInt(int64(v.DaysWithSales)))
}

// DaysUntilStockout = ceil(available / promedio diario), nil si el promedio es cero.
// Se calcula como ceil(available * días / total) para no arrastrar error de redondeo.
func (v SalesVelocity) DaysUntilStockout(available int64) *int64 {
	if v.TotalQuantity <= 0 || v.DaysWithSales <= 0 {
		return nil
	}
	days := ceilDiv(available*int64(v.DaysWithSales), v.TotalQuantity)
	return &days
}

// ceilDiv divide redondeando hacia +infinito; b debe ser positivo.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
