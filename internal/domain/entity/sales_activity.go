package entity

import "time"

// SalesActivity es un evento de venta inmutable; solo se usa como entrada de agregaciones.
type SalesActivity struct {
	ID           string
	ProductID    string
	WarehouseID  string
	QuantitySold int64
	SaleDate     time.Time
}

// Key devuelve el par (producto, bodega) de la venta.
func (s SalesActivity) Key() PairKey {
	return PairKey{ProductID: s.ProductID, WarehouseID: s.WarehouseID}
}
