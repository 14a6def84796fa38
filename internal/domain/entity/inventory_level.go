package entity

import "time"

// PairKey identifica un par (producto, bodega). Se usa como clave de los mapas
// de búsqueda que viven durante una sola petición.
type PairKey struct {
	ProductID   string
	WarehouseID string
}

// InventoryLevel representa el stock actual de un producto en una bodega.
type InventoryLevel struct {
	ProductID        string
	WarehouseID      string
	Quantity         int64
	ReservedQuantity int64
	UpdatedAt        time.Time
}

// Key devuelve el par (producto, bodega) del registro.
func (l InventoryLevel) Key() PairKey {
	return PairKey{ProductID: l.ProductID, WarehouseID: l.WarehouseID}
}

// AvailableStock es Quantity - ReservedQuantity sin recorte: puede ser negativo
// si lo reservado supera lo disponible en bodega.
func (l InventoryLevel) AvailableStock() int64 {
	return l.Quantity - l.ReservedQuantity
}

// InventorySnapshot es una fila de inventario ya unida con su producto y su bodega.
type InventorySnapshot struct {
	Level     InventoryLevel
	Product   Product
	Warehouse Warehouse
}
