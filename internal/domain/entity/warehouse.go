package entity

// Warehouse representa una bodega o sucursal donde se almacena inventario (multi-bodega).
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Location  string
	Address   string
	Active    bool
}
