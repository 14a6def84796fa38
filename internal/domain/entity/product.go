package entity

// Product representa un producto o SKU del inventario.
// Active es la única bandera de actividad; los adaptadores traducen
// representaciones heredadas (status = "active") a este campo.
type Product struct {
	ID       string
	SKU      string
	Name     string
	Category string // texto libre, se compara sin distinguir mayúsculas
	IsBundle bool
	Active   bool
}
