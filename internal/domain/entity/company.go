package entity

// Claves de la tabla de umbrales por categoría.
const (
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryFood        = "food"
	CategoryDefault     = "default"
)

// DefaultLowStockThresholds umbrales usados cuando la empresa no tiene tabla propia.
func DefaultLowStockThresholds() map[string]int {
	return map[string]int{
		CategoryElectronics: 10,
		CategoryClothing:    25,
		CategoryFood:        50,
		CategoryDefault:     20,
	}
}

// Company representa una organización/tenant del sistema.
// LowStockThresholds puede venir nil o incompleta; ver inventory.ThresholdTable.
type Company struct {
	ID                 string
	Name               string
	LowStockThresholds map[string]int
}
