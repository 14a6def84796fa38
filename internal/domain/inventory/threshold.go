package inventory

import (
	"strings"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
)

// categoryRule asocia palabras clave (subcadenas en minúscula) con una clave de la tabla de umbrales.
type categoryRule struct {
	key      string
	keywords []string
}

// categoryRules se evalúan en orden y gana la primera coincidencia:
// "Electronics Accessories" es electrónica aunque también contenga otra palabra clave.
var categoryRules = []categoryRule{
	{key: entity.CategoryElectronics, keywords: []string{"electronic", "tech"}},
	{key: entity.CategoryClothing, keywords: []string{"clothing", "apparel", "fashion"}},
	{key: entity.CategoryFood, keywords: []string{"food", "grocery", "beverage"}},
}

// CategoryKey clasifica la categoría libre de un producto en una clave de la tabla.
// Una categoría vacía o sin coincidencias cae en entity.CategoryDefault.
func CategoryKey(category string) string {
	c := strings.ToLower(category)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(c, kw) {
				return rule.key
			}
		}
	}
	return entity.CategoryDefault
}

// ThresholdTable umbrales efectivos por clave de categoría; siempre contiene las cuatro claves.
type ThresholdTable map[string]int

// NewThresholdTable completa la tabla de la empresa. Sin tabla se usan los valores
// por defecto del sistema; una clave ausente toma el "default" de la empresa.
func NewThresholdTable(company map[string]int) ThresholdTable {
	builtin := entity.DefaultLowStockThresholds()
	if len(company) == 0 {
		return ThresholdTable(builtin)
	}

	def, ok := company[entity.CategoryDefault]
	if !ok {
		def = builtin[entity.CategoryDefault]
	}
	table := ThresholdTable{entity.CategoryDefault: def}
	for _, key := range []string{entity.CategoryElectronics, entity.CategoryClothing, entity.CategoryFood} {
		if v, ok := company[key]; ok {
			table[key] = v
		} else {
			table[key] = def
		}
	}
	return table
}

// Resolve devuelve el umbral para la categoría. Si override no es nil reemplaza
// el valor resuelto sin importar la categoría.
func (t ThresholdTable) Resolve(category string, override *int) int {
	if override != nil {
		return *override
	}
	if v, ok := t[CategoryKey(category)]; ok {
		return v
	}
	return t[entity.CategoryDefault]
}
