package inventory

import (
	"math"
	"sort"
)

// Límites del parámetro limit de la consulta de alertas.
const (
	DefaultAlertLimit = 100
	MinAlertLimit     = 1
	MaxAlertLimit     = 1000
)

// StockRatio available/threshold usado como clave secundaria de urgencia.
// Con umbral cero: 0 si no hay stock, -Inf si es negativo, +Inf si es positivo.
func StockRatio(available int64, threshold int) float64 {
	if threshold == 0 {
		switch {
		case available < 0:
			return math.Inf(-1)
		case available > 0:
			return math.Inf(1)
		default:
			return 0
		}
	}
	return float64(available) / float64(threshold)
}

// moreUrgent orden total de urgencia:
//  1. con horizonte conocido antes que sin horizonte (nil siempre al final);
//  2. ambos conocidos: menos días primero;
//  3. empate o ambos nil: menor proporción stock/umbral primero.
func moreUrgent(a, b *Alert) bool {
	aKnown, bKnown := a.DaysUntilStockout != nil, b.DaysUntilStockout != nil
	if aKnown != bKnown {
		return aKnown
	}
	if aKnown && *a.DaysUntilStockout != *b.DaysUntilStockout {
		return *a.DaysUntilStockout < *b.DaysUntilStockout
	}
	return StockRatio(a.AvailableStock, a.Threshold) < StockRatio(b.AvailableStock, b.Threshold)
}

// RankAlerts ordena in situ por urgencia. El orden es estable: empates completos
// conservan el orden de entrada.
func RankAlerts(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return moreUrgent(&alerts[i], &alerts[j])
	})
}

// ApplyLimit recorta la lista ya ordenada. limit debe venir validado en [1, 1000].
func ApplyLimit(alerts []Alert, limit int) []Alert {
	if limit < len(alerts) {
		return alerts[:limit]
	}
	return alerts
}

// ValidLimit indica si limit está en el rango aceptado; fuera de rango es un error
// de validación, nunca se recorta en silencio.
func ValidLimit(limit int) bool {
	return limit >= MinAlertLimit && limit <= MaxAlertLimit
}
