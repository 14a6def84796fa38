package inventory

import "sort"

// IsCritical una alerta es crítica si no queda stock o si está en o por debajo
// del 20% del umbral (redondeado hacia arriba).
func IsCritical(available int64, threshold int) bool {
	if available == 0 {
		return true
	}
	return available <= ceilDiv(int64(threshold), 5)
}

// CountEntry conteo acumulado por clave (nombre de bodega o categoría).
type CountEntry struct {
	Key   string
	Count int
}

// OrderedCounter acumula conteos recordando el orden en que apareció cada clave.
type OrderedCounter struct {
	index   map[string]int
	entries []CountEntry
}

// NewOrderedCounter construye un contador vacío.
func NewOrderedCounter() *OrderedCounter {
	return &OrderedCounter{index: make(map[string]int)}
}

// Inc suma uno a la clave.
func (c *OrderedCounter) Inc(key string) {
	if i, ok := c.index[key]; ok {
		c.entries[i].Count++
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, CountEntry{Key: key, Count: 1})
}

// Sorted devuelve una copia ordenada por conteo descendente; los empates
// quedan en el orden de primera aparición.
func (c *OrderedCounter) Sorted() []CountEntry {
	out := make([]CountEntry, len(c.entries))
	copy(out, c.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
