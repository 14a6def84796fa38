package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockalert-api/internal/domain/inventory"
)

func TestIsCritical(t *testing.T) {
	assert.True(t, inventory.IsCritical(0, 10), "sin stock siempre es crítico")
	assert.True(t, inventory.IsCritical(2, 10), "2 <= ceil(10*0.2)")
	assert.False(t, inventory.IsCritical(3, 10))
	assert.True(t, inventory.IsCritical(3, 15), "ceil(15*0.2) = 3")
	assert.False(t, inventory.IsCritical(4, 15))
	assert.True(t, inventory.IsCritical(1, 1), "ceil(0.2) = 1")
	assert.True(t, inventory.IsCritical(-4, 20))
	assert.True(t, inventory.IsCritical(0, 0))
}

func TestOrderedCounter_EmpatesEnOrdenDeAparicion(t *testing.T) {
	c := inventory.NewOrderedCounter()
	for _, k := range []string{"norte", "sur", "centro", "sur", "centro", "este"} {
		c.Inc(k)
	}

	assert.Equal(t, []inventory.CountEntry{
		{Key: "sur", Count: 2},
		{Key: "centro", Count: 2},
		{Key: "norte", Count: 1},
		{Key: "este", Count: 1},
	}, c.Sorted())
}
