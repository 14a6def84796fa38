package mongodb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/stockalert-api/internal/domain"
)

func boolPtr(b bool) *bool { return &b }

func field(t *testing.T, d bson.D, key string) any {
	t.Helper()
	for _, e := range d {
		if e.Key == key {
			return e.Value
		}
	}
	t.Fatalf("no existe la llave %q", key)
	return nil
}

func TestProductDoc_BanderaActiva(t *testing.T) {
	cases := []struct {
		name string
		doc  productDoc
		want bool
	}{
		{"is_active true", productDoc{IsActive: boolPtr(true), Status: "discontinued"}, true},
		{"is_active false gana sobre status", productDoc{IsActive: boolPtr(false), Status: "active"}, false},
		{"sin is_active, status active", productDoc{Status: "active"}, true},
		{"sin is_active, status discontinued", productDoc{Status: "discontinued"}, false},
		{"sin ninguno", productDoc{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.doc.toEntity().Active)
		})
	}
}

func TestObjectID_FormatoInvalido(t *testing.T) {
	_, err := objectID("0b6f2d3e-6a55-4a8e-9a61-0c3a7f1e2d01")
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	_, err = objectIDs([]string{primitive.NewObjectID().Hex(), "zz"})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	assert.True(t, ObjectIDValidator{}.ValidID("507f1f77bcf86cd799439011"))
	assert.False(t, ObjectIDValidator{}.ValidID("507f1f77"))
}

func TestDecimalFrom128(t *testing.T) {
	d128, err := primitive.ParseDecimal128("18500.50")
	require.NoError(t, err)

	got, err := decimalFrom128(d128)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("18500.5").Equal(got))

	zero, err := decimalFrom128(primitive.Decimal128{})
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}

func TestProductSupplierDoc_ToEntity(t *testing.T) {
	cost, _ := primitive.ParseDecimal128("12.75")
	doc := productSupplierDoc{ProductID: primitive.NewObjectID(), IsPrimary: true, LeadTimeDays: 4, UnitCost: cost}
	doc.Supplier.ID = primitive.NewObjectID()
	doc.Supplier.Name = "Acme"

	link, err := doc.toEntity()
	require.NoError(t, err)

	assert.Equal(t, doc.ProductID.Hex(), link.ProductID)
	assert.Equal(t, doc.Supplier.ID.Hex(), link.Supplier.ID)
	assert.Equal(t, 4, link.LeadTimeDays)
	assert.Equal(t, "12.75", link.UnitCost.String())
}

func TestVelocityPipeline_DiasEnUTC(t *testing.T) {
	start := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	pipeline := velocityPipeline([]primitive.ObjectID{primitive.NewObjectID()}, start, start.AddDate(0, 0, 7))
	require.Len(t, pipeline, 4)

	group := field(t, pipeline[1], "$group").(bson.D)
	addToSet := field(t, field(t, group, "days").(bson.D), "$addToSet").(bson.D)
	dateToString := field(t, addToSet, "$dateToString").(bson.D)
	assert.Equal(t, "UTC", field(t, dateToString, "timezone"))
	assert.Equal(t, "%Y-%m-%d", field(t, dateToString, "format"))
}

func TestSnapshotsPipeline_FiltraPorPares(t *testing.T) {
	p := pairID{ProductID: primitive.NewObjectID(), WarehouseID: primitive.NewObjectID()}
	pipeline := snapshotsPipeline([]pairID{p})

	// $match, ($lookup, $unwind) x2, $sort
	require.Len(t, pipeline, 6)
	match := pipeline[0][0]
	assert.Equal(t, "$match", match.Key)
	or := match.Value.(bson.D)[0]
	assert.Equal(t, "$or", or.Key)
	assert.Len(t, or.Value.(bson.A), 1)
}
