package mongodb

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/stockalert-api/internal/domain"
	"github.com/jhoicas/stockalert-api/internal/domain/entity"
	"github.com/jhoicas/stockalert-api/internal/domain/repository"
)

// ObjectIDValidator valida ids hexadecimales de 24 caracteres.
type ObjectIDValidator struct{}

var _ repository.IDValidator = ObjectIDValidator{}

// ValidID indica si id es un ObjectID.
func (ObjectIDValidator) ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// objectID convierte un id; un formato inválido es domain.ErrInvalidReference.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidReference, id)
	}
	return oid, nil
}

func objectIDs(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := objectID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}

type companyDoc struct {
	ID       primitive.ObjectID `bson:"_id"`
	Name     string             `bson:"name"`
	Settings struct {
		LowStockThresholds map[string]int `bson:"low_stock_thresholds"`
	} `bson:"settings"`
}

func (d companyDoc) toEntity() *entity.Company {
	return &entity.Company{
		ID:                 d.ID.Hex(),
		Name:               d.Name,
		LowStockThresholds: d.Settings.LowStockThresholds,
	}
}

type warehouseDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	CompanyID primitive.ObjectID `bson:"company_id"`
	Name      string             `bson:"name"`
	Location  string             `bson:"location"`
	Address   string             `bson:"address"`
	IsActive  *bool              `bson:"is_active"`
}

func (d warehouseDoc) toEntity() entity.Warehouse {
	return entity.Warehouse{
		ID:        d.ID.Hex(),
		CompanyID: d.CompanyID.Hex(),
		Name:      d.Name,
		Location:  d.Location,
		Address:   d.Address,
		Active:    d.IsActive == nil || *d.IsActive,
	}
}

// productDoc admite las dos versiones del esquema: is_active (bool) o status ("active", "discontinued").
type productDoc struct {
	ID       primitive.ObjectID `bson:"_id"`
	SKU      string             `bson:"sku"`
	Name     string             `bson:"name"`
	Category string             `bson:"category"`
	IsBundle bool               `bson:"is_bundle"`
	IsActive *bool              `bson:"is_active"`
	Status   string             `bson:"status"`
}

func (d productDoc) toEntity() entity.Product {
	active := d.Status == "active"
	if d.IsActive != nil {
		active = *d.IsActive
	}
	return entity.Product{
		ID:       d.ID.Hex(),
		SKU:      d.SKU,
		Name:     d.Name,
		Category: d.Category,
		IsBundle: d.IsBundle,
		Active:   active,
	}
}

// snapshotDoc fila de inventories con producto y bodega ya unidos por $lookup.
type snapshotDoc struct {
	ProductID        primitive.ObjectID `bson:"product_id"`
	WarehouseID      primitive.ObjectID `bson:"warehouse_id"`
	Quantity         int64              `bson:"quantity"`
	ReservedQuantity int64              `bson:"reserved_quantity"`
	UpdatedAt        time.Time          `bson:"updated_at"`
	Product          productDoc         `bson:"product"`
	Warehouse        warehouseDoc       `bson:"warehouse"`
}

func (d snapshotDoc) toEntity() entity.InventorySnapshot {
	return entity.InventorySnapshot{
		Level: entity.InventoryLevel{
			ProductID:        d.ProductID.Hex(),
			WarehouseID:      d.WarehouseID.Hex(),
			Quantity:         d.Quantity,
			ReservedQuantity: d.ReservedQuantity,
			UpdatedAt:        d.UpdatedAt,
		},
		Product:   d.Product.toEntity(),
		Warehouse: d.Warehouse.toEntity(),
	}
}

type pairID struct {
	ProductID   primitive.ObjectID `bson:"product_id"`
	WarehouseID primitive.ObjectID `bson:"warehouse_id"`
}

type recentSalesDoc struct {
	ID                pairID    `bson:"_id"`
	TotalQuantitySold int64     `bson:"total_quantity_sold"`
	LastSaleDate      time.Time `bson:"last_sale_date"`
}

type velocityDoc struct {
	ID                pairID `bson:"_id"`
	TotalQuantitySold int64  `bson:"total_quantity_sold"`
	DaysWithSales     int    `bson:"days_with_sales"`
}

type productSupplierDoc struct {
	ProductID            primitive.ObjectID   `bson:"product_id"`
	IsPrimary            bool                 `bson:"is_primary"`
	LeadTimeDays         int                  `bson:"lead_time_days"`
	MinimumOrderQuantity int                  `bson:"minimum_order_quantity"`
	UnitCost             primitive.Decimal128 `bson:"unit_cost"`
	Supplier             struct {
		ID           primitive.ObjectID `bson:"_id"`
		Name         string             `bson:"name"`
		ContactEmail string             `bson:"contact_email"`
		Phone        string             `bson:"phone"`
	} `bson:"supplier"`
}

func (d productSupplierDoc) toEntity() (entity.ProductSupplier, error) {
	cost, err := decimalFrom128(d.UnitCost)
	if err != nil {
		return entity.ProductSupplier{}, err
	}
	return entity.ProductSupplier{
		ProductID: d.ProductID.Hex(),
		Supplier: entity.Supplier{
			ID:           d.Supplier.ID.Hex(),
			Name:         d.Supplier.Name,
			ContactEmail: d.Supplier.ContactEmail,
			Phone:        d.Supplier.Phone,
		},
		IsPrimary:            d.IsPrimary,
		LeadTimeDays:         d.LeadTimeDays,
		MinimumOrderQuantity: d.MinimumOrderQuantity,
		UnitCost:             cost,
	}, nil
}

// decimalFrom128 convierte Decimal128 a decimal.Decimal; el valor ausente es cero.
func decimalFrom128(d primitive.Decimal128) (decimal.Decimal, error) {
	if d == (primitive.Decimal128{}) {
		return decimal.Zero, nil
	}
	bi, exp, err := d.BigInt()
	if err != nil {
		return decimal.Zero, fmt.Errorf("decimal128 %s: %w", d.String(), err)
	}
	return decimal.NewFromBigInt(bi, int32(exp)), nil
}
