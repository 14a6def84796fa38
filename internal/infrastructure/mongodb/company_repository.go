package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
	"github.com/jhoicas/stockalert-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository   = (*CompanyRepo)(nil)
	_ repository.WarehouseRepository = (*WarehouseRepo)(nil)
)

// CompanyRepo empresas sobre MongoDB.
type CompanyRepo struct {
	col *mongo.Collection
}

// NewCompanyRepository construye el adaptador.
func NewCompanyRepository(db *mongo.Database) *CompanyRepo {
	return &CompanyRepo{col: db.Collection(colCompanies)}
}

// GetByID lee nombre y settings.low_stock_thresholds; nil, nil si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	opts := options.FindOne().SetProjection(bson.D{{Key: "name", Value: 1}, {Key: "settings.low_stock_thresholds", Value: 1}})
	var doc companyDoc
	if err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return doc.toEntity(), nil
}

// WarehouseRepo bodegas sobre MongoDB.
type WarehouseRepo struct {
	col *mongo.Collection
}

// NewWarehouseRepository construye el adaptador.
func NewWarehouseRepository(db *mongo.Database) *WarehouseRepo {
	return &WarehouseRepo{col: db.Collection(colWarehouses)}
}

// ListActiveByCompany bodegas con is_active=true de la empresa, por _id (orden de alta).
func (r *WarehouseRepo) ListActiveByCompany(ctx context.Context, companyID string) ([]*entity.Warehouse, error) {
	oid, err := objectID(companyID)
	if err != nil {
		return nil, err
	}
	filter := bson.D{{Key: "company_id", Value: oid}, {Key: "is_active", Value: true}}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list active warehouses: %w", err)
	}
	var docs []warehouseDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode warehouses: %w", err)
	}

	list := make([]*entity.Warehouse, 0, len(docs))
	for _, d := range docs {
		w := d.toEntity()
		list = append(list, &w)
	}
	return list, nil
}
