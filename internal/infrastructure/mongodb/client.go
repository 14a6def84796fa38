package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/stockalert-api/pkg/config"
)

// Colecciones (nombres en plural y minúscula, como los crea Mongoose).
const (
	colCompanies        = "companies"
	colWarehouses       = "warehouses"
	colProducts         = "products"
	colInventories      = "inventories"
	colSalesActivities  = "salesactivities"
	colProductSuppliers = "productsuppliers"
	colSuppliers        = "suppliers"
)

// Connect abre el cliente, verifica la conexión y devuelve la base configurada.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(10 * time.Second).
		SetReadPreference(readpref.PrimaryPreferred())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.PrimaryPreferred()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}
