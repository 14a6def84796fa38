package main

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	appinventory "github.com/jhoicas/stockalert-api/internal/application/inventory"
	"github.com/jhoicas/stockalert-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockalert-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/stockalert-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockalert-api/internal/interfaces/http"
	"github.com/jhoicas/stockalert-api/pkg/config"
)

// store repositorios de solo lectura del driver elegido, su chequeo de salud y su cierre.
type store struct {
	repos  appinventory.Repositories
	health httpRouter.HealthChecker
	close  func(ctx context.Context) error
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return &store{
			repos: appinventory.Repositories{
				IDs:        postgres.UUIDValidator{},
				Companies:  postgres.NewCompanyRepository(pool),
				Warehouses: postgres.NewWarehouseRepository(pool),
				Sales:      postgres.NewSalesActivityRepository(pool),
				Inventory:  postgres.NewInventoryLevelRepository(pool),
				Suppliers:  postgres.NewSupplierRepository(pool),
			},
			health: pool.Ping,
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.StoreDriverMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("conexión a MongoDB: %w", err)
		}
		return &store{
			repos: appinventory.Repositories{
				IDs:        mongodb.ObjectIDValidator{},
				Companies:  mongodb.NewCompanyRepository(db),
				Warehouses: mongodb.NewWarehouseRepository(db),
				Sales:      mongodb.NewSalesActivityRepository(db),
				Inventory:  mongodb.NewInventoryRepository(db),
				Suppliers:  mongodb.NewSupplierRepository(db),
			},
			health: func(ctx context.Context) error { return client.Ping(ctx, readpref.PrimaryPreferred()) },
			close:  client.Disconnect,
		}, nil

	case config.StoreDriverMemory:
		m := memory.NewStore()
		return &store{
			repos: appinventory.Repositories{
				IDs: m, Companies: m, Warehouses: m,
				Sales: m, Inventory: m, Suppliers: m,
			},
			close: func(context.Context) error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
}
