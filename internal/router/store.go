package router

import (
	"context"
	"fmt"

	mem "petclinic/internal/adapters/storage/memory"
	pg "petclinic/internal/adapters/storage/postgres"
	"petclinic/internal/adapters/storage/sqlite"
	"petclinic/internal/config"
	"petclinic/internal/domain/owners"
)

// OpenOwners abre el backing store elegido por STORE_DRIVER.
// La func devuelta libera la conexión (no-op para memory).
func OpenOwners(ctx context.Context, cfg *config.Config) (owners.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, noop, err
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return pg.NewOwnersRepo(db), db.Close, nil

	case config.StoreSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return s.Owners(), s.Close, nil

	case config.StoreMemory, "":
		return mem.NewOwnerRepo(), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
