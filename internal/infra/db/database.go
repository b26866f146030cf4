package db

import (
	"context"
	"io/fs"
	"log/slog"
	"sort"
	"time"

	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse database config")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to open database")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

// Migrate runs every *.sql file in fsys in lexical order. Files are expected
// to be idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS) error {
	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return errs.Wrap(err, "failed to list migrations")
	}
	sort.Strings(files)

	for _, file := range files {
		sqlContent, err := fs.ReadFile(fsys, file)
		if err != nil {
			return errs.Wrapf(err, "failed to read migration %s", file)
		}
		// no arguments, so pgx sends it over the simple protocol and multi-statement files work
		if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
			return errs.Wrapf(err, "failed to execute migration %s", file)
		}
		slog.Info("migration applied", "file", file)
	}
	return nil
}
