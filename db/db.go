// Package db provides database connectivity and migration functionality.
// It establishes the pgx connection pool used across the application and
// runs SQL migrations at startup.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres migration driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // file-based migrations
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq" // database/sql driver used by migrate's postgres driver

	"github.com/shipekarrohit/backend-project/apperror"
	"github.com/shipekarrohit/backend-project/config"
)

// NewDBPool establishes a PostgreSQL connection pool using the provided
// configuration and verifies connectivity with a ping before returning.
func NewDBPool(cfg *config.PoolConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable&pool_max_conns=%d",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.MaxSize,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error parsing DSN for database %s", cfg.DBName), err)
	}
	poolConfig.MaxConns = int32(cfg.MaxSize)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error creating pool for database %s", cfg.DBName), err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error connecting to database %s", cfg.DBName), err)
	}

	return pool, nil
}

// migrationDSN constructs a DSN string suitable for golang-migrate, which
// drives the schema through database/sql rather than pgx.
func migrationDSN(cfg *config.PoolConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName,
	)
}

// RunMigrations applies any pending migrations from the given directory.
// migrate.ErrNoChange is not treated as a failure.
func RunMigrations(cfg *config.PoolConfig, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, migrationDSN(cfg))
	if err != nil {
		return apperror.NewDatabaseError("failed to create migrator", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			if srcErr != nil {
				fmt.Printf("Warning: error closing migration source: %v\n", srcErr)
			}
			if dbErr != nil {
				fmt.Printf("Warning: error closing migration database instance: %v\n", dbErr)
			}
		}
	}()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return apperror.NewDatabaseError("failed to run migrations", err)
	}
	return nil
}
