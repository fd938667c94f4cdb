package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_resources",
		SQL: `CREATE TABLE IF NOT EXISTS resources (
  id          BIGSERIAL PRIMARY KEY,
  name        TEXT      NOT NULL,
  description TEXT      NOT NULL,
  quantity    INTEGER   NOT NULL
);`,
	},
	{
		Name: "create_table_sandwiches",
		SQL: `CREATE TABLE IF NOT EXISTS sandwiches (
  id          BIGSERIAL     PRIMARY KEY,
  name        TEXT          NOT NULL,
  description TEXT          NOT NULL,
  price       NUMERIC(10,2) NOT NULL
);`,
	},
	{
		Name: "create_index_resources_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_resources_name ON resources (name);`,
	},
	{
		Name: "create_index_sandwiches_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_sandwiches_name ON sandwiches (name);`,
	},
}

const sentinelQuery = `SELECT to_regclass('public.resources') IS NOT NULL AND to_regclass('public.sandwiches') IS NOT NULL`

// EnsureMigrated checks whether both tables exist and runs every step if either is missing.
// Steps are idempotent, so a partially applied schema is completed rather than rejected.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel tables: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
