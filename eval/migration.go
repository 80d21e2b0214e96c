package eval

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/tern/v2/migrate"
)

//go:embed pg/migrations/*.sql
var migrations embed.FS

// MigrateDatabase brings the evaluation schema up to date using Tern.
func MigrateDatabase(conn *pgx.Conn) error {
	ctx := context.Background()

	migrator, err := migrate.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("failed to create migrator: %v", err)
	}

	filesystem, err := fs.Sub(migrations, "pg/migrations")
	if err != nil {
		return fmt.Errorf("failed to create sub-filesystem: %v", err)
	}

	if err := migrator.LoadMigrations(filesystem); err != nil {
		return fmt.Errorf("failed to load migrations: %v", err)
	}

	if err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %v", err)
	}

	return nil
}
