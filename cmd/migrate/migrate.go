package migrate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/LakshyaxGupta/FlowBreak/config"
	"github.com/LakshyaxGupta/FlowBreak/migrations"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"
)

func GetMigrateCmd(dbConfig config.DatabaseConfig, logger *slog.Logger) *cobra.Command {
	var down bool

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbURL, dir := dbConfig.MigrationURL()

			src, err := iofs.New(migrations.FS, dir)
			if err != nil {
				return fmt.Errorf("failed to open embedded migrations: %w", err)
			}

			m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
			if err != nil {
				return fmt.Errorf("failed to initialize migrations: %w", err)
			}
			defer m.Close()

			if down {
				err := m.Down()
				if errors.Is(err, migrate.ErrNoChange) {
					logger.Info("no migrations to rollback")
					return nil
				}
				var dirty migrate.ErrDirty
				if errors.As(err, &dirty) {
					logger.Warn("database is in a dirty state, forcing version", slog.Int("version", dirty.Version))
					if err := m.Force(dirty.Version); err != nil {
						return fmt.Errorf("failed to force migration version: %w", err)
					}
					err = m.Down()
				}
				if err != nil && !errors.Is(err, migrate.ErrNoChange) {
					return fmt.Errorf("failed to apply down migrations: %w", err)
				}
				logger.Info("migrations rolled back", slog.String("driver", dbConfig.Driver))
				return nil
			}

			if err := m.Up(); err != nil {
				if errors.Is(err, migrate.ErrNoChange) {
					logger.Info("no new migrations to apply")
					return nil
				}
				return fmt.Errorf("failed to apply up migrations: %w", err)
			}

			logger.Info("migrations applied", slog.String("driver", dbConfig.Driver))
			return nil
		},
	}

	migrateCmd.Flags().BoolVarP(&down, "down", "d", false, "Rollback migrations")

	return migrateCmd
}
