package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations for the helpdesk schema.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newAutoCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply the embedded versioned SQL migrations to bring the schema up to date.`,
		RunE:  runUp,
	}
}

func newAutoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Sync the schema from the model structs",
		Long:  `Derive the schema directly from the persistence models. Development use only.`,
		RunE:  runAuto,
	}
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(db)

	log.Infow("running up migrations", "environment", env)

	manager := migration.NewManagerWithStrategy(migration.NewGooseStrategy("mysql"))
	if err := manager.Migrate(db); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runAuto(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(db)

	log.Infow("running auto-migration", "environment", env)

	manager := migration.NewManagerWithStrategy(migration.NewGormAutoMigrateStrategy())
	if err := manager.Migrate(db, migration.AutoMigrateModels()...); err != nil {
		log.Errorw("auto-migration failed", "error", err)
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	log.Infow("auto-migration completed successfully")
	return nil
}
