package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/shared/logger"
)

// Manager runs database migrations with an environment-appropriate strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks AutoMigrate for development and versioned goose
// scripts everywhere else.
func NewManager(environment string) *Manager {
	var strategy Strategy
	switch strings.ToLower(environment) {
	case "development", "debug":
		strategy = NewGormAutoMigrateStrategy()
	default:
		strategy = NewGooseStrategy("mysql")
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
