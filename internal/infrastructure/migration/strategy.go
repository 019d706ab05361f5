package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed scripts/*.sql
var scriptsFS embed.FS

// Strategy abstracts how schema changes are applied.
type Strategy interface {
	Migrate(db *gorm.DB, models ...interface{}) error
	GetName() string
}

// GormAutoMigrateStrategy derives the schema from the model structs.
// Suitable for development only.
type GormAutoMigrateStrategy struct{}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		return nil
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// GooseStrategy applies the embedded versioned SQL scripts.
type GooseStrategy struct {
	dialect string
}

func NewGooseStrategy(dialect string) *GooseStrategy {
	if dialect == "" {
		dialect = "mysql"
	}
	return &GooseStrategy{dialect: dialect}
}

func (s *GooseStrategy) Migrate(db *gorm.DB, _ ...interface{}) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}
