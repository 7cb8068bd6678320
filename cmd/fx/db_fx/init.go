package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"schoolhub/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	db := infra.InitPostgresql()
	infra.MigrateSchema(db)
	return db
}
