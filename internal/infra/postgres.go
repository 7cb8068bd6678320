package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolhub/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func MigrateSchema(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.School{},
		&db_models.Account{},
		&db_models.Class{},
		&db_models.Student{},
		&db_models.Teacher{},
		&db_models.Notice{},
		&db_models.Homework{},
		&db_models.FeeRecord{},
		&db_models.Vehicle{},
		&db_models.Event{},
		&db_models.PromoCode{},
		&db_models.PaymentOrder{},
		&db_models.ActivityLog{},
		&db_models.Partner{},
		&db_models.ReferralCommission{},
	)
	if err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
