package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.uber.org/zap"

	"github.com/fortran01/loyalty-program-go/config"
	"github.com/fortran01/loyalty-program-go/logging"
	"github.com/fortran01/loyalty-program-go/models"
)

var DB *gorm.DB

func ConnectDatabase() {
	cfg := config.LoadConfig()

	var err error
	switch cfg.DBDriver {
	case "postgres":
		connectionString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBName, cfg.DBPassword)
		DB, err = gorm.Open("postgres", connectionString)
	default:
		DB, err = gorm.Open("sqlite3", cfg.DBPath)
	}
	if err != nil {
		logging.Logger.Fatal("failed to connect to database",
			zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	Migrate(DB)
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&models.Customer{},
		&models.LoyaltyAccount{},
		&models.Category{},
		&models.Product{},
		&models.PointEarningRule{},
		&models.PointTransaction{},
	)
}
