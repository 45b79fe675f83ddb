package config

import (
	"dealer-app/models"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// ConnectDB opens the database selected by DB_DRIVER and migrates the tables
// this service owns.
func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			DBHost, DBUser, DBPassword, DBName, DBPort)
		dialector = postgres.Open(dsn)
	case "mssql", "sqlserver":
		dsn := "sqlserver://" + DBUser + ":" + DBPassword + "@" + DBHost + ":" + DBPort + "?database=" + DBName
		dialector = sqlserver.Open(dsn)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			DBUser, DBPassword, DBHost, DBPort, DBName)
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return nil, err
	}

	fmt.Println("🚀 Connected to database")

	db.AutoMigrate(&models.StoredRecord{})
	db.AutoMigrate(&models.User{})

	return db, nil
}
