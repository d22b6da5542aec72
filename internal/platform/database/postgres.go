package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"galaxy_api/internal/platform/config"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

var DB *sql.DB

func Connect() {
	var err error
	DB, err = sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	// Pool size is the back-pressure knob: callers block on checkout when
	// all connections are busy instead of piling onto Postgres.
	DB.SetMaxOpenConns(config.AppConfig.DBPoolSize)
	DB.SetMaxIdleConns(config.AppConfig.DBPoolSize)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err = DB.Ping(); err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	fmt.Println("Successfully connected to PostgreSQL database!")
}

func Close() {
	if DB != nil {
		DB.Close()
		fmt.Println("Database connection closed.")
	}
}
