package main

import (
	"log"

	"project-nexus-be/internal/config"
	"project-nexus-be/internal/model"
	"project-nexus-be/pkg/database"
)

// Standalone migration entry point for deployments that migrate out of band
// (e.g. postgres with restricted runtime credentials). The REST binary also
// migrates on boot.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(database.GormConfig{
		Driver: cfg.Database.Driver,
		Path:   cfg.Database.Path,
		DSN:    cfg.Database.Connection,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database: ", err)
	}

	log.Println("Starting GORM migration...")

	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Purchase{},
		&model.Interaction{},
	); err != nil {
		log.Fatal("Error: Migration failed: ", err)
	}

	log.Println("Migration complete.")
}
