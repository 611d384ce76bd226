package main

import (
	"context"
	"log"

	"project-nexus-be/internal/config"
	"project-nexus-be/internal/model"
	"project-nexus-be/internal/repository/unitofwork"
	"project-nexus-be/internal/seeder"
	"project-nexus-be/pkg/database"
)

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

	// Seeding assumes migrated tables.
	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Purchase{},
		&model.Interaction{},
	); err != nil {
		log.Fatal("Error: Migration failed: ", err)
	}

	if err := seeder.Seed(context.Background(), unitofwork.NewRepositoryFactory(db)); err != nil {
		log.Fatal("Error: Seeding failed: ", err)
	}

	log.Println("Seeding complete.")
}
