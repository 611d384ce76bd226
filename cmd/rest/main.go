package main

import (
	"context"
	"log"

	"project-nexus-be/internal/bootstrap"
	"project-nexus-be/internal/config"
	"project-nexus-be/internal/model"
	"project-nexus-be/internal/repository/unitofwork"
	"project-nexus-be/internal/seeder"
	"project-nexus-be/internal/server"
	"project-nexus-be/internal/tracer"
	"project-nexus-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDB(database.GormConfig{
		Driver: cfg.Database.Driver,
		Path:   cfg.Database.Path,
		DSN:    cfg.Database.Connection,
	})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Migrate and seed. The demo boots turnkey on a fresh sqlite file.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Purchase{},
		&model.Interaction{},
	); err != nil {
		log.Panicf("Migration failed: %v", err)
	}
	if err := seeder.Seed(context.Background(), unitofwork.NewRepositoryFactory(gormDB)); err != nil {
		log.Panicf("Seeding failed: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting Interaction Consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
