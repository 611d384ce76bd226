// Package seeder loads the demo catalog and the default admin login. Seeding
// is idempotent: existing rows are left alone.
package seeder

import (
	"context"
	"log"
	"time"

	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/repository/specification"
	"project-nexus-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type seedProduct struct {
	name     string
	category string
	price    float64
	ecoScore int
	carbonKg float64
	stock    int
}

var catalog = []seedProduct{
	{"Organic Quinoa", "Health Food", 12.99, 9, 1.2, 100},
	{"Bluetooth Speaker", "Electronics", 79.99, 6, 3.5, 50},
	{"Bamboo Toothbrush", "Sustainability", 4.99, 10, 0.1, 200},
	{"Greek Yogurt", "Dairy", 5.49, 7, 0.8, 150},
	{"Reusable Water Bottle", "Sustainability", 24.99, 9, 0.5, 75},
	{"Protein Powder", "Fitness", 34.99, 6, 2.1, 60},
	{"LED Desk Lamp", "Home", 45.99, 8, 1.8, 40},
	{"Organic Honey", "Food", 8.99, 9, 0.3, 120},
	{"Yoga Mat", "Fitness", 29.99, 7, 1.5, 90},
	{"Plant-Based Milk", "Dairy Alternative", 4.99, 8, 0.6, 180},
	{"Smart Watch", "Electronics", 199.99, 5, 4.2, 30},
	{"Organic Apples", "Produce", 3.99, 10, 0.2, 500},
	{"Eco Laundry Detergent", "Sustainability", 15.99, 9, 0.8, 80},
	{"Wireless Headphones", "Electronics", 129.99, 4, 3.8, 25},
	{"Meditation Cushion", "Wellness", 39.99, 8, 1.0, 60},
	{"Solar Phone Charger", "Sustainability", 49.99, 10, 0.3, 40},
	{"Organic Coffee Beans", "Food", 14.99, 9, 1.1, 120},
	{"Ergonomic Mouse Pad", "Office", 19.99, 6, 1.4, 150},
	{"Reusable Food Wraps", "Sustainability", 12.99, 10, 0.1, 200},
	{"Air Purifying Plant", "Home", 22.99, 10, 0.0, 85},
}

const (
	adminUsername = "admin"
	adminEmail    = "admin@nexus.local"
	// Demo-only credential, matches the documented quick start.
	adminPassword = "admin123"
)

func Seed(ctx context.Context, uowFactory unitofwork.RepositoryFactory) error {
	uow := uowFactory.NewUnitOfWork(ctx)

	seeded := 0
	for _, p := range catalog {
		existing, err := uow.ProductRepository().FindOne(ctx, specification.ByName{Name: p.name})
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		product := &entity.Product{
			Id:                uuid.New(),
			Name:              p.name,
			Category:          p.category,
			Price:             p.price,
			EcoScore:          p.ecoScore,
			CarbonFootprintKg: p.carbonKg,
			Stock:             p.stock,
			CreatedAt:         time.Now(),
			UpdatedAt:         time.Now(),
		}
		if err := uow.ProductRepository().Create(ctx, product); err != nil {
			return err
		}
		seeded++
	}
	log.Printf("[INFO] Seeded %d catalog products (%d already present)", seeded, len(catalog)-seeded)

	return seedAdmin(ctx, uowFactory)
}

func seedAdmin(ctx context.Context, uowFactory unitofwork.RepositoryFactory) error {
	uow := uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: adminUsername})
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Id:           uuid.New(),
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         entity.UserRoleAdmin,
		Preferences:  map[string]interface{}{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("[INFO] Seeded default admin user %q", adminUsername)
	return nil
}
