package main

import (
	"context"
	"log"

	"festivo/internal/config"
	"festivo/internal/db"
	"festivo/internal/model"
	"festivo/internal/repository"
)

// Seeds the MySQL database with demo providers and businesses so the
// marketplace has browsable content. Safe to run repeatedly: rows that
// already exist are skipped via the uniqueness checks.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Business{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	businessRepo := repository.NewBusinessRepository(gormDB)

	ctx := context.Background()
	seeded := 0
	skipped := 0

	for _, p := range demoProviders() {
		user := p.user
		if err := userRepo.Create(ctx, &user); err != nil {
			log.Printf("Skipping %s: %v", user.Email, err)
			skipped++
			continue
		}

		business := p.business
		business.UserID = user.ID
		if err := businessRepo.Create(ctx, &business); err != nil {
			log.Fatalf("Failed to create business %q: %v", business.Name, err)
		}
		seeded++
	}

	log.Printf("Seed complete: %d providers created, %d skipped", seeded, skipped)
}

type demoProvider struct {
	user     model.User
	business model.Business
}

func demoProviders() []demoProvider {
	return []demoProvider{
		{
			user: model.User{
				Email:    "sofia@lenslight.example",
				Username: "sofialens",
				Password: "demo-password",
				FullName: "Sofia Marquez",
				UserType: model.UserTypeProvider,
			},
			business: model.Business{
				Name:         "Lens & Light Photography",
				Description:  "Wedding and event photography with a documentary style.",
				Category:     "Photography",
				Location:     "Austin, TX",
				ContactEmail: "bookings@lenslight.example",
				ContactPhone: "+1 512 555 0101",
				Pricing:      "Packages from $1,200",
				Rating:       5,
			},
		},
		{
			user: model.User{
				Email:    "marco@fornoamico.example",
				Username: "fornoamico",
				Password: "demo-password",
				FullName: "Marco Bellini",
				UserType: model.UserTypeProvider,
			},
			business: model.Business{
				Name:         "Forno Amico Catering",
				Description:  "Wood-fired Italian catering for parties of 20 to 200.",
				Category:     "Catering",
				Location:     "Austin, TX",
				ContactEmail: "events@fornoamico.example",
				Pricing:      "From $35 per head",
				Rating:       4,
			},
		},
		{
			user: model.User{
				Email:    "dana@thegreenbarn.example",
				Username: "greenbarn",
				Password: "demo-password",
				FullName: "Dana Whitfield",
				UserType: model.UserTypeProvider,
			},
			business: model.Business{
				Name:         "The Green Barn",
				Description:  "Restored barn venue with garden grounds for up to 150 guests.",
				Category:     "Venue",
				Location:     "Dripping Springs, TX",
				ContactEmail: "hello@thegreenbarn.example",
				ContactPhone: "+1 512 555 0145",
				Pricing:      "Weekend hire from $3,000",
				Rating:       5,
			},
		},
	}
}
