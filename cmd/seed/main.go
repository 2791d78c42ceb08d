package main

import (
	"context"
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kronos/internal/cache"
	"kronos/internal/config"
	"kronos/internal/db"
	"kronos/internal/model"
	"kronos/internal/repository"
	"kronos/internal/seed"
	"kronos/internal/service"
	"kronos/internal/storage"
)

func main() {
	adminEmail := flag.String("admin-email", "admin@kronos.local", "email for the seeded admin account")
	adminPassword := flag.String("admin-password", "admin123", "password for the seeded admin account")
	adminName := flag.String("admin-name", "Kronos Admin", "display name for the seeded admin account")
	skipCatalog := flag.Bool("skip-catalog", false, "seed only the admin account")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()
	ctx := context.Background()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Profile{}, &model.Product{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)

	admin, err := seedAdmin(ctx, userRepo, profileRepo, *adminEmail, *adminPassword, *adminName)
	if err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	log.Printf("Admin account ready: %s (%s)", admin.Email, admin.ID)

	if *skipCatalog {
		log.Println("Skipping catalog seed")
		return
	}

	objectStore, err := storage.NewFSStore(cfg.StorageDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("Failed to init object store: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	productRepo := repository.NewProductRepository(gormDB)
	catalog := service.NewCatalogService(productRepo, objectStore, cacheClient)

	count, err := catalog.SeedProducts(ctx, seed.Products())
	if err != nil {
		log.Fatalf("Failed to seed catalog (created %d): %v", count, err)
	}
	log.Printf("Seeded %d products", count)
}

// seedAdmin creates the admin user if missing and makes sure the profile
// carries the admin role either way.
func seedAdmin(ctx context.Context, users repository.UserRepository, profiles repository.ProfileRepository, email, password, name string) (*model.User, error) {
	user, err := users.FindByEmail(ctx, email)
	if err == gorm.ErrRecordNotFound {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
		if err != nil {
			return nil, err
		}
		user = &model.User{
			Email:        email,
			PasswordHash: string(hash),
			Name:         name,
		}
		if err := users.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if err := profiles.Upsert(ctx, &model.Profile{UserID: user.ID, Role: model.RoleAdmin}); err != nil {
		return nil, err
	}
	return user, nil
}
