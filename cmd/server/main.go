package main

import (
	"context"
	"log"
	"net/http"

	_ "kronos/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"kronos/internal/auth"
	"kronos/internal/cache"
	"kronos/internal/config"
	"kronos/internal/db"
	"kronos/internal/handler"
	"kronos/internal/model"
	"kronos/internal/repository"
	"kronos/internal/router"
	"kronos/internal/service"
	"kronos/internal/storage"
)

// @title Kronos Catalog API
// @version 1.0
// @description Luxury watch storefront API: public catalog, JWT auth, admin product creation and image upload.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Product{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("redis unreachable, running without cache: %v", err)
	}

	objectStore, err := storage.NewFSStore(cfg.StorageDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("object store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, profileRepo, jwtService, tokenStore)
	roleService := service.NewRoleService(profileRepo, cacheClient)
	catalogService := service.NewCatalogService(productRepo, objectStore, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(roleService)
	productHandler := handler.NewProductHandler(catalogService)
	seedHandler := handler.NewSeedHandler(catalogService)

	// Register routes
	router.Register(
		e,
		jwtService,
		roleService,
		productHandler,
		authHandler,
		profileHandler,
		seedHandler,
		objectStore.Root(),
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
