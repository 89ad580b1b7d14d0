package main

import (
	"log"
	"net/http"

	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/db"
	api "github.com/rogerio-castellano/product-catalog/internal/http"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// @title Product Catalog API
// @version 1.0
// @description REST API for managing catalog categories, products and product variations.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Could not load configuration:", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	categoryRepo := repo.NewPostgresCategoryRepository(database)
	productRepo := repo.NewPostgresProductRepository(database)
	variationRepo := repo.NewPostgresVariationRepository(database)
	handlers.SetCatalog(catalog.NewService(categoryRepo, productRepo, variationRepo))

	rl.SetLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, api.RateLimit(r)); err != nil {
		log.Fatal(err)
	}
}
