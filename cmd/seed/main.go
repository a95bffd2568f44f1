package main

import (
	"context"
	"log"

	"github.com/fastbite/fastbite/internal/cache"
	"github.com/fastbite/fastbite/internal/config"
	"github.com/fastbite/fastbite/internal/logger"
	"github.com/fastbite/fastbite/internal/models"
	"github.com/fastbite/fastbite/internal/repository"
	"github.com/fastbite/fastbite/internal/service"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository(models.DB)
	menuRepo := repository.NewMenuRepository(models.DB)

	seedCategories(stdLog, categoryRepo)
	seeded := seedMenuItems(stdLog, menuRepo)

	if seeded {
		// drop any stale cached menu projection so the next request sees
		// the fresh catalog
		if err := cache.InitRedis(&cfg.Redis); err != nil {
			stdLog.Printf("redis unavailable, skipping menu cache invalidation: %v", err)
		} else {
			menuService := service.NewMenuService(menuRepo, categoryRepo, 0)
			menuService.InvalidateCache(context.Background())
		}
	}
}

func seedCategories(stdLog *log.Logger, repo repository.CategoryRepository) {
	count, err := repo.Count()
	if err != nil {
		stdLog.Fatalf("failed to count categories: %v", err)
	}
	if count > 0 {
		stdLog.Printf("categories already seeded (%d), nothing to do", count)
		return
	}

	// desserts ships empty today, the category still exists
	names := []string{"burgers", "fries", "drinks", "desserts"}
	for i, name := range names {
		category := &models.Category{Name: name, SortOrder: i + 1}
		if err := repo.Create(category); err != nil {
			stdLog.Fatalf("failed to seed category %s: %v", name, err)
		}
		stdLog.Printf("seeded category %s", name)
	}
}

func seedMenuItems(stdLog *log.Logger, menuRepo repository.MenuRepository) bool {
	count, err := menuRepo.Count()
	if err != nil {
		stdLog.Fatalf("failed to count menu items: %v", err)
	}
	if count > 0 {
		stdLog.Printf("menu already seeded (%d items), nothing to do", count)
		return false
	}

	items := []models.MenuItem{
		{
			Name:        "Cheeseburger Deluxe",
			Description: "Juicy beef patty, cheddar, crisp lettuce and house sauce",
			UnitPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(399)),
			ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400",
			Category:    "burgers",
			SortOrder:   1,
		},
		{
			Name:        "French Fries",
			Description: "Golden fries with a pinch of sea salt",
			UnitPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(149)),
			ImageURL:    "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=400",
			Category:    "fries",
			SortOrder:   2,
		},
		{
			Name:        "Chicken Nuggets",
			Description: "Crunchy nuggets with your choice of dip",
			UnitPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(199)),
			ImageURL:    "https://images.unsplash.com/photo-1562967914-608f82629710?w=400",
			Category:    "burgers",
			SortOrder:   3,
		},
		{
			Name:        "Beef Burger",
			Description: "Double beef patty with pickles and smoked bacon",
			UnitPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(499)),
			ImageURL:    "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=400",
			Category:    "burgers",
			SortOrder:   4,
		},
		{
			Name:        "Country-Style Potatoes",
			Description: "Oven potatoes with herbs and garlic",
			UnitPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(169)),
			ImageURL:    "https://images.unsplash.com/photo-1518013431117-eb1465fa5752?w=400",
			Category:    "fries",
			SortOrder:   5,
		},
		{
			Name:        "Cola 0.5L",
			Description: "Chilled cola with ice",
			UnitPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(99)),
			ImageURL:    "https://images.unsplash.com/photo-1554866585-cd94860890b7?w=400",
			Category:    "drinks",
			SortOrder:   6,
		},
	}

	for i := range items {
		if err := menuRepo.Create(&items[i]); err != nil {
			stdLog.Fatalf("failed to seed %s: %v", items[i].Name, err)
		}
		stdLog.Printf("seeded %s (%s)", items[i].Name, items[i].UnitPrice.String())
	}
	stdLog.Printf("seeded %d menu items", len(items))
	return true
}
