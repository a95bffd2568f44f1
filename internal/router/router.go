package router

import (
	"fmt"
	"strings"

	"github.com/fastbite/fastbite/internal/cache"
	"github.com/fastbite/fastbite/internal/config"
	"github.com/fastbite/fastbite/internal/constants"
	publichandlers "github.com/fastbite/fastbite/internal/http/handlers/public"
	"github.com/fastbite/fastbite/internal/http/response"
	"github.com/fastbite/fastbite/internal/logger"
	"github.com/fastbite/fastbite/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with all routes and middleware
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "fb"
	}
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		Message:       "too many checkout attempts",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	apiV1 := r.Group("/api/v1")
	apiV1.Use(SessionMiddleware(c.SessionService))
	{
		apiV1.GET("/categories", publicHandler.GetCategories)
		apiV1.GET("/menu", publicHandler.GetMenu)
		apiV1.PUT("/session/category", publicHandler.SelectCategory)

		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items/:item_id", publicHandler.SetCartItemQuantity)
			cart.DELETE("/items/:item_id", publicHandler.RemoveCartItem)
		}

		apiV1.POST("/checkout",
			RateLimitMiddleware(cache.Client(), checkoutRule, KeyBySession(constants.SessionTokenHeader)),
			publicHandler.Checkout,
		)

		orders := apiV1.Group("/orders")
		{
			orders.GET("", publicHandler.ListOrders)
			orders.GET("/:order_id", publicHandler.GetOrder)
		}
	}

	return r
}
