package provider

import (
	"time"

	"github.com/fastbite/fastbite/internal/cache"
	"github.com/fastbite/fastbite/internal/config"
	"github.com/fastbite/fastbite/internal/logger"
	"github.com/fastbite/fastbite/internal/models"
	"github.com/fastbite/fastbite/internal/queue"
	"github.com/fastbite/fastbite/internal/repository"
	"github.com/fastbite/fastbite/internal/service"
)

// Container is the dependency injection container
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	MenuRepo     repository.MenuRepository
	CategoryRepo repository.CategoryRepository
	SessionRepo  repository.SessionRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository

	// Services
	MenuService    *service.MenuService
	SessionService *service.SessionService
	CartService    *service.CartService
	OrderService   *service.OrderService
}

// NewContainer wires repositories and services
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.MenuRepo = repository.NewMenuRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.SessionRepo = repository.NewSessionRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	menuCacheTTL := time.Duration(c.Config.Menu.CacheTTLSeconds) * time.Second
	c.MenuService = service.NewMenuService(c.MenuRepo, c.CategoryRepo, menuCacheTTL)
	c.SessionService = service.NewSessionService(c.SessionRepo, c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.MenuRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.MenuRepo, c.QueueClient)
}
