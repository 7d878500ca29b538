package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShriyanshSinghPatel/AngularForm/config"
	controller "github.com/ShriyanshSinghPatel/AngularForm/controllers"
	"github.com/ShriyanshSinghPatel/AngularForm/repository"
	"github.com/ShriyanshSinghPatel/AngularForm/routes"
	"github.com/ShriyanshSinghPatel/AngularForm/seed"
	"github.com/ShriyanshSinghPatel/AngularForm/services"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

// backend is the store pair plus its lifecycle.
type backend struct {
	menu   services.MenuStore
	orders services.OrderStore
	ping   func(ctx context.Context) error
	close  func(ctx context.Context) error
}

func (b backend) Ping(ctx context.Context) error { return b.ping(ctx) }

func openBackend(ctx context.Context, cfg *config.Config, log *logrus.Logger) (backend, error) {
	if cfg.Store == config.StoreMemory {
		store := repository.NewMemoryStore()
		n, err := seed.Populate(ctx, store.Menu)
		if err != nil {
			return backend{}, err
		}
		log.WithField("items", n).Info("Using in-memory store, seeded menu")
		return backend{menu: store.Menu, orders: store.Orders, ping: store.Ping, close: store.Close}, nil
	}

	client, err := config.Connect(ctx, cfg.MongoURL, log)
	if err != nil {
		return backend{}, err
	}
	store := repository.NewMongoStore(client, cfg.DBName)
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = store.Close(context.Background())
		return backend{}, err
	}
	return backend{menu: store.Menu, orders: store.Orders, ping: store.Ping, close: store.Close}, nil
}

func main() {
	log := logrus.New()

	if err := config.LoadEnv(); err != nil {
		log.WithError(err).Fatal("Failed to load .env")
	}
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	log = cfg.NewLogger()

	info, err := config.LoadRestaurantInfo(cfg.RestaurantInfoFile)
	if err != nil {
		log.WithError(err).Fatal("Failed to load restaurant info")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open store")
	}

	menuService := services.NewMenuService(store.menu, log)
	orderService := services.NewOrderService(store.orders, store.menu, log, services.OrderOptions{
		StrictPricing: cfg.StrictOrderPricing,
	})

	handler := routes.NewRouter(routes.Controllers{
		Restaurant: controller.NewRestaurantController(info),
		Menu:       controller.NewMenuController(menuService, log, cfg.RequestTimeout),
		Order:      controller.NewOrderController(orderService, log, cfg.RequestTimeout),
		Health:     controller.NewHealthController(store, log, cfg.RequestTimeout),
	}, log, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"port":           cfg.Port,
			"store":          cfg.Store,
			"strict_pricing": cfg.StrictOrderPricing,
		}).Info("Server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
	if err := store.close(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to close store")
	}
}
