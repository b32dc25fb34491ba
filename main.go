package main

import (
	"net/http"

	"github.com/piganiec/hardbistro-app/config"
	httpapi "github.com/piganiec/hardbistro-app/internal/api/http"
	"github.com/piganiec/hardbistro-app/internal/service"
	"github.com/piganiec/hardbistro-app/internal/storage"
)

func buildHandler(cfg config.Config) http.Handler {
	store := storage.NewMemoryStore()
	store.Seed(storage.DefaultMenu())

	var sessions service.SessionStore = storage.NewMemorySessionStore()
	if cfg.RedisAddr != "" {
		sessions = storage.NewRedisSessionStore(config.MustInitRedis(cfg.RedisAddr), cfg.SessionTTL)
	}

	var publisher service.OrderPublisher
	if cfg.KafkaBroker != "" {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaTopic))
	}

	catalogSvc := service.NewCatalogService(store)
	orderSvc := service.NewOrderService(store, store, publisher, service.DefaultQRGenerator{BaseURL: cfg.BaseURL})
	adminSvc := service.NewAdminService(service.StaticAuthenticator{Password: cfg.AdminPassword}, sessions)

	handler := httpapi.NewHandler(catalogSvc, orderSvc, adminSvc)
	return httpapi.NewRouter(handler)
}

func main() {
	cfg := config.Load()
	httpapi.StartServer(cfg.Addr, buildHandler(cfg))
}
