package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/config"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/handlers"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/store"
)

func main() {
	cfg := config.Load()

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	catalog, err := loadCatalog(cfg.RoomsFile)
	if err != nil {
		log.WithError(err).Fatal("failed to load room catalog")
	}
	log.WithField("rooms", len(catalog)).Info("room catalog loaded")

	var sessions store.SessionStore = store.NewMemoryStore()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		sessions = store.NewLayeredStore(
			store.NewMemoryStore(),
			store.NewRedisStore(client, "amongus:", cfg.SessionTTL),
			log,
		)
		log.WithField("addr", cfg.RedisAddr).Info("durable session store enabled")
	}

	ctx := &handlers.Context{
		Store:   sessions,
		Log:     log,
		Catalog: catalog,
		BaseURL: cfg.BaseURL,
	}

	// Routes
	http.HandleFunc("/api/session", handlers.RateLimit(rate.Limit(1), 5, ctx.HandleCreateSession))
	http.HandleFunc("/api/session/", handlers.RateLimit(rate.Limit(25), 50, ctx.HandleSessionMux))
	http.HandleFunc("/qr/", ctx.HandleQR)
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	log.WithField("addr", cfg.Addr).Info("server starting")
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// loadCatalog reads the default room/task catalog from JSON
func loadCatalog(path string) (map[string]models.Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var catalog map[string]models.Room
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return catalog, nil
}
