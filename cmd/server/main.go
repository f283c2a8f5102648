package main

import (
	"os"

	"homenest/server/config"
	"homenest/server/internal/api"
	"homenest/server/internal/auth"
	"homenest/server/internal/catalog"
	"homenest/server/internal/favorites"
	"homenest/server/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Initialize the slot store
	logger.Infof("Using database at: %s", cfg.Storage.DBPath)
	store, err := storage.NewSQLiteStore(cfg.Storage.DBPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize storage")
	}
	defer store.Close()

	// Load the property catalog
	cat, err := catalog.Load(cfg.Catalog.SeedPath, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load property catalog")
	}

	if cfg.Catalog.WatchSeed {
		watcher, err := catalog.NewWatcher(cat, logger)
		if err != nil {
			logger.WithError(err).Error("Failed to start seed watcher")
		} else {
			watcher.Start()
			defer watcher.Stop()
		}
	}

	// Wire the credential store and favorites over the slot store
	hasher := auth.NewHasher(cfg.Auth.HashAlgorithm)
	credentials := auth.NewCredentialStore(store, hasher, logger)
	favs := favorites.NewSet(store, logger)

	handler := api.NewHandler(cat, credentials, favs, store, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestID(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", api.HeaderXRequestID},
	}))

	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
