// Command seed replaces the MongoDB menu catalog with the built-in seed menu.
package main

import (
	"context"
	"time"

	"github.com/ShriyanshSinghPatel/AngularForm/config"
	"github.com/ShriyanshSinghPatel/AngularForm/repository"
	"github.com/ShriyanshSinghPatel/AngularForm/seed"
	"github.com/sirupsen/logrus"
)

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

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := config.Connect(ctx, cfg.MongoURL, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect")
	}
	store := repository.NewMongoStore(client, cfg.DBName)
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.WithError(err).Error("Failed to disconnect")
		}
	}()

	if err := store.EnsureIndexes(ctx); err != nil {
		log.WithError(err).Fatal("Failed to create indexes")
	}

	n, err := seed.Populate(ctx, store.Menu)
	if err != nil {
		log.WithError(err).Fatal("Failed to populate menu")
	}
	log.WithFields(logrus.Fields{"items": n, "database": cfg.DBName}).Info("Menu populated")
}
