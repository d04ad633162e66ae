package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/card-dashboard/api"
	"github.com/carson-networks/card-dashboard/internal/config"
	"github.com/carson-networks/card-dashboard/internal/logging"
	"github.com/carson-networks/card-dashboard/internal/service"
	"github.com/carson-networks/card-dashboard/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("card-dashboard starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() {
		if err := dbStorage.Close(); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()

	svc := service.NewService(dbStorage)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:        logger,
		Port:          envConfig.HTTPPort,
		Service:       svc,
		AllowedOrigin: envConfig.AllowedOrigin,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}
}
