package main

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/greenschool/canteen-server/api"
	"github.com/greenschool/canteen-server/internal/config"
	"github.com/greenschool/canteen-server/internal/events"
	"github.com/greenschool/canteen-server/internal/logging"
	"github.com/greenschool/canteen-server/internal/operator"
	"github.com/greenschool/canteen-server/internal/service"
	"github.com/greenschool/canteen-server/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logrus.Info("canteen-server starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	if err := dbStorage.Ledger.SeedDefaults(context.Background()); err != nil {
		logrus.WithError(err).Fatal("ledger.SeedDefaults")
		return
	}

	bus := events.NewBus()
	svc := service.NewService(dbStorage)

	delegator := operator.NewOperatorDelegator(dbStorage, bus)
	delegator.Start()
	defer delegator.Stop()

	poller := events.NewWastePoller(dbStorage.Ledger, bus, envConfig.WastePollInterval)
	if err := poller.Start(); err != nil {
		logrus.WithError(err).Fatal("poller.Start")
		return
	}
	defer poller.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Config:   envConfig,
			Service:  svc,
			Operator: delegator,
			Bus:      bus,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
