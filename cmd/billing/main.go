package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/murugannagaraja781/billingsoftware/internal/billing/bootstrap"
	"github.com/murugannagaraja781/billingsoftware/internal/pkg/database"
	"github.com/murugannagaraja781/billingsoftware/internal/pkg/env"
	"github.com/murugannagaraja781/billingsoftware/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	httpPort := ":8080"
	storageBackend := bootstrap.BackendMemory
	defaultStoreId := "main-store"
	dbSettings := database.PostgresSettings{
		User:     "admin",
		Password: "password",
		Host:     "localhost",
		Port:     "5432",
		DBName:   "billing_db",
	}

	env.TrySetFromEnv(env.EnvHttpPort, &httpPort)
	env.TrySetFromEnv(env.EnvStorageBackend, &storageBackend)
	env.TrySetFromEnv(env.EnvDefaultStoreId, &defaultStoreId)
	env.TrySetFromEnv(env.EnvDatabaseHost, &dbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &dbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &dbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &dbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &dbSettings.DBName)

	app := bootstrap.NewBillingApp(bootstrap.Config{
		HttpPort:       httpPort,
		StorageBackend: storageBackend,
		DbSettings:     dbSettings,
		DefaultStoreId: defaultStoreId,
	}, defaultLogger)

	if err := app.Run(mainCtx); err != nil {
		defaultLogger.Error("billing app failed", "error", err)
	}

	app.Shutdown()
}
