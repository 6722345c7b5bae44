package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/application"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	httpwrap "github.com/murugannagaraja781/billingsoftware/internal/billing/http"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/infrastructure/memory"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/infrastructure/postgres"
	"github.com/murugannagaraja781/billingsoftware/internal/notify"
	"github.com/murugannagaraja781/billingsoftware/internal/pkg/database"
	"github.com/murugannagaraja781/billingsoftware/internal/pkg/logging"
	"github.com/murugannagaraja781/billingsoftware/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 5 * time.Second

type BillingApp struct {
	cfg    Config
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewBillingApp(cfg Config, logger logging.Logger) *BillingApp {
	return &BillingApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *BillingApp) Run(ctx context.Context) error {
	var (
		catalog  domain.CatalogStore
		ledger   domain.TransactionLedger
		products domain.ProductRepository
		stores   domain.StoreRepository
	)

	switch a.cfg.StorageBackend {
	case BackendPostgres:
		dbURL := a.cfg.DbSettings.GetUrl()

		if err := database.MigrateDatabase(dbURL, migrations.FS, ".", "pgx", "postgres"); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		dbpool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		a.dbpool = dbpool

		txManager := database.NewDelegateTxManager(dbpool)

		catalog = postgres.NewCatalogStore(dbpool, a.logger)
		ledger = postgres.NewLedger(dbpool, txManager)
		products = postgres.NewProductRepository(dbpool)
		stores = postgres.NewStoreRepository(dbpool)
	case BackendMemory:
		catalogStore := memory.NewCatalogStore()

		catalog = catalogStore
		ledger = memory.NewLedger()
		products = catalogStore
		stores = memory.NewStoreRepository()
	default:
		return fmt.Errorf("unknown storage backend %q", a.cfg.StorageBackend)
	}

	broadcaster := notify.NewBroadcaster(a.logger)
	adjuster := domain.NewStockAdjuster(catalog)

	createCase := application.NewCreateTransactionCase(adjuster, ledger, broadcaster, a.logger)
	deleteCase := application.NewDeleteTransactionCase(adjuster, ledger, a.logger)
	listCase := application.NewListTransactionsCase(ledger)
	catalogCase := application.NewCatalogCase(products)
	storeCase := application.NewStoreDirectoryCase(stores)

	router := createRouter(createCase, deleteCase, listCase, catalogCase, storeCase, broadcaster)

	a.server = &http.Server{
		Addr:    a.cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		a.logger.Info("starting http server", "addr", a.cfg.HttpPort, "backend", a.cfg.StorageBackend)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

func (a *BillingApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err)
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}

	a.logger.Info("http server stopped")
}

func createRouter(
	createCase *application.CreateTransactionCase,
	deleteCase *application.DeleteTransactionCase,
	listCase *application.ListTransactionsCase,
	catalogCase *application.CatalogCase,
	storeCase *application.StoreDirectoryCase,
	broadcaster *notify.Broadcaster,
) *gin.Engine {
	transactionHandler := httpwrap.NewTransactionHandler(createCase, deleteCase, listCase)
	productHandler := httpwrap.NewProductHandler(catalogCase)
	storeHandler := httpwrap.NewStoreHandler(storeCase)
	eventsHandler := httpwrap.NewEventsHandler(broadcaster)

	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/transactions", transactionHandler.Create)
		api.GET("/transactions", transactionHandler.List)
		api.DELETE("/transactions/:"+httpwrap.TransactionIdKey, transactionHandler.Delete)

		api.GET("/products", productHandler.List)
		api.POST("/products", productHandler.Create)
		api.PUT("/products/:"+httpwrap.ProductIdKey, productHandler.Update)

		api.GET("/stores", storeHandler.List)
		api.POST("/stores", storeHandler.Create)

		api.GET("/events", eventsHandler.Stream)
	}

	return router
}
