package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tallerix/internal/config"
	"tallerix/internal/handlers"
	"tallerix/internal/jobs"
	"tallerix/internal/middleware"
	"tallerix/internal/repositories"
	"tallerix/internal/services"
	"tallerix/internal/sessions"
	"tallerix/pkg/database"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	sessionStore := sessions.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)

	branchRepo := repositories.NewBranchRepo(pool)
	customerRepo := repositories.NewCustomerRepo(pool)
	employeeRepo := repositories.NewEmployeeRepo(pool)
	supplierRepo := repositories.NewSupplierRepo(pool)
	vehicleCatalogRepo := repositories.NewVehicleCatalogRepo(pool)
	vehicleRepo := repositories.NewVehicleRepo(pool)
	serviceRepo := repositories.NewServiceRepo(pool)
	supplyRepo := repositories.NewSupplyRepo(pool)
	storeRepo := repositories.NewStoreRepo(pool)
	reservationRepo := repositories.NewReservationRepo(pool)
	workOrderRepo := repositories.NewWorkOrderRepo(pool)
	statsRepo := repositories.NewStatsRepo(pool)

	branchService := services.NewBranchService(branchRepo)
	customerService := services.NewCustomerService(customerRepo)
	employeeService := services.NewEmployeeService(employeeRepo)
	supplierService := services.NewSupplierService(supplierRepo)
	vehicleService := services.NewVehicleService(vehicleRepo, vehicleCatalogRepo)
	catalogService := services.NewCatalogService(serviceRepo)
	inventoryService := services.NewInventoryService(supplyRepo)
	storeService := services.NewStoreService(storeRepo)
	reservationService := services.NewReservationService(reservationRepo)
	workOrderService := services.NewWorkOrderService(workOrderRepo)
	statsService := services.NewStatsService(statsRepo)

	registry := &handlers.Registry{
		Sessions:     handlers.NewSessionHandlers(sessionStore, cfg.SessionTTL),
		Branches:     handlers.NewBranchHandlers(branchService),
		Customers:    handlers.NewCustomerHandlers(customerService),
		Employees:    handlers.NewEmployeeHandlers(employeeService),
		Suppliers:    handlers.NewSupplierHandlers(supplierService),
		Vehicles:     handlers.NewVehicleHandlers(vehicleService),
		Catalog:      handlers.NewCatalogHandlers(catalogService),
		Inventory:    handlers.NewInventoryHandlers(inventoryService),
		Store:        handlers.NewStoreHandlers(storeService),
		Reservations: handlers.NewReservationHandlers(reservationService),
		WorkOrders:   handlers.NewWorkOrderHandlers(workOrderService),
		Stats:        handlers.NewStatsHandlers(statsService),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.BranchContext(sessionStore))

	registry.RegisterRoutes(e)

	scheduler, err := jobs.NewScheduler(jobs.NewLowStockChecker(supplyRepo), cfg.LowStockInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build job scheduler")
	}
	scheduler.Start()

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("starting server")
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := scheduler.Stop(); err != nil {
		log.Error().Err(err).Msg("failed to stop job scheduler")
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down server")
	}
}
