package main

import (
	"log"
	"time"

	"github.com/atkinsguitar/pos-api/internal/application/service"
	"github.com/atkinsguitar/pos-api/internal/config"
	"github.com/atkinsguitar/pos-api/internal/infrastructure/database"
	infraRepo "github.com/atkinsguitar/pos-api/internal/infrastructure/repository"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/handler"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/middleware"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/routes"
	"github.com/atkinsguitar/pos-api/pkg/printer"
	"github.com/atkinsguitar/pos-api/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Fatalf("failed to seed default data: %v", err)
	}

	device, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	})
	if err != nil {
		log.Fatalf("failed to configure printer: %v", err)
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Repositories
	productRepo := infraRepo.NewProductRepository(db)
	txnRepo := infraRepo.NewTransactionRepository(db)
	userRepo := infraRepo.NewUserRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)
	idempotencyRepo := infraRepo.NewIdempotencyRepository(db)
	analyticsRepo := infraRepo.NewAnalyticsRepository(db)
	backupRepo := infraRepo.NewBackupRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)
	checkoutService := service.NewCheckoutService(productRepo, txnRepo, userRepo)
	transactionService := service.NewTransactionService(txnRepo)
	receiptService := service.NewReceiptService(txnRepo, settingsRepo)
	reportService := service.NewReportService(analyticsRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	backupService := service.NewBackupService(backupRepo)
	printerService := service.NewPrinterService(receiptService, device)

	// Expired idempotency keys are swept in the background.
	go middleware.CleanupExpiredKeys(idempotencyRepo, time.Hour)

	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService, userService),
		Product:     handler.NewProductHandler(productService),
		Checkout:    handler.NewCheckoutHandler(checkoutService, receiptService),
		Transaction: handler.NewTransactionHandler(transactionService, receiptService),
		Report:      handler.NewReportHandler(reportService),
		Settings:    handler.NewSettingsHandler(settingsService),
		User:        handler.NewUserHandler(userService),
		Backup:      handler.NewBackupHandler(backupService),
		Printer:     handler.NewPrinterHandler(printerService),
	}

	router := routes.Setup(cfg, handlers, jwtManager, idempotencyRepo)

	addr := ":" + cfg.App.Port
	log.Printf("%s listening on %s (env=%s)", cfg.App.Name, addr, cfg.App.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
