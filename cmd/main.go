package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/senyabanana/quote-service/internal/db"
	"github.com/senyabanana/quote-service/internal/handlers"
	"github.com/senyabanana/quote-service/internal/mailer"
	"github.com/senyabanana/quote-service/internal/payments"
	"github.com/senyabanana/quote-service/internal/repository"
	"github.com/senyabanana/quote-service/internal/router"
	"github.com/senyabanana/quote-service/internal/router/config"
	"github.com/senyabanana/quote-service/internal/services"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	runDBMigration(cfg.MigrationURL, cfg.PostgresConn)

	dbPool, err := db.InitDb(cfg)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer dbPool.Close()

	logger := log.New(os.Stdout, "INFO: ", log.LstdFlags)

	sellerRepo := repository.NewPostgresSellerRepository(dbPool)
	requestRepo := repository.NewPostgresRequestRepository(dbPool)
	offerRepo := repository.NewPostgresOfferRepository(dbPool)
	paymentRepo := repository.NewPostgresPaymentRepository(dbPool)

	mailTransport := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	processor := payments.NewCheckoutClient(cfg.PaymentAPIURL, cfg.PaymentAPIKey)

	sellerService := services.NewSellerService(sellerRepo)
	matcherService := services.NewMatcherService(sellerRepo, cfg.MaxNotifiedSellers)
	notificationService := services.NewNotificationService(mailTransport, logger, cfg.PublicBaseURL)
	requestService := services.NewRequestService(requestRepo, offerRepo, matcherService, notificationService, logger)
	offerService := services.NewOfferService(offerRepo, requestRepo, sellerRepo, cfg.OfferListLimit)
	escrowService := services.NewEscrowService(
		offerRepo,
		requestRepo,
		paymentRepo,
		processor,
		logger,
		cfg.CommissionRate,
		cfg.PaymentSuccessURL,
		cfg.PaymentCancelURL,
		time.Duration(cfg.ProcessorTimeoutSec)*time.Second)

	sellerHandler := handlers.NewSellerHandler(sellerService, logger, 5*time.Second)
	requestHandler := handlers.NewRequestHandler(requestService, logger, 5*time.Second)
	offerHandler := handlers.NewOfferHandler(offerService, escrowService, logger, 30*time.Second)
	paymentHandler := handlers.NewPaymentHandler(escrowService, logger, 5*time.Second)

	routes := router.InitRoutes(sellerHandler, requestHandler, offerHandler, paymentHandler)

	log.Printf("server is listening on %s...", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, routes); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal("cannot create a new migrate instance", err)
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("failed to run migrate up:", err)
	}
	log.Println("db migrated successfully")
}
