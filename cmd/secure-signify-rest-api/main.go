// cmd/secure-signify-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/Ibrahim98s/secure-signify-vault/internal/api/rest/v1"
	"github.com/Ibrahim98s/secure-signify-vault/internal/app"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/certificates"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/timestamps"
	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/cryptography"
	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/persistence"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/config"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	keyPairManager     crypto.KeyPairManager
	signatureEngine    crypto.SignatureEngine
	digestEngine       crypto.DigestEngine
	certificateService certificates.CertificateService
	timestampService   timestamps.TimestampService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	certificateRepo, err := persistence.NewGormCertificateRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate repository: %w", err)
	}

	timestampRepo, err := persistence.NewGormTimestampRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create timestamp repository: %w", err)
	}

	// Initialize core components
	keyPairManager, err := cryptography.NewKeyPairManager(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair manager: %w", err)
	}

	signatureEngine, err := cryptography.NewSignatureEngine(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create signature engine: %w", err)
	}

	digestEngine, err := cryptography.NewDigestEngine(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create digest engine: %w", err)
	}

	certificateIssuer, err := cryptography.NewCertificateIssuer(nil, nil, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate issuer: %w", err)
	}

	timestampAuthority, err := cryptography.NewTimestampAuthority(&cfg.Authority, nil, nil, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create timestamp authority: %w", err)
	}

	// Initialize services
	certificateService, err := app.NewCertificateService(certificateIssuer, certificateRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate service: %w", err)
	}

	timestampService, err := app.NewTimestampService(timestampAuthority, timestampRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create timestamp service: %w", err)
	}

	return &appDependencies{
		keyPairManager:     keyPairManager,
		signatureEngine:    signatureEngine,
		digestEngine:       digestEngine,
		certificateService: certificateService,
		timestampService:   timestampService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.keyPairManager,
		deps.signatureEngine,
		deps.digestEngine,
		deps.certificateService,
		deps.timestampService,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
