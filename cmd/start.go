package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"recon-manager/core/config"
	"recon-manager/core/loader"
	"recon-manager/core/logger"
	"recon-manager/core/middleware/rayid"
	"recon-manager/core/reconcile"

	"recon-manager/feature/integrity"
	"recon-manager/feature/reconciliation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "recon-manager/docs/swagger"
)

// @title Recon Manager API
// @version 1.0
// @description Three-way transaction reconciliation between a primary ledger and two processor exports.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciliation server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		logg = logg.With(zap.String("service", cfg.Server.Name))

		// 3. Build the engine
		engine, err := reconcile.NewEngine(cfg.Reconcile)
		if err != nil {
			logg.Fatal("Invalid reconciliation settings", zap.Error(err))
		}

		// 4. Connect the archive (optional)
		deps, err := openArchive(context.Background(), cfg, logg)
		if err != nil {
			logg.Fatal("Failed to open run archive", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			AppName:               cfg.Server.Name,
			BodyLimit:             cfg.Server.BodyLimit(),
			ReadTimeout:           cfg.Server.ReadTimeout(),
			WriteTimeout:          cfg.Server.WriteTimeout(),
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		service := reconciliation.NewService(engine, cfg.Upload, deps.archive, logg)
		mgr.Register(reconciliation.NewFeature(service, logg))
		mgr.Register(integrity.NewFeature(deps.client, cfg.Storage.Bucket, cfg.Storage.Region, logg, deps.db, cfg.Archive.Enabled))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Swagger Documentation and liveness
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/health", integrity.HealthHandler(cfg.Server.Name))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
