package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fioparser/core/database"
	"fioparser/core/loader"
	"fioparser/core/logger"
	"fioparser/core/middleware/auth"
	"fioparser/core/middleware/rayid"

	"fioparser/feature/contacts"
	"fioparser/feature/parse"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "fioparser/docs/swagger"
)

// @title FIO Parser API
// @version 1.0
// @description Splits Russian full names and keeps amoCRM contact name fields in sync.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the name parsing and contact sync server",
	Long: `Starts the HTTP server, the periodic contact check and all enabled features.
Without a directory domain only the parse endpoint is served.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 1. Configuration, logger and dictionary
		rt, err := bootstrap(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		cfg := rt.cfg

		// 2. Checkpoint store (database is optional)
		var checkpoints contacts.CheckpointStore = contacts.NewMemoryCheckpointStore()
		if cfg.Database.Enabled {
			if db, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed, checkpoints kept in memory", zap.Error(err))
			} else {
				store := contacts.NewGormCheckpointStore(db)
				if err := store.Migrate(ctx); err != nil {
					logg.Warn("Checkpoint table migration failed, checkpoints kept in memory", zap.Error(err))
				} else {
					checkpoints = store
					logg.Info("Connected to checkpoint database")
				}
			}
		}

		// 3. Feature Loader
		mgr := loader.NewManager()
		mgr.Register(parse.NewFeature(parse.NewService(rt.resolver, cfg.Dictionary.FallbackSurname, logg)))

		var contactService *contacts.Service
		if client, err := rt.directoryClient(); err != nil {
			logg.Warn("Contact sync disabled", zap.Error(err))
		} else {
			contactService = contacts.NewService(client, rt.engine(client), checkpoints, cfg.Sync, cfg.Directory.Domain, logg)
			if err := contactService.Init(ctx); err != nil {
				logg.Warn("Failed to restore checkpoint", zap.Error(err))
			}
			logg.Info("Contact sync enabled", zap.String("directory", client.BaseURL()))
			if !client.Authorized(ctx) {
				logg.Warn("No directory access token configured; contact updates will fail")
			}
			mgr.Register(contacts.NewFeature(contactService, true))
		}

		// 4. Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID first to trace everything
		app.Use(rayid.New())
		app.Use(cors.New())

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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		if cfg.Server.AuthEnabled() {
			app.Use(auth.New(auth.Config{
				ApiKey: cfg.Server.ApiKey,
				Skip: func(c *fiber.Ctx) bool {
					return c.Method() == fiber.MethodOptions
				},
			}))
		} else {
			logg.Warn("API key not set, endpoints are unprotected")
		}

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server and poller
		go func() {
			logg.Info("Starting server",
				zap.String("addr", cfg.Server.ListenAddr()),
				zap.String("public_url", cfg.Server.PublicURL),
				zap.Strings("features", mgr.Loaded()),
			)
			if err := app.Listen(cfg.Server.ListenAddr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		pollerDone := make(chan struct{})
		go func() {
			defer close(pollerDone)
			if contactService != nil {
				contactService.RunPoller(ctx)
			}
		}()

		// 6. Graceful Shutdown
		<-ctx.Done()
		logg.Info("Shutting down server...")
		<-pollerDone
		if contactService != nil {
			_ = contactService.StopFullRun()
			contactService.WaitFullRun()
		}
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
