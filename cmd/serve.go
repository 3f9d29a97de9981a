package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"catalog-sync/core/logger"
	"catalog-sync/core/middleware"
	"catalog-sync/feature/webhook"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd starts the webhook receiver.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webhook receiver",
	Long:  `Starts the HTTP server that receives upstream change notifications and applies them to the local store.`,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	fapp := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	// RayID first so every subsequent log line can be correlated
	fapp.Use(middleware.RayID())
	fapp.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(a.logger, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request failed", zap.Error(err))
		}
		return err
	})

	handler := webhook.NewHandler(a.syncer, a.logger)
	handler.RegisterRoutes(fapp)

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		a.logger.Info("shutting down webhook server")
		_ = fapp.Shutdown()
	}()

	a.logger.Info("webhook server listening", zap.String("port", a.cfg.Server.Port))
	return fapp.Listen(a.cfg.Server.Address())
}
