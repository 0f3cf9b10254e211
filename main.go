package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexacrm/landing/pkg/api"
	"github.com/nexacrm/landing/pkg/clients/airtable"
	"github.com/nexacrm/landing/pkg/clients/emailjs"
	"github.com/nexacrm/landing/pkg/clients/sheets"
	"github.com/nexacrm/landing/pkg/config"
	"github.com/nexacrm/landing/pkg/logger"
	"github.com/nexacrm/landing/pkg/services"
	"github.com/nexacrm/landing/static"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zl := logger.New(cfg)
	defer logger.Sync(zl)

	// Initialize API clients
	emailClient := emailjs.NewClient(
		cfg.Email.ServiceID,
		cfg.Email.TemplateID,
		cfg.Email.PublicKey,
		cfg.Email.BaseURL,
		nil,
	)

	// Initialize services
	submissionService := services.NewFormSubmissionService(
		emailClient,
		newRowRecorder(cfg, zl),
		cfg,
		zl,
	)

	gin.SetMode(cfg.ServerMode)

	handlers := api.NewHandlers(submissionService, cfg, zl)
	router := api.NewRouter(handlers, cfg.AllowedOrigin, static.FS, zl)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zl.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("Server forced to shut down", zap.Error(err))
	}
}

// newRowRecorder picks the spreadsheet backend, or none when the feature is off
func newRowRecorder(cfg *config.Config, zl *zap.Logger) services.RowRecorder {
	if !cfg.Sheets.Active() {
		zl.Info("Spreadsheet logging disabled or not configured")
		return nil
	}

	if cfg.Sheets.Provider == config.SheetsProviderAirtable {
		zl.Info("Recording waitlist rows in Airtable", zap.String("table", cfg.Sheets.AirtableTable))
		return airtable.NewClient(cfg.Sheets.AirtableAPIKey, cfg.Sheets.AirtableBaseID, cfg.Sheets.AirtableTable)
	}

	zl.Info("Recording waitlist rows through the sheets web-hook")
	return sheets.NewClient(cfg.Sheets.WebAppURL, nil)
}
