package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/config"
	appHTTP "github.com/shiftboard/shiftboard-backend-go/internal/handler/http"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/feed"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/kvstore"
	dashboardService "github.com/shiftboard/shiftboard-backend-go/internal/service/dashboard"
	"github.com/shiftboard/shiftboard-backend-go/internal/service/override"
	"github.com/shiftboard/shiftboard-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	})).With(
		slog.String("app", "shiftboard"),
		slog.String("env", cfg.App.Env),
	)

	kv, err := kvstore.New(cfg.Data.Dir)
	if err != nil {
		fmt.Println("Error initializing data store:", err)
		return
	}

	feedClient := feed.NewClient(cfg.Feed.Source, logger)

	overrideStore := override.NewStore(kv, logger)
	settingsSvc := settings.NewService(kv, logger)
	dashboardSvc := dashboardService.NewService(feedClient, overrideStore, settingsSvc)

	// Warm the feed snapshot. If the source is unreachable the server
	// still starts; the first request will retry the load.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := feedClient.Load(ctx); err != nil {
		logger.Warn("initial feed load failed", slog.Any("error", err))
	}
	cancel()

	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	overrideHandler := appHTTP.NewOverrideHandler(overrideStore, logger)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc, logger)

	router := appHTTP.NewRouter(cfg, dashboardHandler, overrideHandler, settingsHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func logLevel(raw string) slog.Level {
	switch raw {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
