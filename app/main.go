package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/techdigest/techdigest/app/api"
	"github.com/techdigest/techdigest/app/auth"
	"github.com/techdigest/techdigest/app/blog"
	"github.com/techdigest/techdigest/app/cfg"
	"github.com/techdigest/techdigest/app/store"
	"github.com/techdigest/techdigest/app/summarize"
	"github.com/techdigest/techdigest/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Info("Starting TechDigest server", "version", appCfg.Version)

	kv, err := store.NewRedis(appCfg.RedisAddr, appCfg.RedisPassword, appCfg.RedisDB)
	if err != nil {
		slog.Error("Failed to connect to store", "addr", appCfg.RedisAddr, "error", err)
		os.Exit(1)
	}
	defer kv.Close()
	slog.Info("Connected to store", "addr", appCfg.RedisAddr)

	entryRepo := blog.NewRepository(kv)
	sourceRepo := blog.NewCustomSources(kv)
	statusRepo := tasks.NewStatusRepository(kv)
	authRepo := auth.NewRepository(kv)

	summarizer := summarize.NewClient(appCfg.AIEndpoint, appCfg.AIModel, appCfg.AIAccessKey)
	httpClient := &http.Client{Timeout: 30 * time.Second}

	slog.Info("Starting background scheduler", "workers", appCfg.WorkerCount, "interval", appCfg.RefreshInterval)
	scheduler := tasks.NewScheduler(entryRepo, sourceRepo, statusRepo, summarizer,
		httpClient, appCfg.UserAgent, time.Duration(appCfg.RefreshInterval)*time.Second, appCfg.WorkerCount)
	scheduler.Start()
	defer scheduler.Stop()

	apiHandler := api.NewHandler(entryRepo, sourceRepo, statusRepo, authRepo, authRepo,
		scheduler, kv, appCfg.PasswordSalt)
	server := api.NewServer(apiHandler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Shutdown complete")
}
