package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/commhealth/screening-record-service/internal/system/config"
	"github.com/commhealth/screening-record-service/internal/system/database/client"
	"github.com/commhealth/screening-record-service/internal/system/log"
	"github.com/commhealth/screening-record-service/internal/system/managers"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "config/deployment.yaml", "Path to the deployment configuration file")
	flag.Parse()

	envFiles, err := filepath.Glob("config/*.env")
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	location, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		logger.Fatal("Invalid timezone in configuration", log.String("timezone", cfg.Server.Timezone), log.Error(err))
	}

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := client.NewMongoClient(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.Database)
	connectCancel()
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", log.Error(err))
	}
	logger.Info("Connected to MongoDB", log.String("database", cfg.MongoDB.Database))

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, mongoClient, cfg.MongoDB.PersonCollection, location)
	if err := serviceManager.RegisterServices(); err != nil {
		logger.Fatal("Failed to register services", log.Error(err))
	}

	serverAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: enableCORS(mux, cfg.CORS.AllowedOrigin),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Screening record service starting", log.String("addr", serverAddr))
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("Shutting down", log.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("Server stopped", log.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)
	if err := mongoClient.Close(shutdownCtx); err != nil {
		logger.Error("Failed to close MongoDB connection", log.Error(err))
	}
}

func enableCORS(next http.Handler, allowedOrigin string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, Content-Length")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
