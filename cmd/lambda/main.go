package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-lambda-listener/internal/config"
	"gin-lambda-listener/internal/handlers"
	"gin-lambda-listener/pkg/listener"

	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := newLogger(cfg)
	router := handlers.NewRouter(cfg, log)

	// Under Lambda the listener registers with the runtime instead of
	// binding a socket; otherwise the same router runs on a local server.
	if config.IsLambdaRuntime() {
		l := listener.New(router, listener.WithLogger(log))
		if err := l.Listen(); err != nil {
			log.Fatalf("Failed to start listener: %v", err)
		}
		return
	}

	runServer(cfg, log, router)
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// JSON lines are what CloudWatch expects from a Lambda function
	if config.IsLambdaRuntime() {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log
}

func runServer(cfg *config.Config, log *logrus.Logger, handler http.Handler) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Infof("Server started on port %s", cfg.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
