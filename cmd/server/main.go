package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crewmatch/internal/app"
	"crewmatch/internal/config"
	"crewmatch/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err == nil {
		err = cfg.RequireServer()
	}
	if err != nil {
		fallback, _ := logger.New(false, false)
		fallback.Fatal("failed to load config", zap.Error(err))
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		panic(err)
	}
	log = log.With(zap.String("app", cfg.App.AppName), zap.String("env", cfg.App.Environment))

	container, err := app.NewContainer(cfg, log)
	if err != nil {
		log.Fatal("failed to connect dependencies", zap.Error(err))
	}

	bootstrap, cleanup, err := app.Bootstrap(cfg, container)
	if err != nil {
		_ = container.Close()
		log.Fatal("failed to bootstrap app", zap.Error(err))
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Warn("cleanup error", zap.Error(err))
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatal("invalid HTTP port", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", addr))
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", zap.Error(err))
		}
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			log.Warn("shutdown error", zap.Error(err))
		}
	}
}
