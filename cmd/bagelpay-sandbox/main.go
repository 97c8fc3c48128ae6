package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagelpay/bagelpay-go/internal/sandbox/api"
	"github.com/bagelpay/bagelpay-go/internal/sandbox/store"
	"github.com/bagelpay/bagelpay-go/pkg/config"
	"github.com/bagelpay/bagelpay-go/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.SandboxAddr, "listen address")
	dsn := flag.String("dsn", cfg.SandboxDSN, "sqlite path (empty for in-memory)")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	st, err := store.Open(*dsn)
	if err != nil {
		logger.Error("failed to open store", "error", err, "dsn", *dsn)
		os.Exit(1)
	}
	defer st.Close()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           api.NewRouter(api.NewHandler(st, logger)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown error", "error", err)
		}
	}()

	logger.Info("sandbox server starting", "addr", *addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("sandbox server stopped")
}
