package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagelpay/bagelpay-go/adapter/cli"
	"github.com/bagelpay/bagelpay-go/adapter/cli/checkout"
	"github.com/bagelpay/bagelpay-go/adapter/cli/customer"
	"github.com/bagelpay/bagelpay-go/adapter/cli/product"
	"github.com/bagelpay/bagelpay-go/adapter/cli/subscription"
	"github.com/bagelpay/bagelpay-go/adapter/cli/transaction"
	"github.com/bagelpay/bagelpay-go/bagelpay"
	"github.com/bagelpay/bagelpay-go/pkg/config"
	"github.com/bagelpay/bagelpay-go/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cli.SetLogger(logger)

	// Commands that never hit the API (help, version) still work without
	// a key, so a missing key is not fatal here.
	var cliApp *cli.App
	if cfg.APIKey != "" {
		client, err := bagelpay.New(bagelpay.Config{
			APIKey:   cfg.APIKey,
			TestMode: cfg.TestMode,
			BaseURL:  cfg.BaseURL,
			Timeout:  cfg.Timeout,
			Logger:   logger,
		})
		if err != nil {
			logger.Error("failed to create API client", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		cliApp = &cli.App{Client: client, Logger: logger}
	}
	cli.SetApp(cliApp)

	cli.AddCommand(product.Cmd)
	cli.AddCommand(checkout.Cmd)
	cli.AddCommand(transaction.Cmd)
	cli.AddCommand(subscription.Cmd)
	cli.AddCommand(customer.Cmd)

	cli.ExecuteContext(ctx)
}
