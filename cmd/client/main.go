package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	httpClient "github.com/iudanet/fallwatch/internal/client/api"
	"github.com/iudanet/fallwatch/internal/client/auth"
	"github.com/iudanet/fallwatch/internal/client/cli"
	"github.com/iudanet/fallwatch/internal/client/config"
	"github.com/iudanet/fallwatch/internal/client/dashboard"
	"github.com/iudanet/fallwatch/internal/client/iocli"
	"github.com/iudanet/fallwatch/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Настройки из .env и окружения, флаги имеют приоритет
	cfg := config.Load()

	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.ServerURL, "Server URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	// Открываем BoltDB storage для токена сессии
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент. Обработчик отклоненного токена играет роль
	// редиректа на страницу логина из веб-версии.
	apiClient := httpClient.NewClient(*serverURL,
		httpClient.WithTokenStorage(boltStorage),
		httpClient.WithAuthRejectedHandler(func() {
			fmt.Fprintln(os.Stderr, "Session expired. Run 'fallwatch login' to authenticate again.")
		}),
	)

	// Восстанавливаем токен прошлой сессии, если он есть
	if err := apiClient.RestoreSession(ctx); err != nil {
		slog.Warn("failed to restore session", "error", err)
	}

	session := auth.NewSession(apiClient, nil)
	board := dashboard.NewService(apiClient, nil)

	c := cli.New(iocli.NewStdio(), apiClient, session, board)

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			cli.PrintUsage()
		}
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("FallWatch Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
