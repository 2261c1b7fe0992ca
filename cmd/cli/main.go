package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/shortener-client/internal/buildinfo"
	"github.com/dmitrijs2005/shortener-client/internal/client/cli"
	"github.com/dmitrijs2005/shortener-client/internal/client/client"
	"github.com/dmitrijs2005/shortener-client/internal/client/config"
	"github.com/dmitrijs2005/shortener-client/internal/client/services"
	"github.com/dmitrijs2005/shortener-client/internal/client/tokenstore"
	"github.com/dmitrijs2005/shortener-client/internal/filex"
	"github.com/dmitrijs2005/shortener-client/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// .env may carry SHORTENER_CONFIG
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("error loading .env file: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.LoadConfig(os.Args[1:])); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer func() { _ = z.Sync() }()
	}

	tokens, closeStore, err := openTokenStore(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer closeStore()

	var app *cli.App
	terminate := services.NewSessionTerminator(tokens, logger, func() { app.SessionEnded() })

	api := client.NewHTTPClient(cfg.ServerBaseURL, tokens, terminate, logger.With("component", "http_client"))
	app = cli.NewApp(
		services.NewAuthService(api, tokens),
		services.NewLinkService(api),
		logger,
		os.Stdin,
		os.Stdout,
	)

	logger.Info(ctx, "starting", "server", cfg.ServerBaseURL, "database", cfg.DatabasePath)
	return app.Run(ctx)
}

func openTokenStore(ctx context.Context, path string) (client.TokenStore, func(), error) {
	if path == config.MemoryDatabase {
		return tokenstore.NewMemoryStore(), func() {}, nil
	}

	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, nil, err
	}

	db, err := tokenstore.OpenDatabase(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return tokenstore.NewSQLiteStore(db), func() { _ = db.Close() }, nil
}
