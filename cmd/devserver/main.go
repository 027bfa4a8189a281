package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrijs2005/myflix-cli/internal/devserver"
	"github.com/dmitrijs2005/myflix-cli/internal/logging"
)

// devserver runs a self-contained myFlix API with seeded movies and
// in-memory users. It exists for local development and manual testing
// of the CLI; data does not survive a restart.
func main() {

	addr := flag.String("a", "localhost:8080", "address to listen on")
	secret := flag.String("k", "", "token signing key (random if empty)")
	flag.Parse()

	if v, ok := os.LookupEnv("MYFLIX_DEV_ADDR"); ok {
		*addr = v
	}
	if v, ok := os.LookupEnv("MYFLIX_DEV_KEY"); ok {
		*secret = v
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	key := []byte(*secret)
	if len(key) == 0 {
		key = devserver.RandomKey()
	}

	srv := devserver.New(key, devserver.DefaultTokenTTL, logger)

	ctx := context.Background()
	logger.Info(ctx, "dev server listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, srv.Handler()); err != nil {
		logger.Error(ctx, "server stopped", "err", err)
		os.Exit(1)
	}
}
