package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/myflix-cli/internal/buildinfo"
	"github.com/dmitrijs2005/myflix-cli/internal/client/cli"
	"github.com/dmitrijs2005/myflix-cli/internal/client/config"
	"github.com/dmitrijs2005/myflix-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	// Interactive output goes to stdout; diagnostics stay on stderr.
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)

}
