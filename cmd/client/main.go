package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/droplogistics/internal/client/cli"
	"github.com/dmitrijs2005/droplogistics/internal/client/config"
	"github.com/dmitrijs2005/droplogistics/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewTextLogger(os.Stderr, level)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
