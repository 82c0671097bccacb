package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%s not loaded)\n", *configPath)
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}

	g, err := newGame(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	displayGameInfo(os.Stdout, config, g)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = g.run(ctx, os.Stdout)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Println("\n🛑 Shutting down gracefully...")
	case err != nil:
		log.Fatalf("%+v", err)
	default:
		fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
	}
	displayFinalStats(os.Stdout, g.stats)
}
