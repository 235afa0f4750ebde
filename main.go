package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-life/utils"
)

func main() {
	var (
		configPath  = flag.String("config", "config.json", "path to a JSON configuration file")
		policy      = flag.String("policy", "", "construction policy: empty, striped, random, glider")
		generations = flag.Int("generations", -1, "maximum generations, 0 runs until interrupted")
		seed        = flag.Int64("seed", 0, "seed for the random policy, 0 picks one from the clock")
		headless    = flag.Bool("headless", false, "run without terminal rendering")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Printf("using default configuration: %v", err)
		config = utils.DefaultConfig()
	}
	if *policy != "" {
		config.Policy = *policy
	}
	if *generations >= 0 {
		config.MaxGenerations = *generations
	}
	if *seed != 0 {
		config.Seed = *seed
	}
	if *headless {
		config.Render = false
	}

	if err := run(config); err != nil {
		log.Fatalf("%+v", err)
	}
}

// run plays one game until it finishes or the process is interrupted
func run(config utils.Config) error {
	g, err := newGame(config, os.Stdout)
	if err != nil {
		return err
	}
	log.Printf("grid: %dx%d | policy: %s | initial living cells: %d",
		g.grid.Width(), g.grid.Height(), config.Policy, g.grid.CountLivingCells())

	// Handle Ctrl+C gracefully
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runCtx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	eg, ctx := errgroup.WithContext(runCtx)
	eg.Go(func() error {
		defer cancel()
		return g.run(ctx)
	})
	eg.Go(func() error {
		<-ctx.Done()
		if sigCtx.Err() != nil {
			log.Println("shutting down gracefully...")
		}
		return nil
	})

	err = eg.Wait()
	g.summary()
	return err
}
