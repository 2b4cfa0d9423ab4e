// Command captest exercises the Capital.com client against the demo
// environment: it logs in, searches markets and, with -trade, runs a small
// position round trip (create, confirm, close).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/betbot/gocapital/pkg/capital"
	"github.com/betbot/gocapital/pkg/config"
	"github.com/betbot/gocapital/pkg/logger"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config")
		envFile    = flag.String("env", ".env", "dotenv file with CAPITAL_* credentials")
		search     = flag.String("search", "EURUSD", "market search term")
		trade      = flag.Bool("trade", false, "place and close a small demo position")
		epic       = flag.String("epic", "EURUSD", "epic used with -trade")
		size       = flag.Float64("size", 1, "position size used with -trade")
	)
	flag.Parse()

	if err := run(*configPath, *envFile, *search, *trade, *epic, *size); err != nil {
		fmt.Fprintln(os.Stderr, "captest:", err)
		os.Exit(1)
	}
}

func run(configPath, envFile, search string, trade bool, epic string, size float64) error {
	// Credentials may come from the shell instead; a missing .env is fine.
	_ = godotenv.Load(envFile)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		OutputFile: cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		return err
	}

	client := capital.NewClient(capital.Config{
		Identifier:  cfg.Identifier,
		APIKey:      cfg.APIKey,
		APIPassword: cfg.APIPassword,
		UseDemo:     cfg.UseDemo,
	})

	ctx := context.Background()
	if err := client.Login(ctx); err != nil {
		return err
	}

	markets, err := client.SearchMarkets(ctx, search)
	if err != nil {
		return err
	}
	logger.Infof("found %d markets for %q", len(markets), search)
	for i, m := range markets {
		if i >= 5 {
			break
		}
		logger.Infof("  epic=%v name=%v", m["epic"], m["instrumentName"])
	}

	if !trade {
		return nil
	}
	return roundTrip(ctx, client, epic, size)
}

func roundTrip(ctx context.Context, client *capital.Client, epic string, size float64) error {
	ref, err := client.CreatePosition(ctx, capital.PositionRequest{
		Epic:      epic,
		Direction: "BUY",
		Size:      size,
	})
	if err != nil {
		return err
	}
	logger.Infof("position submitted, dealReference=%s", ref)

	conf, err := client.Confirm(ctx, ref)
	if err != nil {
		return err
	}
	dealID := conf.Str("dealId")
	logger.Infof("confirmation status=%s dealId=%s", conf.Str("dealStatus"), dealID)
	if dealID == "" {
		return fmt.Errorf("confirmation carried no dealId")
	}

	// Let the position settle before closing it again.
	time.Sleep(2 * time.Second)

	if _, err := client.ClosePosition(ctx, dealID); err != nil {
		return err
	}
	logger.Infof("position %s closed", dealID)

	positions, err := client.ListPositions(ctx)
	if err != nil {
		return err
	}
	out, _ := json.Marshal(positions.Fields)
	logger.Infof("open positions: %s", out)
	return nil
}
