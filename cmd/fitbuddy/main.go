package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/fitbuddy/internal/app"
	"github.com/alexanderramin/fitbuddy/internal/cli"
	"github.com/alexanderramin/fitbuddy/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config dir: env var or the current directory.
	cfgDir := os.Getenv("FITBUDDY_CONFIG_DIR")
	if cfgDir == "" {
		cfgDir = "."
	}
	cfg, err := config.Load(cfgDir)
	if err != nil {
		return err
	}

	// FITBUDDY_DB overrides the configured database path.
	if dbPath := os.Getenv("FITBUDDY_DB"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	rootCmd := cli.NewRootCmd(a)
	return rootCmd.Execute()
}
