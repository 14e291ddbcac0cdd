package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"HealthFeas/internal/di"
	"HealthFeas/pkg/config"

	"gopkg.in/yaml.v3"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	checkOnly := flag.Bool("check-config", false, "print the effective configuration and exit")
	flag.Parse()

	if err := run(*configPath, *checkOnly); err != nil {
		fmt.Fprintf(os.Stderr, "healthfeas: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, checkOnly bool) error {
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if checkOnly {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		shown := *cfg
		if shown.Cache.Redis.Password != "" {
			shown.Cache.Redis.Password = "redacted"
		}
		return enc.Encode(&shown)
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	// blocks until SIGINT/SIGTERM
	return app.Run(context.Background())
}
