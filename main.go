package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"agentverse-browser/internal/api"
	"agentverse-browser/internal/config"
	"agentverse-browser/internal/demoserver"
	"agentverse-browser/internal/logger"
	"agentverse-browser/internal/shell"
)

var (
	Version   = "1.0.0"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "agentverse.yaml", "path to the config file")
	demoMode := flag.Bool("demo", false, "start the embedded demo catalog and browse it")
	showVersion := flag.Bool("version", false, "print version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("agentverse-browser %s\n", Version)
		fmt.Printf("build time: %s\n", BuildTime)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *demoMode {
		srv := demoserver.New(&cfg.Demo, demoserver.NewCatalog(demoserver.Seed()), log)
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("start demo server")
		}
		defer srv.Shutdown()
		cfg.API.BaseURL = fmt.Sprintf("http://localhost:%d/api", cfg.Demo.Port)
		log.Info().Str("base_url", cfg.API.BaseURL).Msg("demo mode")
	}

	client := api.NewClient(&cfg.API)
	sh := shell.New(client, &cfg.Browser, log, os.Stdin, os.Stdout)

	if err := sh.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("shell exited")
	}
}
