package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ehsaniara/peerflow/internal/modes"
	"github.com/ehsaniara/peerflow/pkg/config"
	"github.com/ehsaniara/peerflow/pkg/logger"
	"github.com/ehsaniara/peerflow/pkg/version"

	"github.com/spf13/pflag"
	_ "go.uber.org/automaxprocs"
)

func main() {
	configPath := pflag.String("config", "", "Path to the server configuration file")
	showVersion := pflag.Bool("version", false, "Print version information and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Print(version.GetLongVersion("peerflow"))
		return
	}

	cfg, path, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initializeLogging(cfg)

	mainLogger := logger.WithField("component", "main")
	mainLogger.Debug("configuration loaded", "path", path)

	if err := modes.RunServer(cfg); err != nil {
		mainLogger.Error("peerflow failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		return config.LoadConfig()
	}
	cfg, err := config.LoadConfigFromPath(path)
	return cfg, path, err
}

func initializeLogging(cfg *config.Config) {
	if level, err := logger.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	} else {
		log.Printf("Invalid log level '%s', using INFO", cfg.Logging.Level)
		logger.SetLevel(logger.INFO)
	}

	logger.SetFormat(cfg.Logging.Format)

	if cfg.Logging.Output != "stdout" && cfg.Logging.Output != "" {
		f, err := os.OpenFile(cfg.Logging.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Printf("Failed to open log file %s, using stdout: %v", cfg.Logging.Output, err)
			return
		}
		logger.SetOutput(f)
	}
}
