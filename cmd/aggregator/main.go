package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"one-billion-row/internal/app"
	"one-billion-row/internal/shared/configs"
	"one-billion-row/internal/shared/svcerrors"

	"github.com/joho/godotenv"
	"github.com/pkg/profile"
	"github.com/spf13/pflag"
)

const (
	exitCodeOK    = 0
	exitCodeUsage = 64
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit status so that deferred work (profile flush,
// source unmapping) completes before os.Exit.
func run(args []string) int {
	// a missing .env file is not an error
	_ = godotenv.Load()

	flags := configs.NewFlagSet("aggregator")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitCodeOK
		}
		fmt.Fprintf(os.Stderr, "Invalid arguments: %v\n", err)
		return exitCodeUsage
	}
	configPath, _ := flags.GetString(configs.FlagConfig)

	// Load configuration
	cfg, err := configs.LoadConfig(configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return exitCodeUsage
	}

	if cfg.Profile.Enabled {
		defer profile.Start(profileMode(cfg.Profile.Mode), profile.ProfilePath(cfg.Profile.Dir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	// Initialize application
	application, err := app.New(cfg, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		return svcerrors.ExitCodeSoftware
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Aggregation failed: %v\n", err)
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			return svcErr.ExitCode
		}
		return svcerrors.ExitCodeSoftware
	}
	return exitCodeOK
}

func profileMode(mode string) func(*profile.Profile) {
	if mode == "mem" {
		return profile.MemProfile
	}
	return profile.CPUProfile
}
