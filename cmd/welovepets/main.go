package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"welovepets/internal/platform/config"
	"welovepets/internal/platform/logger"

	"github.com/spf13/cobra"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "welovepets",
	Short: "We Love Pets - adoption listings website",
	Long: `welovepets serves the adoption listings site: a home page with every
pet up for adoption and a detail page per pet.

Configuration comes from WELOVEPETS_* environment variables (and an optional .env file).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files to load if present")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup carga config y logger, comunes a todos los subcomandos.
func setup() (config.Config, logger.Logger, error) {
	cfg, err := config.Load(config.LoadOptions{EnvFiles: envFiles})
	if err != nil {
		return config.Config{}, nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App,
	})
	return cfg, log, nil
}
