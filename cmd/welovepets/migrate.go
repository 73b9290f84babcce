package main

import (
	"welovepets/internal/adapters/storage"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema for the configured SQL store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		return storage.Migrate(cmd.Context(), cfg.Store, log)
	},
}
