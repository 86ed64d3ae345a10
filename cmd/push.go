package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/stockforge/internal/database"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Create the inventory schema in the database",
	Long: `Create every table of the inventory schema in the target database. The
DDL ships with the binary and uses IF NOT EXISTS, so push is safe to re-run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		conn, err := database.NewConnection(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		return conn.Push(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
}
