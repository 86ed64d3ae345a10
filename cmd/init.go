package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/stockforge/internal/config"
	"github.com/Lumos-Labs-HQ/stockforge/internal/database"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a StockForge project in the current directory",
	Long: `Create stockforge.config.json with defaults, the export and schema
directories, and a copy of the schema DDL for reference.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitializeProject(); err != nil {
			return err
		}

		cfg := config.DefaultConfig()
		if err := os.WriteFile(cfg.SchemaPath, []byte(database.Schema), 0644); err != nil {
			return err
		}

		color.Green("✅ Created %s", config.ConfigFileName)
		color.Green("✅ Wrote schema to %s", cfg.SchemaPath)
		color.Cyan("\nNext steps:")
		color.White("  1. Set %s in your environment or .env file", cfg.Database.URLEnv)
		color.White("  2. Run 'stockforge push' to create the schema")
		color.White("  3. Run 'stockforge seed --seed 42' to load data")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
