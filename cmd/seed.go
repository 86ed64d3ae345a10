package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/stockforge/internal/database"
	"github.com/Lumos-Labs-HQ/stockforge/internal/generator"
)

var (
	seedTruncate bool
	seedBatch    int
	seedPush     bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a dataset and insert it into the database",
	Long: `Generate the full entity graph and insert it into the database named by
the configured environment variable (DATABASE_URL by default). Collections
are inserted in dependency order inside one transaction, so a failed run
leaves the database untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		opts := generatorOptions(cfg)
		color.Cyan("⚙️  Generating dataset (preset=%s, seed=%d)...", opts.Preset, opts.Seed)

		ds, err := generator.Generate(opts)
		if err != nil {
			return err
		}

		conn, err := database.NewConnection(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		if seedPush {
			if err := conn.Push(cmd.Context()); err != nil {
				return err
			}
		}

		return conn.Seed(cmd.Context(), ds, database.SeedOptions{
			Truncate: seedTruncate,
			Batch:    seedBatch,
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVar(&genPreset, "preset", "", "size preset: small, medium or large")
	seedCmd.Flags().IntVar(&genProducts, "products", 0, "number of products (overrides preset)")
	seedCmd.Flags().IntVar(&genVendors, "vendors", 0, "number of vendors (overrides preset)")
	seedCmd.Flags().IntVar(&genCustomers, "customers", 0, "number of customers (overrides preset)")
	seedCmd.Flags().IntVar(&genLocations, "locations", 0, "number of locations (overrides preset)")
	seedCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 = current time)")
	seedCmd.Flags().BoolVar(&seedTruncate, "truncate", false, "clear target tables before inserting")
	seedCmd.Flags().IntVar(&seedBatch, "batch", 0, "rows per insert statement (default 100)")
	seedCmd.Flags().BoolVar(&seedPush, "push", false, "create the schema before seeding")
}
