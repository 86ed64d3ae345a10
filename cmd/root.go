package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lumos-Labs-HQ/stockforge/internal/config"
)

var (
	cfgFile string
	Version = "1.3.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════════════════╗",
		"║  ███████╗████████╗ ██████╗  ██████╗██╗  ██╗███████╗ ██████╗      ║",
		"║  ██╔════╝╚══██╔══╝██╔═══██╗██╔════╝██║ ██╔╝██╔════╝██╔════╝      ║",
		"║  ███████╗   ██║   ██║   ██║██║     █████╔╝ █████╗  ██║  ███╗     ║",
		"║  ╚════██║   ██║   ██║   ██║██║     ██╔═██╗ ██╔══╝  ██║   ██║     ║",
		"║  ███████║   ██║   ╚██████╔╝╚██████╗██║  ██╗██║     ╚██████╔╝     ║",
		"║  ╚══════╝   ╚═╝    ╚═════╝  ╚═════╝╚═╝  ╚═╝╚═╝      ╚═════╝      ║",
		"║                                                                  ║",
		"║        📦 Deterministic inventory fixture generator 📦           ║",
		"╚══════════════════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("             ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "stockforge",
	Short: "Deterministic synthetic data for a manufacturing inventory schema",
	Long: `
StockForge generates referentially consistent mock data for a manufacturing
inventory/ERP schema: vendors, customers, products with bills of materials,
purchase and sales orders, and the stock operations between them.

The same seed always produces the same dataset, so fixtures can be
regenerated instead of checked in.

Output targets:
- JSON or YAML fixture files (generate)
- PostgreSQL, MySQL or SQLite databases (push, seed)`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("StockForge CLI version %s\n", Version)
			os.Exit(0)
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./stockforge.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigFile(config.ConfigFileName)
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()

	// A missing config file is fine; defaults cover everything.
	viper.ReadInConfig()
}

// loadConfig is the shared entry for every subcommand that needs settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
