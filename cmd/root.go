package cmd

import (
	"fmt"
	"os"

	"github.com/jwkuo/bobasim/internal/models"
	"github.com/jwkuo/bobasim/internal/simulator"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bobasim",
	Short: "Simulates a boba stand business day by day",
	Long:  `bobasim is a CLI tool that runs a small beverage-stand business simulation: per-turn customer arrivals, queueing and service against a perishable inventory, and daily accounting with wages, rent, advertising and loans.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		sim := simulator.NewSimulator(cfg)
		sim.Run()
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bobasim.json)")

	rootCmd.Flags().Int("seed", 42, "Random seed for simulation")
	rootCmd.Flags().Int("days", 3, "Number of business days to simulate")
	rootCmd.Flags().Int("turns-per-day", 32, "Turns per day (15 simulated minutes each)")
	rootCmd.Flags().Float64("starting-cash", 100.0, "Opening cash balance")
	rootCmd.Flags().Float64("max-ad-budget", 500.0, "Daily advertising spend cap")
	rootCmd.Flags().Float64("ad-budget", 0, "Advertising spend per day")
	rootCmd.Flags().Bool("allow-substitution", false, "Retry out-of-stock orders against affordable in-stock drinks")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("output-format", "console", "Output format: console, json, csv, parquet, postgres")
	rootCmd.Flags().String("output-path", "", "Output directory (if not using console or Kafka)")
	rootCmd.Flags().String("output-destination", "local", "Parquet destination: local or s3")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("json")
		viper.SetConfigName(".bobasim")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
