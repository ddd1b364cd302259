package nourish

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir     string
	storageKind string
	envFile     string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "nourish",
	Short: "nourish tracks calories, macros, streaks, and water from your terminal",
	Long:  "nourish is a local-first calorie and macro tracker with food search, barcode lookup, an AI assistant, and gamified streaks, levels, and achievements.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Data directory (default per-user config dir)")
	rootCmd.PersistentFlags().StringVar(&storageKind, "storage", "", "Storage backend: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Path to .env file with API keys")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
}
