package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "usikit",
	Short: "usikit inspects USI protocol lines",
	Long: `usikit parses, classifies and re-serializes lines of the USI shogi
protocol, for debugging engines and GUIs.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
