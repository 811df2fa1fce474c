package main

import (
	"fmt"

	"github.com/aretw0/usikit"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of usikit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("usikit version %s\n", usikit.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
