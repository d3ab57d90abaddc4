package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bookingwizard",
	Short: "Multi-step travel booking wizard",
	Long:  `A three-step booking wizard (destination, travelers, review) with durable per-session state, served over HTTP or run interactively in the terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "bookingwizard.yaml", "Path to the YAML config file")
}
