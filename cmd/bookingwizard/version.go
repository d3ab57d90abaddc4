package main

import (
	"fmt"

	"github.com/spf13/cobra"

	wizard "github.com/dhwrwm/intergalactic-booking-wizard"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bookingwizard",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bookingwizard version %s\n", wizard.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
