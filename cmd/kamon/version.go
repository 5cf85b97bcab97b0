package main

import (
	"fmt"

	"github.com/pppp606/kamon"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of kamon",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kamon version %s\n", kamon.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
