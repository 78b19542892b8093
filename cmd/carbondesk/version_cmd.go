package main

import (
	"fmt"

	"github.com/opencarbon/carbondesk/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.DetailedWithApp())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
