package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gomech",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(out, "gomech v%s\n", version.String())
		fmt.Fprintln(out, "Go Mechanical Design Toolbox")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
