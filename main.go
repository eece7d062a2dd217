package main

import (
	"github.com/cottand/elmgen/cmd"
	"github.com/spf13/cobra"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "elmgen [subcommand]",
	Short:        "elmgen 🌳\n an intermediate representation that renders as elm source",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.GenerateCmd)
}
