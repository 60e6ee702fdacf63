package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tomlkit",
	Short: "tomlkit is a command-line tool for working with TOML documents.",
	Long:  "tomlkit is a command-line tool for working with TOML documents. It can resolve dotted key paths, rewrite a document in canonical form, and watch a file for live reload.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tomlkit",
	Long:  `All software has versions. This is tomlkit's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tomlkit v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tomlCmd)
}
