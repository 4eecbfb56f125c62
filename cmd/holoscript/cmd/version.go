package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holoscript-lang/go-holoscript/pkg/holoscript"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("holoscript version %s (core %s)\n", Version, holoscript.Version)
		fmt.Printf("Git Commit: %s\n", GitCommit)
		fmt.Printf("Build Date: %s\n", BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
