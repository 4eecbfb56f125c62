package cmd

import (
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "holoscript",
	Short: "HoloScript compiler front end",
	Long: `holoscript is the Go implementation of the HoloScript compiler front end:
lexer, parser, trait registry, and type-assignability lattice for the
declarative VR/3D scene description language.

This tool exposes the front-end core (parse, lex, validate) as a CLI;
it does not evaluate scenes or generate engine-specific output.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg = zap.NewDevelopmentConfig()
		}
		l, err := cfg.Build()
		if err != nil {
			return oops.Wrapf(err, "initializing logger")
		}
		logger = l
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(err error) error {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return err
}
