package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/holoscript-lang/go-holoscript/internal/diagnostic"
	"github.com/holoscript-lang/go-holoscript/pkg/holoscript"
)

var validateExpression bool

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate HoloScript source without printing the AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVarP(&validateExpression, "expression", "e", false, "validate source given inline as the argument instead of a file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	input, err := readInput(args, validateExpression)
	if err != nil {
		return exitWithError(err)
	}

	valid, diags := holoscript.ValidateDetailed(input)
	if valid {
		fmt.Println("valid")
		return nil
	}
	fmt.Fprintln(os.Stderr, "invalid:")
	fmt.Fprint(os.Stderr, diagnostic.FormatAll(input, diags, true))
	return exitWithError(fmt.Errorf("%d diagnostic(s)", len(diags)))
}
