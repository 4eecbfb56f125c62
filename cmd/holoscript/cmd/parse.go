package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holoscript-lang/go-holoscript/internal/ast"
	"github.com/holoscript-lang/go-holoscript/internal/diagnostic"
	"github.com/holoscript-lang/go-holoscript/pkg/holoscript"
)

var (
	parseExpression bool
	parseDumpAST    bool
	parseJSON       bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse HoloScript source and print the AST",
	Long: `Parse HoloScript source code and display the resulting syntax tree.

If no file is provided, reads from stdin. Use -e to parse source text
given as the argument, --dump-ast for an indented tree view,
or --json for the serialized AST shape.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse source given inline as the argument instead of a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump an indented AST tree")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the AST as JSON")
}

func readInput(args []string, inline bool) (string, error) {
	if inline {
		if len(args) == 0 {
			return "", oops.Errorf("no expression provided")
		}
		return args[0], nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", oops.With("file", args[0]).Wrapf(err, "reading file")
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", oops.Wrapf(err, "reading stdin")
	}
	return string(data), nil
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args, parseExpression)
	if err != nil {
		return exitWithError(err)
	}

	program, diags := holoscript.Parse(input)
	if len(diags) > 0 {
		fmt.Fprintln(os.Stderr, "Parse errors:")
		fmt.Fprint(os.Stderr, diagnostic.FormatAll(input, diags, true))
		return exitWithError(oops.Errorf("parsing failed with %d diagnostic(s)", len(diags)))
	}

	switch {
	case parseJSON:
		out, err := json.MarshalIndent(program, "", "  ")
		if err != nil {
			return exitWithError(err)
		}
		fmt.Println(string(out))
	case parseDumpAST:
		fmt.Println("Program")
		for _, n := range program.Body {
			dumpNode(n, 1)
		}
	default:
		fmt.Println(program.String())
	}
	return nil
}

func dumpNode(n ast.Node, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}
	fmt.Printf("%s%s\n", pad, n.TokenLiteral())
	switch v := n.(type) {
	case *ast.Entity:
		for _, t := range v.Traits {
			fmt.Printf("%s  @%s\n", pad, t.Name)
		}
		for _, c := range v.Children {
			dumpNode(c, indent+1)
		}
	case *ast.Environment:
		for _, c := range v.Children {
			dumpNode(c, indent+1)
		}
	}
}
