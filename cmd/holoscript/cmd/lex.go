package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/holoscript-lang/go-holoscript/internal/lexer"
	"github.com/holoscript-lang/go-holoscript/internal/token"
)

var (
	lexEval    string
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a HoloScript file or expression",
	Long: `Tokenize (lex) HoloScript source and print the resulting tokens.

Examples:
  holoscript lex scene.holo
  holoscript lex -e '@grabbable'
  holoscript lex --show-type --show-pos scene.holo
  holoscript lex --only-errors scene.holo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from a file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only invalid tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	var input string
	if lexEval != "" {
		input = lexEval
	} else if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return exitWithError(fmt.Errorf("reading file %s: %w", args[0], err))
		}
		input = string(data)
	} else {
		return exitWithError(fmt.Errorf("either provide a file path or use -e for inline code"))
	}

	l := lexer.New(input)
	tokenCount, errorCount := 0, 0
	for {
		tok := l.NextToken()
		if onlyErrors && tok.Type != token.Invalid {
			if tok.Type == token.Eof {
				break
			}
			continue
		}
		tokenCount++
		if tok.Type == token.Invalid {
			errorCount++
		}
		printToken(tok)
		if tok.Type == token.Eof {
			break
		}
	}

	if onlyErrors && errorCount > 0 {
		return exitWithError(fmt.Errorf("found %d invalid token(s)", errorCount))
	}
	return nil
}

func printToken(tok token.Token) {
	var out string
	if showType {
		out = fmt.Sprintf("[%-14s]", tok.Type)
	}
	switch {
	case tok.Type == token.Eof:
		out += " EOF"
	case tok.Type == token.Invalid:
		out += fmt.Sprintf(" INVALID: %q", tok.Literal)
	case tok.Literal == "":
		out += fmt.Sprintf(" %s", tok.Type)
	default:
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		out += fmt.Sprintf(" @%s", tok.Start)
	}
	fmt.Println(out)
}
