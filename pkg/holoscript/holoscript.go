// Package holoscript exposes the language-neutral core API: parsing and
// validating HoloScript source into a structured AST and diagnostics.
package holoscript

import (
	"fmt"

	"github.com/holoscript-lang/go-holoscript/internal/ast"
	"github.com/holoscript-lang/go-holoscript/internal/diagnostic"
	"github.com/holoscript-lang/go-holoscript/internal/metrics"
	"github.com/holoscript-lang/go-holoscript/internal/parser"
	"github.com/holoscript-lang/go-holoscript/internal/token"
)

// Diagnostic is one lexical or syntactic problem found while parsing.
type Diagnostic = diagnostic.Diagnostic

// Program is the root of a parsed HoloScript syntax tree.
type Program = ast.Program

func init() {
	metrics.Register()
}

// Parse lexes and parses source, returning the AST on success or a
// non-empty diagnostics list on failure. It never returns both.
//
// An unexpected internal panic is recovered at this boundary and reported
// as an E000 diagnostic rather than crashing the caller.
func Parse(source string) (prog *Program, diags []Diagnostic) {
	metrics.ParsesTotal.Inc()
	defer func() {
		if r := recover(); r != nil {
			prog = nil
			diags = []Diagnostic{diagnostic.New(
				fmt.Sprintf("internal error: %v", r),
				token.Position{Line: 1, Column: 1},
				diagnostic.CodeGeneric,
			)}
		}
		metrics.ParseDiagnostics.Observe(float64(len(diags)))
	}()
	prog, diags = parser.Parse(source)
	return prog, diags
}

// Validate reports whether source parses without any diagnostics.
func Validate(source string) bool {
	_, diags := Parse(source)
	return len(diags) == 0
}

// ValidateDetailed reports whether source parses cleanly and returns every
// diagnostic found, if any.
func ValidateDetailed(source string) (bool, []Diagnostic) {
	_, diags := Parse(source)
	return len(diags) == 0, diags
}

// Version is the public API version, following this module's release tags.
const Version = "0.1.0"
