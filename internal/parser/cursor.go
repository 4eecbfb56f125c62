package parser

import (
	"github.com/holoscript-lang/go-holoscript/internal/lexer"
	"github.com/holoscript-lang/go-holoscript/internal/token"
)

// TokenCursor provides an immutable cursor abstraction over a stream of
// tokens, buffering tokens from the lexer as needed to support arbitrary
// lookahead and backtracking without re-scanning the source.
type TokenCursor struct {
	lexer            *lexer.Lexer
	current          token.Token
	tokens           []token.Token
	index            int
	preserveComments bool
}

// NewTokenCursor creates a cursor positioned at the first non-trivia token
// produced by l. When preserveComments is true, Comment and BlockComment
// tokens are significant (not filtered) so the parser can turn them into
// CommentNode values; otherwise they are skipped like Whitespace/Newline.
func NewTokenCursor(l *lexer.Lexer, preserveComments bool) *TokenCursor {
	first := nextSignificant(l, preserveComments)
	tokens := make([]token.Token, 1, 32)
	tokens[0] = first
	return &TokenCursor{lexer: l, current: first, tokens: tokens, index: 0, preserveComments: preserveComments}
}

func nextSignificant(l *lexer.Lexer, preserveComments bool) token.Token {
	for {
		t := l.NextToken()
		switch t.Type {
		case token.Whitespace, token.Newline:
			continue
		case token.Comment, token.BlockComment:
			if preserveComments {
				return t
			}
			continue
		default:
			return t
		}
	}
}

// Current returns the token at the cursor's position.
func (c *TokenCursor) Current() token.Token {
	return c.current
}

// Peek returns the token n positions ahead of the current position without
// consuming it.
func (c *TokenCursor) Peek(n int) token.Token {
	if n < 0 {
		return c.current
	}
	target := c.index + n
	for target >= len(c.tokens) && c.tokens[len(c.tokens)-1].Type != token.Eof {
		c.tokens = append(c.tokens, nextSignificant(c.lexer, c.preserveComments))
	}
	if target < len(c.tokens) {
		return c.tokens[target]
	}
	return c.tokens[len(c.tokens)-1]
}

// Advance returns a new cursor positioned at the next token.
func (c *TokenCursor) Advance() *TokenCursor {
	return c.AdvanceN(1)
}

// AdvanceN returns a new cursor positioned n tokens ahead.
func (c *TokenCursor) AdvanceN(n int) *TokenCursor {
	if n <= 0 {
		return c
	}
	c.Peek(n)
	newIndex := c.index + n
	if newIndex >= len(c.tokens) {
		newIndex = len(c.tokens) - 1
	}
	return &TokenCursor{lexer: c.lexer, current: c.tokens[newIndex], tokens: c.tokens, index: newIndex, preserveComments: c.preserveComments}
}

// Is reports whether the current token has type t.
func (c *TokenCursor) Is(t token.Type) bool {
	return c.current.Type == t
}

// IsAny reports whether the current token matches any of types.
func (c *TokenCursor) IsAny(types ...token.Type) bool {
	for _, t := range types {
		if c.current.Type == t {
			return true
		}
	}
	return false
}

// PeekIs reports whether the token n positions ahead has type t.
func (c *TokenCursor) PeekIs(n int, t token.Type) bool {
	return c.Peek(n).Type == t
}

// IsEOF reports whether the current token is Eof.
func (c *TokenCursor) IsEOF() bool {
	return c.current.Type == token.Eof
}

// Position returns the start position of the current token.
func (c *TokenCursor) Position() token.Position {
	return c.current.Start
}

// Mark is a lightweight saved cursor position.
type Mark struct {
	index int
}

// Mark saves the current cursor position for later restoration.
func (c *TokenCursor) Mark() Mark {
	return Mark{index: c.index}
}

// ResetTo returns a cursor rewound to a previously taken Mark.
func (c *TokenCursor) ResetTo(m Mark) *TokenCursor {
	if m.index < 0 || m.index >= len(c.tokens) {
		return c
	}
	return &TokenCursor{lexer: c.lexer, current: c.tokens[m.index], tokens: c.tokens, index: m.index, preserveComments: c.preserveComments}
}
