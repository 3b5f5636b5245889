/*
File    : corrosion/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer_test

import (
	"testing"

	"github.com/akashmaji946/corrosion/lexer"
	"github.com/akashmaji946/corrosion/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(t *testing.T, toks []token.Token) []token.Type {
	t.Helper()
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestTokenizeArithmeticExpression(t *testing.T) {
	toks, err := lexer.Tokenize("1 + 2 * 3;")
	require.NoError(t, err)
	assert.Equal(t, []token.Type{
		token.INT, token.PLUS, token.INT, token.STAR, token.INT, token.SEMI, token.EOF,
	}, tokenTypes(t, toks))
}

func TestTokenizeKeywordsAndArrows(t *testing.T) {
	toks, err := lexer.Tokenize("fn add(x: Int) -> Int { x }")
	require.NoError(t, err)
	assert.Equal(t, token.FN, toks[0].Type)
	assert.Equal(t, token.IDENT, toks[1].Type)
	assert.Equal(t, "add", toks[1].Literal)
	assert.Contains(t, tokenTypes(t, toks), token.ARROW)
}

func TestTokenizeTwoCharOperators(t *testing.T) {
	toks, err := lexer.Tokenize("a == b != c && d || e")
	require.NoError(t, err)
	assert.Equal(t, []token.Type{
		token.IDENT, token.EQ, token.IDENT, token.NOT_EQ, token.IDENT,
		token.AND, token.IDENT, token.OR, token.IDENT, token.EOF,
	}, tokenTypes(t, toks))
}

func TestTokenizeStringLiteral(t *testing.T) {
	toks, err := lexer.Tokenize(`"hello world"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestTokenSpansStayInBoundsAcrossComments(t *testing.T) {
	src := "let x = 1; // trailing\n/* block */ let y = 2;"
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	for _, tok := range toks {
		assert.LessOrEqual(t, tok.Span.ByteStart, tok.Span.ByteEnd)
		assert.LessOrEqual(t, tok.Span.ByteEnd, len(src))
	}
}

func TestUnterminatedBlockCommentIsLexError(t *testing.T) {
	_, err := lexer.Tokenize("/* never closed")
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
}

func TestIllegalCharacterIsLexError(t *testing.T) {
	_, err := lexer.Tokenize("let x = 1 @ 2;")
	require.Error(t, err)
}
