package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadTikToken skips the test when the encoding cannot be fetched, since
// tiktoken-go downloads vocabularies on first use.
func loadTikToken(t *testing.T, encoding string) *TikToken {
	t.Helper()
	tok, err := NewTikToken(encoding)
	if err != nil {
		t.Skipf("tiktoken encoding %q unavailable: %v", encoding, err)
	}
	return tok
}

func TestTikToken_InvalidEncoding(t *testing.T) {
	tok, err := NewTikToken("no_such_encoding_xyz")
	assert.Error(t, err)
	assert.Nil(t, tok)
}

func TestTikToken_Tokenize(t *testing.T) {
	tok := loadTikToken(t, "cl100k_base")

	text := "The cat sat on the mat."
	tokens, err := tok.Tokenize(text)
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	// Surface forms concatenate back to the input text.
	assert.Equal(t, text, strings.Join(tokens, ""))
	assert.Equal(t, "cl100k_base", tok.Name())
}

func TestTikToken_Deterministic(t *testing.T) {
	tok := loadTikToken(t, "cl100k_base")

	first, err := tok.Tokenize("reproducible sequences matter")
	require.NoError(t, err)
	again, err := tok.Tokenize("reproducible sequences matter")
	require.NoError(t, err)
	assert.Equal(t, first, again)
}
