package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Order)
	assert.Equal(t, "word", cfg.Tokenizer)
	assert.Equal(t, 20, cfg.Count)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "murmur.yaml")
	require.NoError(t, os.WriteFile(path, []byte("train: corpus.txt\norder: 3\ntokenizer: char\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "corpus.txt", cfg.Train)
	assert.Equal(t, 3, cfg.Order)
	assert.Equal(t, "char", cfg.Tokenizer)
	// Unset keys keep their defaults.
	assert.Equal(t, 20, cfg.Count)
}

func TestConfig_Override(t *testing.T) {
	cfg := defaultConfig()
	cfg.Train = "file.txt"

	cfg.override("other.txt", 4, "", 9, 0)

	assert.Equal(t, "other.txt", cfg.Train)
	assert.Equal(t, 4, cfg.Order)
	assert.Equal(t, "word", cfg.Tokenizer)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 20, cfg.Count)
}

func TestNewTokenizer(t *testing.T) {
	tok, err := newTokenizer("word")
	require.NoError(t, err)
	assert.NotNil(t, tok)

	tok, err = newTokenizer("char")
	require.NoError(t, err)
	assert.NotNil(t, tok)
}
