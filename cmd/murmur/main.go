// Package main provides the murmur language-model CLI: a thin driver around
// the core model for training on a text file, scoring held-out text and
// generating random sequences.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/murmur-lm/murmur/corpus"
	"github.com/murmur-lm/murmur/ngram"
	"github.com/murmur-lm/murmur/tokenizer"
)

func main() {
	var configPath = flag.String("config", "", "Path to YAML configuration file")
	var trainPath = flag.String("train", "", "Path to training text")
	var order = flag.Int("order", 0, "N-gram order")
	var tokenizerName = flag.String("tokenizer", "", "Tokenizer: word, char, or a tiktoken encoding name")
	var seed = flag.Int64("seed", 0, "Generation seed")
	var count = flag.Int("count", 0, "Number of tokens to generate")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	cfg.override(*trainPath, *order, *tokenizerName, *seed, *count)

	if cfg.Train == "" || flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: murmur -train FILE [-order N] [-tokenizer NAME] perplexity FILE | generate")
		os.Exit(2)
	}

	tok, err := newTokenizer(cfg.Tokenizer)
	if err != nil {
		logger.Fatal("Failed to build tokenizer", zap.Error(err))
	}

	doc, err := corpus.FromFile(cfg.Train)
	if err != nil {
		logger.Fatal("Failed to read training document", zap.Error(err))
	}

	model, err := ngram.TrainDocument(doc, tok, cfg.Order)
	if err != nil {
		logger.Fatal("Training failed", zap.Error(err))
	}
	logger.Info("Model trained",
		zap.String("document", doc.Name),
		zap.Int("order", model.Order()),
		zap.Int("contexts", model.KthDistribution(model.Order()).Len()))

	switch cmd := flag.Arg(0); cmd {
	case "perplexity":
		if flag.NArg() < 2 {
			logger.Fatal("perplexity requires an evaluation file")
		}
		runPerplexity(logger, model, tok, flag.Arg(1))
	case "generate":
		runGenerate(logger, model, cfg.Seed, cfg.Count)
	default:
		logger.Fatal("Unknown command", zap.String("command", cmd))
	}
}

func runPerplexity(logger *zap.Logger, model *ngram.Model, tok tokenizer.Tokenizer, path string) {
	doc, err := corpus.FromFile(path)
	if err != nil {
		logger.Fatal("Failed to read evaluation document", zap.Error(err))
	}
	tokens, err := tok.Tokenize(doc.Content)
	if err != nil {
		logger.Fatal("Tokenization failed", zap.Error(err))
	}

	ll := model.LogLikelihood(tokens)
	pp := model.Perplexity(tokens)
	logger.Info("Scored document",
		zap.String("document", doc.Name),
		zap.Int("tokens", len(tokens)),
		zap.Float64("log_likelihood", ll),
		zap.Float64("perplexity", pp))
	fmt.Printf("log-likelihood: %g\nperplexity: %g\n", ll, pp)
}

func runGenerate(logger *zap.Logger, model *ngram.Model, seed int64, count int) {
	tokens, err := model.Generate(seed, count)
	if err != nil {
		logger.Fatal("Generation failed", zap.Error(err))
	}
	for i, tok := range tokens {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(tok)
	}
	fmt.Println()
}

func newTokenizer(name string) (tokenizer.Tokenizer, error) {
	switch name {
	case "", "word":
		return tokenizer.NewWord(), nil
	case "char":
		return tokenizer.NewChar(), nil
	default:
		// Anything else is treated as a tiktoken encoding name.
		return tokenizer.NewTikToken(name)
	}
}
