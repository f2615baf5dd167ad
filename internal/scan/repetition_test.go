package scan

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepetitionScore_TemplatedContentNearsOne(t *testing.T) {
	// One 5-word phrase repeated 50 times: every window is a rotation of the
	// same phrase, so nearly every window counts as repeated.
	phrase := "prime warehouse space available now "
	tokens := tokenize(strings.Repeat(phrase, 50))
	assert.GreaterOrEqual(t, len(tokens), minRepetitionTokens)

	score := repetitionScore(tokens)
	assert.InDelta(t, 1.0, score, 0.05)
}

func TestRepetitionScore_UniqueContentIsZero(t *testing.T) {
	tokens := make([]string, 0, 220)
	for i := 0; i < 220; i++ {
		tokens = append(tokens, fmt.Sprintf("word%d", i))
	}

	assert.Equal(t, 0.0, repetitionScore(tokens))
}

func TestRepetitionScore_TooFewTokensIsZero(t *testing.T) {
	// Even maximally repetitive text scores 0 below the minimum token count.
	tokens := tokenize(strings.Repeat("again and again and again ", 30))
	if len(tokens) >= minRepetitionTokens {
		t.Fatalf("fixture too long: %d tokens", len(tokens))
	}

	assert.Equal(t, 0.0, repetitionScore(tokens))
}

func TestRepetitionScore_CappedAtOne(t *testing.T) {
	tokens := make([]string, 300)
	for i := range tokens {
		tokens[i] = "same"
	}

	assert.Equal(t, 1.0, repetitionScore(tokens))
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("Hello, World! 123-suite leasing.")
	assert.Equal(t, []string{"hello", "world", "123", "suite", "leasing"}, tokens)
}
