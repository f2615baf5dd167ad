package scan

import (
	"regexp"
	"strings"
)

var tokenRe = regexp.MustCompile(`[a-z0-9]+`)

// tokenize lower-cases text and splits it into alphanumeric runs.
func tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// minRepetitionTokens is the minimum token count needed to judge repetition.
// Below this, the score is defined as 0: too little data.
const minRepetitionTokens = 200

// ngramSize is the window length for the repetition detector. Five tokens is
// long enough that repeats indicate templated boilerplate rather than common
// short phrases.
const ngramSize = 5

// ngramRepeatThreshold is the minimum occurrence count for an n-gram to
// count as repeated.
const ngramRepeatThreshold = 3

// repetitionScore measures how much of the text is made of repeated 5-token
// sequences. Returns a value in [0,1]: 0 means no 5-gram occurs three or
// more times, 1 means the text is maximally templated.
func repetitionScore(tokens []string) float64 {
	if len(tokens) < minRepetitionTokens {
		return 0
	}

	counts := make(map[string]int)
	for i := 0; i+ngramSize <= len(tokens); i++ {
		gram := strings.Join(tokens[i:i+ngramSize], " ")
		counts[gram]++
	}

	repeated := 0
	for _, n := range counts {
		if n >= ngramRepeatThreshold {
			repeated += n
		}
	}

	score := float64(repeated) / float64(len(tokens)-ngramSize)
	if score > 1 {
		score = 1
	}
	return score
}
