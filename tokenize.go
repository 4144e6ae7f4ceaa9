package dansk

import "strings"

// edgePunct is the punctuation stripped from token edges before lookup.
const edgePunct = ".,!?;:\"'«»()[]"

// Tokenize splits a raw sentence into lowercase tokens with edge punctuation
// removed. Tokens that were pure punctuation are dropped.
func Tokenize(sentence string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(sentence)))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		t := TrimPunct(f)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// TrimPunct removes punctuation from both edges of a token. Interior
// punctuation (hyphens, apostrophes inside a word) is kept.
func TrimPunct(token string) string {
	return strings.Trim(token, edgePunct)
}
