package dansk

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashSentence computes the SHA-256 hash of the trimmed, lowercased sentence.
// Used as the stable part of translation cache keys.
func HashSentence(sentence string) string {
	normalized := strings.ToLower(strings.TrimSpace(sentence))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a translation cache key from a sentence hash.
func CacheKey(hash string) string {
	return hash + ":en"
}

// CacheKeyExtended generates an extended cache key including the suggester
// model. Use this when suggestions from different models must not collide.
func CacheKeyExtended(hash, model string) string {
	return hash + ":en:" + model
}
