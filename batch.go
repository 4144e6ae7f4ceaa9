package dansk

import (
	"context"
	"sync"
)

// ParallelCacheLookup checks the cache for many sentences concurrently.
// Returns a map of sentence to cached translation, and the cache misses in
// their original order (deduplicated).
func ParallelCacheLookup(cache TranslationCache, sentences []string) (map[string]string, []string) {
	if len(sentences) == 0 {
		return make(map[string]string), nil
	}
	if cache == nil {
		// Without a cache every distinct sentence is a miss; the misses
		// still come back deduplicated so callers translate each once.
		return make(map[string]string), dedupe(sentences)
	}

	type lookupResult struct {
		sentence string
		value    string
		found    bool
	}

	unique := make(map[string]struct{}, len(sentences))
	for _, s := range sentences {
		unique[s] = struct{}{}
	}

	results := make(chan lookupResult, len(unique))
	var wg sync.WaitGroup

	for s := range unique {
		wg.Add(1)
		go func(sentence string) {
			defer wg.Done()
			key := CacheKey(HashSentence(sentence))
			if val, ok := cache.Get(key); ok {
				results <- lookupResult{sentence: sentence, value: val, found: true}
			} else {
				results <- lookupResult{sentence: sentence, found: false}
			}
		}(s)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	hits := make(map[string]string)
	missed := make(map[string]bool)
	for r := range results {
		if r.found {
			hits[r.sentence] = r.value
		} else {
			missed[r.sentence] = true
		}
	}

	var misses []string
	seen := make(map[string]bool)
	for _, s := range sentences {
		if missed[s] && !seen[s] {
			misses = append(misses, s)
			seen[s] = true
		}
	}

	return hits, misses
}

// dedupe returns the distinct sentences in first-appearance order.
func dedupe(sentences []string) []string {
	seen := make(map[string]bool, len(sentences))
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// TranslateAll translates a batch of sentences, reusing cached results via a
// parallel lookup and filling misses with the heuristic pipeline. The result
// slice is positionally aligned with the input.
func (t *Translator) TranslateAll(ctx context.Context, sentences []string) ([]string, error) {
	hits, misses := ParallelCacheLookup(t.cache, sentences)

	for _, sentence := range misses {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text, _ := t.translate(sentence)
		hits[sentence] = text
		if t.cache != nil {
			_ = t.cache.Set(CacheKey(HashSentence(sentence)), text) // Ignore cache set errors
		}
	}

	out := make([]string, len(sentences))
	for i, sentence := range sentences {
		out[i] = hits[sentence]
	}
	return out, nil
}
