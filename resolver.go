package dansk

import "strings"

// Suffix rules of the heuristic fallback used when a token has no exact
// entry in the all-forms map, tried in order. Purely heuristic: they cover
// the weak (regular) inflection patterns and may mis-resolve short or
// ambiguous tokens, which is an accepted approximation.
var strippableSuffixes = []string{
	"er",  // aviser → avis (also present tense, agent nouns)
	"ede", // malede → mal
	"de",  // arbejdede → arbejde; also definite forms
	"t",   // spist → spis
}

// Resolve maps one lowercase token to its root, category, and index record.
// Resolution order: exact all-forms lookup first, then the fixed suffix
// rules, first hit wins. Tokens nothing matches come back with
// CategoryUnknown and an empty root.
func (ix *Index) Resolve(token string) TokenInfo {
	info := TokenInfo{Token: token, Category: CategoryUnknown}
	if token == "" {
		return info
	}

	if rf, ok := ix.Lookup(token); ok {
		info.Root = rf.Root
		info.Category = rf.Category
		info.Form = &rf
		return info
	}

	for _, suffix := range strippableSuffixes {
		if len(token) <= len(suffix) || !strings.HasSuffix(token, suffix) {
			continue
		}
		candidate := token[:len(token)-len(suffix)]
		if rf, ok := ix.Lookup(candidate); ok {
			info.Root = rf.Root
			info.Category = rf.Category
			info.Form = &rf
			return info
		}
	}

	return info
}

// ResolveAll resolves every token of a tokenized sentence in order.
func (ix *Index) ResolveAll(tokens []string) []TokenInfo {
	infos := make([]TokenInfo, len(tokens))
	for i, tok := range tokens {
		infos[i] = ix.Resolve(tok)
	}
	return infos
}
