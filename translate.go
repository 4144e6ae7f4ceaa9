package dansk

import (
	"context"
	"strings"
)

// Translator renders a Danish sentence into English. The heuristic core
// prefers exact stored-example matches and falls back to token-by-token
// glossing plus regex phrase repair; an optional Suggester can polish the
// draft and an optional cache can memoize results.
type Translator struct {
	index     *Index
	cache     TranslationCache
	suggester Suggester
	glossary  map[string]string
}

// Suggester is the interface for AI backends that turn the heuristic draft
// into fluent English.
type Suggester interface {
	Suggest(ctx context.Context, req SuggestRequest) (string, error)
}

// SuggestRequest contains the parameters for a suggestion request.
type SuggestRequest struct {
	Sentence string            // the Danish sentence as typed
	Draft    string            // heuristic English rendering
	Unknown  []string          // tokens no lookup resolved
	Glossary map[string]string // preferred glosses for specific words
}

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithCache sets the translation cache.
func WithCache(cache TranslationCache) TranslatorOption {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithSuggester sets the AI suggester used to polish heuristic drafts.
func WithSuggester(s Suggester) TranslatorOption {
	return func(t *Translator) {
		t.suggester = s
	}
}

// WithGlossary sets preferred glosses for specific Danish words. Glossary
// hits take precedence over the vocabulary's own translations.
func WithGlossary(glossary map[string]string) TranslatorOption {
	return func(t *Translator) {
		t.glossary = glossary
	}
}

// NewTranslator creates a Translator over the given index.
func NewTranslator(index *Index, opts ...TranslatorOption) *Translator {
	t := &Translator{index: index}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate produces the heuristic English rendering of a sentence. It is a
// pure function of the dataset and the sentence: no cache, no suggester.
func (t *Translator) Translate(sentence string) string {
	text, _ := t.translate(sentence)
	return text
}

// translate runs the heuristic pipeline and reports unresolved tokens.
func (t *Translator) translate(sentence string) (string, []string) {
	normalized := strings.ToLower(strings.TrimSpace(sentence))
	if normalized == "" {
		return "", nil
	}

	// Exact stored-example shortcut.
	if translation, ok := t.lookupExample(normalized); ok {
		return translation, nil
	}

	tokens := Tokenize(normalized)
	glosses := make([]string, 0, len(tokens))
	var unknown []string

	for _, tok := range tokens {
		gloss, ok := t.glossToken(tok)
		if !ok {
			unknown = append(unknown, tok)
		}
		glosses = append(glosses, gloss)
	}

	return repairPhrase(strings.Join(glosses, " ")), unknown
}

// lookupExample scans every entry's stored example for a case-insensitive
// verbatim match against the input sentence.
func (t *Translator) lookupExample(sentence string) (string, bool) {
	for _, categories := range t.index.Dataset() {
		for _, entries := range categories {
			for _, entry := range entries {
				if entry.Example == "" || entry.ExampleTranslation == "" {
					continue
				}
				if strings.EqualFold(strings.TrimSpace(entry.Example), sentence) {
					return entry.ExampleTranslation, true
				}
			}
		}
	}
	return "", false
}

// glossToken translates one token. Exact index lookup first, then a linear
// scan over verb conjugation tables and adjective -t forms, then the raw
// token unchanged.
func (t *Translator) glossToken(token string) (string, bool) {
	if preferred, ok := t.glossary[token]; ok {
		return preferred, true
	}

	if rf, ok := t.index.Lookup(token); ok {
		return rf.Entry.Gloss(token), true
	}

	if gloss, ok := t.scanInflections(token); ok {
		return gloss, true
	}

	return token, false
}

// scanInflections walks the raw dataset looking for the token among verb
// conjugation values and adjective -t forms. Slower than the index, and
// case-insensitive, so it catches forms whose dataset spelling kept them out
// of the all-forms map.
func (t *Translator) scanInflections(token string) (string, bool) {
	for _, categories := range t.index.Dataset() {
		for root, entry := range categories[CategoryVerb] {
			for _, form := range entry.Conjugations {
				if strings.EqualFold(form, token) {
					return entry.Gloss(root), true
				}
			}
		}
		for root, entry := range categories[CategoryAdjective] {
			if strings.EqualFold(entry.TForm, token) {
				return entry.Gloss(root), true
			}
		}
	}
	return "", false
}

// TranslateContext translates with the cache and suggester applied: cache
// hit first, then the heuristic draft, then the suggester polish when one is
// configured. Suggester failures fall back to the heuristic draft rather
// than surfacing an error to the learner.
func (t *Translator) TranslateContext(ctx context.Context, sentence string) (*TranslationResult, error) {
	key := CacheKey(HashSentence(sentence))

	if t.cache != nil {
		if cached, ok := t.cache.Get(key); ok {
			return &TranslationResult{Text: cached, Source: SourceCache}, nil
		}
	}

	draft, unknown := t.translate(sentence)
	result := &TranslationResult{Text: draft, Source: SourceHeuristic, Unknown: unknown}

	if t.suggester != nil {
		polished, err := t.suggester.Suggest(ctx, SuggestRequest{
			Sentence: sentence,
			Draft:    draft,
			Unknown:  unknown,
			Glossary: t.glossary,
		})
		if err == nil && polished != "" {
			result.Text = polished
			result.Source = SourceSuggester
		} else if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	if t.cache != nil {
		_ = t.cache.Set(key, result.Text) // Ignore cache set errors
	}

	return result, nil
}

// Glossary returns the configured glossary.
func (t *Translator) Glossary() map[string]string {
	return t.glossary
}

// Index returns the vocabulary index the translator reads from.
func (t *Translator) Index() *Index {
	return t.index
}
