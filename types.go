// Package dansk provides sentence analysis and translation for Danish learners.
package dansk

// Category classifies a vocabulary entry. The analysis code relies on this
// being a small closed set, so it is a typed constant rather than a free-form
// label.
type Category string

const (
	// CategoryNoun marks nouns (en-words and et-words).
	CategoryNoun Category = "noun"
	// CategoryVerb marks verbs (stored under their infinitive).
	CategoryVerb Category = "verb"
	// CategoryAdjective marks adjectives (base form, optional -t form).
	CategoryAdjective Category = "adjective"
	// CategoryOther marks pronouns, adverbs, prepositions and the like.
	CategoryOther Category = "other"
	// CategoryUnknown marks a token that could not be resolved at all.
	CategoryUnknown Category = "unknown"
)

// Categories lists the dataset categories in their canonical order.
// CategoryUnknown is a resolution result, not a dataset category.
var Categories = []Category{CategoryNoun, CategoryVerb, CategoryAdjective, CategoryOther}

// Gender is the Danish noun gender class, which governs the choice of
// indefinite article and the adjective ending.
type Gender string

const (
	// GenderCommon is the common gender ("en"-words).
	GenderCommon Gender = "en"
	// GenderNeuter is the neuter gender ("et"-words).
	GenderNeuter Gender = "et"
)

// Article returns the indefinite article for the gender class.
func (g Gender) Article() string {
	return string(g)
}

// Entry is one dictionary root word with its glosses and inflection data.
type Entry struct {
	Word               string   `json:"word"`
	Translations       []string `json:"translations"`
	Example            string   `json:"example,omitempty"`
	ExampleTranslation string   `json:"exampleTranslation,omitempty"`

	// Conjugations maps a tense name (e.g. "present", "past") to the
	// conjugated surface form. Verbs only.
	Conjugations map[string]string `json:"conjugations,omitempty"`

	// Gender is the noun gender class. Nouns only.
	Gender Gender `json:"gender,omitempty"`

	// TForm is the neuter (-t) form used with et-words. Adjectives only,
	// and optional even there.
	TForm string `json:"tform,omitempty"`
}

// Gloss returns the primary English translation, or fallback when the entry
// has none.
func (e Entry) Gloss(fallback string) string {
	for _, t := range e.Translations {
		if t != "" {
			return t
		}
	}
	return fallback
}

// Dataset is the raw vocabulary shape supplied by the loader:
// level → category → root word → entry. It is treated as immutable for the
// lifetime of the Index built over it.
type Dataset map[string]map[Category]map[string]Entry

// ResolvedForm links any surface form (a root, a conjugated verb form, or an
// adjective t-form) back to its root entry.
type ResolvedForm struct {
	Root     string   // dictionary root this form derives from
	Category Category // category of the root entry
	Level    string   // proficiency level the root lives in
	Entry    Entry    // full root entry

	// Inflection names the specific derived form ("present", "past",
	// "tform", ...). Empty for the root form itself.
	Inflection string
}

// IsRoot reports whether the form is the root's own dictionary form.
func (f ResolvedForm) IsRoot() bool {
	return f.Inflection == ""
}

// TokenInfo is the per-token resolution result for one sentence position.
type TokenInfo struct {
	Token    string        // surface token, lowercased, punctuation trimmed
	Root     string        // resolved root, empty when unknown
	Category Category      // CategoryUnknown when unresolved
	Form     *ResolvedForm // index record backing the resolution, nil when unknown
}

// Known reports whether the token resolved to a dictionary root.
func (ti TokenInfo) Known() bool {
	return ti.Category != CategoryUnknown
}

// TranslationSource identifies how a translation was produced.
type TranslationSource string

const (
	// SourceExample means the sentence matched a stored example verbatim.
	SourceExample TranslationSource = "example"
	// SourceHeuristic means the token-by-token fallback produced the text.
	SourceHeuristic TranslationSource = "heuristic"
	// SourceSuggester means an AI suggester polished the heuristic draft.
	SourceSuggester TranslationSource = "suggester"
	// SourceCache means the text came from the translation cache.
	SourceCache TranslationSource = "cache"
)

// TranslationResult is the outcome of a cached/suggested translation.
type TranslationResult struct {
	Text    string            // final English rendering
	Source  TranslationSource // where the rendering came from
	Unknown []string          // tokens that no lookup or heuristic resolved
}
