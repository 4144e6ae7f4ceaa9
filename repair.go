package dansk

import (
	"regexp"
	"sort"
	"strings"
)

// verbForms holds the English inflections used by the phrase repair pass.
type verbForms struct {
	third      string // third person singular
	continuous string // -ing form, empty for the copula
}

// commonVerbs is the fixed list of verb glosses the repair pass understands.
// Glosses outside this list pass through untouched; that imprecision is
// inherent to the string-level approach and is documented, not hidden.
var commonVerbs = map[string]verbForms{
	"eat":   {"eats", "eating"},
	"drink": {"drinks", "drinking"},
	"read":  {"reads", "reading"},
	"write": {"writes", "writing"},
	"see":   {"sees", "seeing"},
	"buy":   {"buys", "buying"},
	"run":   {"runs", "running"},
	"sleep": {"sleeps", "sleeping"},
	"work":  {"works", "working"},
	"play":  {"plays", "playing"},
	"speak": {"speaks", "speaking"},
	"live":  {"lives", "living"},
	"come":  {"comes", "coming"},
	"go":    {"goes", "going"},
	"have":  {"has", "having"},
	"drive": {"drives", "driving"},
	"like":  {"likes", "liking"},
	"love":  {"loves", "loving"},
	"be":    {"is", ""},
}

var (
	verbAlternation = buildVerbAlternation()

	// "he to eat" → "he eats". Only third person singular subjects are
	// collapsed; with any other subject the finite form equals the base
	// form, and the bare-verb pass would immediately rewrap it, so the
	// marker is left for that pass to skip.
	infinitivePattern = regexp.MustCompile(
		`\b(he|she|it) to (` + verbAlternation + `)\b`)

	// Bare verb gloss → continuous ("eat" → "is eating"). The optional
	// prefix group keeps infinitives ("to eat"), already-repaired forms
	// ("is eating") and modal constructions ("can eat") untouched.
	barePattern = regexp.MustCompile(
		`\b(to |is |can |must |will |shall |may )?(` + verbAlternation + `)\b`)
)

// articleFixes collapses duplicated or conflicting article sequences left
// behind by the token-by-token gloss. Triples before pairs.
var articleFixes = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\ba an a\b`), "a"},
	{regexp.MustCompile(`\ban a an\b`), "an"},
	{regexp.MustCompile(`\bthe an\b`), "the"},
	{regexp.MustCompile(`\bthe a\b`), "the"},
	{regexp.MustCompile(`\ba an\b`), "an"},
	{regexp.MustCompile(`\ban a\b`), "a"},
}

func buildVerbAlternation() string {
	verbs := make([]string, 0, len(commonVerbs))
	for v := range commonVerbs {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return strings.Join(verbs, "|")
}

// repairPhrase applies the fixed string-level patches over the joined
// token-by-token translation: infinitive collapse after a known subject,
// continuous rendering for bare verb glosses, and article deduplication.
// This is best-effort patching, not grammatical analysis.
func repairPhrase(text string) string {
	// (a) third person singular subject + "to <verb>" → finite verb
	text = infinitivePattern.ReplaceAllStringFunc(text, func(m string) string {
		fields := strings.Fields(m)
		subject, verb := fields[0], fields[2]
		return subject + " " + commonVerbs[verb].third
	})

	// (b) bare verb gloss → "is <verb>ing"; the copula becomes plain "is"
	text = barePattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := barePattern.FindStringSubmatch(m)
		if sub[1] != "" {
			return m
		}
		verb := sub[2]
		if verb == "be" {
			return "is"
		}
		return "is " + commonVerbs[verb].continuous
	})

	// (c) article sequences
	for _, fix := range articleFixes {
		text = fix.re.ReplaceAllString(text, fix.repl)
	}

	return text
}
