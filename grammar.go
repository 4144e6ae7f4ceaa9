package dansk

import "fmt"

// Diagnostic messages with fixed wording so callers and tests can pin them.
const (
	// MsgEmptySentence is returned for input that is empty after trimming.
	MsgEmptySentence = "Write a sentence first."
	// MsgNoVocabulary is returned when the dataset has no entries at all.
	MsgNoVocabulary = "No vocabulary loaded yet - add some words before checking sentences."
	// MsgNoVerb is returned when no token resolves to a known verb.
	MsgNoVerb = "No verb found - a Danish main clause needs a verb."
	// MsgAllGood is the single success message for a clean sentence.
	MsgAllGood = "Looks good! No problems found."
)

// Analyzer runs the grammar checks over one sentence at a time. It holds no
// state between calls; every Check is a pure function of the sentence and the
// index.
type Analyzer struct {
	index *Index
}

// NewAnalyzer creates an Analyzer over the given index.
func NewAnalyzer(index *Index) *Analyzer {
	return &Analyzer{index: index}
}

// Check tokenizes the sentence and returns the ordered diagnostic list:
// unknown words first, then verb position, then conjugation, then article
// and adjective agreement. A clean sentence yields a single success message.
func (a *Analyzer) Check(sentence string) []string {
	tokens := Tokenize(sentence)
	if len(tokens) == 0 {
		return []string{MsgEmptySentence}
	}
	if a.index.Empty() {
		return []string{MsgNoVocabulary}
	}

	infos := a.index.ResolveAll(tokens)

	var diags []string
	diags = append(diags, a.checkUnknownWords(infos)...)
	diags = append(diags, a.checkVerb(infos)...)
	diags = append(diags, a.checkAgreement(infos)...)

	if len(diags) == 0 {
		return []string{MsgAllGood}
	}
	return diags
}

// checkUnknownWords flags every token the resolver could not place. Unknown
// words never abort the remaining checks.
func (a *Analyzer) checkUnknownWords(infos []TokenInfo) []string {
	var diags []string
	for _, info := range infos {
		if !info.Known() {
			diags = append(diags, fmt.Sprintf("The word %q is not in the vocabulary yet.", info.Token))
		}
	}
	return diags
}

// checkVerb runs the V2 position check and, when a verb is present, the
// conjugation check. The no-verb diagnostic and the position diagnostic are
// mutually exclusive.
func (a *Analyzer) checkVerb(infos []TokenInfo) []string {
	verbs := a.index.Verbs()

	verbIdx := -1
	for i, info := range infos {
		if info.Category != CategoryVerb {
			continue
		}
		if _, ok := verbs[info.Root]; ok {
			verbIdx = i
			break
		}
	}

	if verbIdx < 0 {
		return []string{MsgNoVerb}
	}

	var diags []string
	if len(infos) > 1 && verbIdx != 1 {
		diags = append(diags, fmt.Sprintf(
			"Word order: the verb %q should be the second word in a main clause (V2 rule).",
			infos[verbIdx].Token))
	}

	diags = append(diags, a.checkConjugation(infos[verbIdx])...)
	return diags
}

// checkConjugation compares the surface verb form against the root entry's
// present-tense form. Verbs with no conjugation table are skipped.
func (a *Analyzer) checkConjugation(verb TokenInfo) []string {
	rf, ok := a.index.Lookup(verb.Root)
	if !ok {
		return nil
	}

	present := rf.Entry.Conjugations["present"]
	if present == "" || verb.Token == present {
		return nil
	}

	if verb.Token == verb.Root {
		return []string{fmt.Sprintf(
			"%q is the infinitive - use the present tense %q here.",
			verb.Token, present)}
	}
	return []string{fmt.Sprintf(
		"%q may be the wrong form - the present tense of %q is %q.",
		verb.Token, verb.Root, present)}
}

// checkAgreement inspects every indefinite article in the sentence. An
// article followed by a noun is checked for gender agreement; an article
// followed by adjective + noun additionally checks the adjective's ending
// against the article's gender class.
func (a *Analyzer) checkAgreement(infos []TokenInfo) []string {
	var diags []string

	for i, info := range infos {
		var article Gender
		switch info.Token {
		case string(GenderCommon):
			article = GenderCommon
		case string(GenderNeuter):
			article = GenderNeuter
		default:
			continue
		}

		if i+1 >= len(infos) {
			continue
		}
		next := infos[i+1]

		switch next.Category {
		case CategoryNoun:
			diags = append(diags, a.checkNounGender(article, next)...)

		case CategoryAdjective:
			if i+2 < len(infos) && infos[i+2].Category == CategoryNoun {
				diags = append(diags, a.checkNounGender(article, infos[i+2])...)
				diags = append(diags, a.checkAdjectiveForm(article, next)...)
			}
		}
	}

	return diags
}

// checkNounGender compares the article's gender class with the noun root's.
func (a *Analyzer) checkNounGender(article Gender, noun TokenInfo) []string {
	if noun.Form == nil {
		return nil
	}
	gender := noun.Form.Entry.Gender
	if gender == "" || gender == article {
		return nil
	}
	return []string{fmt.Sprintf(
		"%q is an %s-word - it takes %q, not %q.",
		noun.Root, gender, gender.Article(), article.Article())}
}

// checkAdjectiveForm verifies the adjective surface form matches the ending
// the article's gender class calls for: the -t form with an et-word, the base
// form with an en-word. Adjectives without a recorded -t form are skipped.
func (a *Analyzer) checkAdjectiveForm(article Gender, adj TokenInfo) []string {
	if adj.Form == nil {
		return nil
	}

	tform := adj.Form.Entry.TForm
	if tform == "" {
		return nil
	}

	expected := adj.Root
	if article == GenderNeuter {
		expected = tform
	}
	if adj.Token == expected {
		return nil
	}

	if article == GenderNeuter {
		return []string{fmt.Sprintf(
			"The adjective %q needs the -t ending with an et-word: use %q.",
			adj.Token, expected)}
	}
	return []string{fmt.Sprintf(
		"The adjective %q should not have the -t ending with an en-word: use %q.",
		adj.Token, expected)}
}
