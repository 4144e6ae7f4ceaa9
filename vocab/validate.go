package vocab

import (
	dansk "github.com/itsmemarly/Danish-language-tool"
)

// knownCategories are the category keys a dataset may use.
var knownCategories = map[dansk.Category]bool{
	dansk.CategoryNoun:      true,
	dansk.CategoryVerb:      true,
	dansk.CategoryAdjective: true,
	dansk.CategoryOther:     true,
}

// Validate checks the structural invariants of a dataset: known categories
// only, category-appropriate attributes, and internally consistent gender and
// conjugation data. The first violation found is returned.
//
// Root uniqueness within one level+category is guaranteed by the map shape
// and needs no separate check.
func Validate(ds dansk.Dataset) error {
	for level, categories := range ds {
		for category, entries := range categories {
			if !knownCategories[category] {
				return &dansk.DatasetError{
					Message: "unknown category " + string(category),
					Level:   level,
				}
			}

			for root, entry := range entries {
				if err := validateEntry(level, category, root, entry); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateEntry(level string, category dansk.Category, root string, entry dansk.Entry) error {
	if entry.Word != "" && entry.Word != root {
		return &dansk.DatasetError{
			Message: "entry word does not match its key",
			Level:   level,
			Word:    root,
		}
	}

	switch category {
	case dansk.CategoryNoun:
		if entry.Gender != "" && entry.Gender != dansk.GenderCommon && entry.Gender != dansk.GenderNeuter {
			return &dansk.DatasetError{
				Message: "noun gender must be \"en\" or \"et\"",
				Level:   level,
				Word:    root,
			}
		}
		if len(entry.Conjugations) > 0 || entry.TForm != "" {
			return &dansk.DatasetError{
				Message: "noun carries verb or adjective attributes",
				Level:   level,
				Word:    root,
			}
		}

	case dansk.CategoryVerb:
		if entry.Gender != "" || entry.TForm != "" {
			return &dansk.DatasetError{
				Message: "verb carries noun or adjective attributes",
				Level:   level,
				Word:    root,
			}
		}
		for tense, form := range entry.Conjugations {
			if form == "" {
				return &dansk.DatasetError{
					Message: "empty conjugated form for tense " + tense,
					Level:   level,
					Word:    root,
				}
			}
		}

	case dansk.CategoryAdjective:
		if entry.Gender != "" || len(entry.Conjugations) > 0 {
			return &dansk.DatasetError{
				Message: "adjective carries noun or verb attributes",
				Level:   level,
				Word:    root,
			}
		}
	}

	return nil
}
