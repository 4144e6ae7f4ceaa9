package dansk

import (
	"sort"
	"sync"
)

// Index builds and caches the derived lookup structures over a vocabulary
// dataset: the all-forms map (every surface form back to its root) and the
// per-category root sets.
//
// The dataset is treated as immutable for the lifetime of the Index; the
// derived structures are built once on first use and cached. An Index is safe
// for concurrent use after the dataset is handed over.
type Index struct {
	dataset Dataset

	once       sync.Once
	allForms   map[string]ResolvedForm
	verbs      map[string]struct{}
	nouns      map[string]struct{}
	adjectives map[string]struct{}
}

// NewIndex creates an Index over the given dataset. The dataset must not be
// mutated afterwards.
func NewIndex(dataset Dataset) *Index {
	return &Index{dataset: dataset}
}

// build populates the cached lookup structures. Roots are inserted before any
// derived form so a derived form can never claim a key that belongs to a
// root's own dictionary form.
func (ix *Index) build() {
	ix.allForms = make(map[string]ResolvedForm)
	ix.verbs = make(map[string]struct{})
	ix.nouns = make(map[string]struct{})
	ix.adjectives = make(map[string]struct{})

	levels := make([]string, 0, len(ix.dataset))
	for level := range ix.dataset {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	// Pass 1: every root form, keyed by the root itself. When the same root
	// appears under several categories or levels the first-seen entry wins,
	// so the sorted-level and Categories iteration order decides collisions.
	for _, level := range levels {
		for _, category := range Categories {
			for root, entry := range ix.dataset[level][category] {
				if _, taken := ix.allForms[root]; !taken {
					ix.allForms[root] = ResolvedForm{
						Root:     root,
						Category: category,
						Level:    level,
						Entry:    entry,
					}
				}

				switch category {
				case CategoryVerb:
					ix.verbs[root] = struct{}{}
				case CategoryNoun:
					ix.nouns[root] = struct{}{}
				case CategoryAdjective:
					ix.adjectives[root] = struct{}{}
				}
			}
		}
	}

	// Pass 2: derived forms. Never overwrite an existing key: a root form
	// already present (or an earlier derived form) wins.
	for _, level := range levels {
		for root, entry := range ix.dataset[level][CategoryVerb] {
			tenses := make([]string, 0, len(entry.Conjugations))
			for tense := range entry.Conjugations {
				tenses = append(tenses, tense)
			}
			sort.Strings(tenses)

			for _, tense := range tenses {
				form := entry.Conjugations[tense]
				if form == "" || form == root {
					continue
				}
				if _, taken := ix.allForms[form]; taken {
					continue
				}
				ix.allForms[form] = ResolvedForm{
					Root:       root,
					Category:   CategoryVerb,
					Level:      level,
					Entry:      entry,
					Inflection: tense,
				}
			}
		}

		for root, entry := range ix.dataset[level][CategoryAdjective] {
			if entry.TForm == "" || entry.TForm == root {
				continue
			}
			if _, taken := ix.allForms[entry.TForm]; taken {
				continue
			}
			ix.allForms[entry.TForm] = ResolvedForm{
				Root:       root,
				Category:   CategoryAdjective,
				Level:      level,
				Entry:      entry,
				Inflection: "tform",
			}
		}
	}
}

// AllForms returns the map from every known surface form to its ResolvedForm.
// Built on the first call and cached; callers must treat it as read-only.
func (ix *Index) AllForms() map[string]ResolvedForm {
	ix.once.Do(ix.build)
	return ix.allForms
}

// Lookup resolves a surface form via the all-forms map.
func (ix *Index) Lookup(form string) (ResolvedForm, bool) {
	ix.once.Do(ix.build)
	rf, ok := ix.allForms[form]
	return rf, ok
}

// Verbs returns the set of verb roots across all levels.
func (ix *Index) Verbs() map[string]struct{} {
	ix.once.Do(ix.build)
	return ix.verbs
}

// Nouns returns the set of noun roots across all levels.
func (ix *Index) Nouns() map[string]struct{} {
	ix.once.Do(ix.build)
	return ix.nouns
}

// Adjectives returns the set of adjective roots across all levels.
func (ix *Index) Adjectives() map[string]struct{} {
	ix.once.Do(ix.build)
	return ix.adjectives
}

// WordsForLevel returns the category-to-root-to-entry mapping for one level,
// or an empty mapping when the level is unknown.
func (ix *Index) WordsForLevel(level string) map[Category]map[string]Entry {
	if words, ok := ix.dataset[level]; ok {
		return words
	}
	return map[Category]map[string]Entry{}
}

// Levels returns the dataset's level tags in canonical order.
func (ix *Index) Levels() []string {
	levels := make([]string, 0, len(ix.dataset))
	for level := range ix.dataset {
		levels = append(levels, level)
	}
	return SortLevels(levels)
}

// Dataset returns the raw dataset the index was built over.
func (ix *Index) Dataset() Dataset {
	return ix.dataset
}

// Empty reports whether the dataset contains no entries at all.
func (ix *Index) Empty() bool {
	for _, categories := range ix.dataset {
		for _, entries := range categories {
			if len(entries) > 0 {
				return false
			}
		}
	}
	return true
}
