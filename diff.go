package dansk

import "reflect"

// DiffResult represents the difference between two vocabulary revisions.
type DiffResult struct {
	// Added contains entries that are new (not in the previous revision).
	Added []DiffEntry

	// Removed contains entries that were removed (not in the new revision).
	Removed []DiffEntry

	// Unchanged contains entries present and identical in both revisions.
	Unchanged []DiffEntry

	// Modified contains pairs where the root survived but the entry data
	// (glosses, conjugations, gender, examples) changed.
	Modified []ModifiedEntry
}

// DiffEntry identifies one dataset entry by its position.
type DiffEntry struct {
	Level    string
	Category Category
	Root     string
	Entry    Entry
}

// ModifiedEntry represents an entry whose data changed between revisions.
type ModifiedEntry struct {
	Old DiffEntry
	New DiffEntry
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	Added     int
	Removed   int
	Unchanged int
	Modified  int
}

// Stats returns summary statistics for the diff.
func (d *DiffResult) Stats() DiffStats {
	return DiffStats{
		Added:     len(d.Added),
		Removed:   len(d.Removed),
		Unchanged: len(d.Unchanged),
		Modified:  len(d.Modified),
	}
}

// HasChanges returns true if there are any differences.
func (d *DiffResult) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Modified) > 0
}

// NeedsReview returns the entries worth re-checking after a dataset update:
// new entries plus the new side of every modification.
func (d *DiffResult) NeedsReview() []DiffEntry {
	result := make([]DiffEntry, 0, len(d.Added)+len(d.Modified))
	result = append(result, d.Added...)
	for _, m := range d.Modified {
		result = append(result, m.New)
	}
	return result
}

// diffKey identifies an entry position across revisions.
type diffKey struct {
	level    string
	category Category
	root     string
}

// DiffDatasets compares two vocabulary revisions and returns the
// differences. Useful for reviewing what a dataset update changed before
// swapping the index over to it.
func DiffDatasets(old, new Dataset) *DiffResult {
	result := &DiffResult{}

	oldByKey := flattenDataset(old)
	newByKey := flattenDataset(new)

	for key, oldEntry := range oldByKey {
		newEntry, exists := newByKey[key]
		switch {
		case !exists:
			result.Removed = append(result.Removed, oldEntry)
		case reflect.DeepEqual(oldEntry.Entry, newEntry.Entry):
			result.Unchanged = append(result.Unchanged, oldEntry)
		default:
			result.Modified = append(result.Modified, ModifiedEntry{
				Old: oldEntry,
				New: newEntry,
			})
		}
	}

	for key, newEntry := range newByKey {
		if _, exists := oldByKey[key]; !exists {
			result.Added = append(result.Added, newEntry)
		}
	}

	return result
}

func flattenDataset(ds Dataset) map[diffKey]DiffEntry {
	flat := make(map[diffKey]DiffEntry)
	for level, categories := range ds {
		for category, entries := range categories {
			for root, entry := range entries {
				flat[diffKey{level, category, root}] = DiffEntry{
					Level:    level,
					Category: category,
					Root:     root,
					Entry:    entry,
				}
			}
		}
	}
	return flat
}
