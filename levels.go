package dansk

import "sort"

// Proficiency level tags used by the bundled datasets. Levels are ordered but
// otherwise opaque to the engine: a dataset may define its own tags and the
// index will carry them through unchanged.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// LevelNames maps level tags to human-readable names for display.
var LevelNames = map[string]string{
	LevelBeginner:     "Beginner (A1–A2)",
	LevelIntermediate: "Intermediate (B1–B2)",
	LevelAdvanced:     "Advanced (C1)",
}

// levelOrder defines the canonical ordering of the known level tags.
var levelOrder = map[string]int{
	LevelBeginner:     0,
	LevelIntermediate: 1,
	LevelAdvanced:     2,
}

// LevelName returns the human-readable name for a level tag.
// Falls back to the tag itself if not found.
func LevelName(level string) string {
	if name, ok := LevelNames[level]; ok {
		return name
	}
	return level
}

// LevelRank returns the ordering rank of a level tag. Unknown tags sort after
// all known ones so custom dataset levels still list deterministically.
func LevelRank(level string) int {
	if rank, ok := levelOrder[level]; ok {
		return rank
	}
	return len(levelOrder)
}

// SortLevels orders level tags by rank, then name. The slice is sorted in
// place and returned for convenience.
func SortLevels(levels []string) []string {
	sort.Slice(levels, func(i, j int) bool {
		ri, rj := LevelRank(levels[i]), LevelRank(levels[j])
		if ri != rj {
			return ri < rj
		}
		return levels[i] < levels[j]
	})
	return levels
}
