// Package vocab loads vocabulary datasets for the analysis engine.
//
// The canonical format is JSON shaped as level → category → root → entry.
// An HTML importer is also provided for vocabulary published as word tables
// (the original tool kept its dataset in its web page).
package vocab

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	dansk "github.com/itsmemarly/Danish-language-tool"
)

// Load decodes a JSON dataset from a reader and validates it.
func Load(r io.Reader) (dansk.Dataset, error) {
	var ds dansk.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, &dansk.DatasetError{Message: "decoding JSON", Cause: err}
	}

	normalize(ds)

	if err := Validate(ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// LoadFile loads a dataset from a file, dispatching on the extension:
// .html and .htm files go through ImportHTML, everything else is decoded
// as JSON. The path is provided by the caller and is intentionally
// user-controlled.
func LoadFile(path string) (dansk.Dataset, error) {
	f, err := os.Open(path) // #nosec G304 - CLI tool reads user-specified files
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ImportHTML(f)
	default:
		return Load(f)
	}
}

// normalize fills in the Word field from the map key where the JSON omitted
// it, so entries are self-describing once handed to callers.
func normalize(ds dansk.Dataset) {
	for _, categories := range ds {
		for _, entries := range categories {
			for root, entry := range entries {
				if entry.Word == "" {
					entry.Word = root
					entries[root] = entry
				}
			}
		}
	}
}

// Merge copies every entry of src into dst, overwriting on conflict. Levels
// and categories missing from dst are created.
func Merge(dst, src dansk.Dataset) {
	for level, categories := range src {
		if dst[level] == nil {
			dst[level] = make(map[dansk.Category]map[string]dansk.Entry)
		}
		for category, entries := range categories {
			if dst[level][category] == nil {
				dst[level][category] = make(map[string]dansk.Entry)
			}
			for root, entry := range entries {
				dst[level][category][root] = entry
			}
		}
	}
}
