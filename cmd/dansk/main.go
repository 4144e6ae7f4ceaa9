// Command dansk checks and translates Danish sentences against a vocabulary file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	dansk "github.com/itsmemarly/Danish-language-tool"
	"github.com/itsmemarly/Danish-language-tool/cache"
	"github.com/itsmemarly/Danish-language-tool/provider"
	"github.com/itsmemarly/Danish-language-tool/vocab"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = dansk.Version
	commit    = dansk.GitCommit
	buildDate = dansk.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dansk", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	vocabPath := fs.String("vocab", "", "Vocabulary dataset file (JSON)")
	translate := fs.Bool("translate", false, "Translate the sentence instead of checking grammar")
	words := fs.Bool("words", false, "List vocabulary words and exit")
	level := fs.String("level", "", "Restrict -words output to one level")
	diffFile := fs.String("diff", "", "Compare the vocabulary with a previous revision and show changes")
	apiKey := fs.String("api-key", "", "OpenAI API key for polished translations (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model to use")
	suggest := fs.Bool("suggest", false, "Polish the translation with OpenAI (requires API key)")
	cacheTTL := fs.Int("cache-ttl", 3600, "Translation cache TTL in seconds (0 to disable)")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", dansk.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	if *vocabPath == "" {
		fs.Usage()
		return fmt.Errorf("--vocab is required")
	}

	ds, err := vocab.LoadFile(*vocabPath)
	if err != nil {
		return fmt.Errorf("loading vocabulary: %w", err)
	}
	index := dansk.NewIndex(ds)

	if *diffFile != "" {
		return runDiff(ds, *diffFile, stdout, *jsonOutput)
	}

	if *words {
		return runWords(index, *level, stdout, *jsonOutput)
	}

	// Get the sentence
	var sentence string
	if fs.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		sentence = strings.TrimSpace(string(data))
	} else {
		sentence = strings.Join(fs.Args(), " ")
	}

	if *translate {
		return runTranslate(index, sentence, translateOptions{
			apiKey:   *apiKey,
			model:    *model,
			suggest:  *suggest,
			cacheTTL: *cacheTTL,
			quiet:    *quiet,
			jsonOut:  *jsonOutput,
		}, stdout, stderr)
	}

	return runCheck(index, sentence, stdout, *jsonOutput)
}

// runCheck prints the grammar diagnostics for a sentence.
func runCheck(index *dansk.Index, sentence string, stdout io.Writer, jsonOut bool) error {
	analyzer := dansk.NewAnalyzer(index)
	diagnostics := analyzer.Check(sentence)

	if jsonOut {
		out := struct {
			Sentence    string   `json:"sentence"`
			Diagnostics []string `json:"diagnostics"`
		}{Sentence: sentence, Diagnostics: diagnostics}

		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, d := range diagnostics {
		fmt.Fprintln(stdout, d)
	}
	return nil
}

type translateOptions struct {
	apiKey   string
	model    string
	suggest  bool
	cacheTTL int
	quiet    bool
	jsonOut  bool
}

// runTranslate prints the translation of a sentence, optionally polished by
// the OpenAI suggester.
func runTranslate(index *dansk.Index, sentence string, opts translateOptions, stdout, stderr io.Writer) error {
	var tOpts []dansk.TranslatorOption

	if opts.cacheTTL > 0 {
		tOpts = append(tOpts, dansk.WithCache(cache.NewInMemoryCache(opts.cacheTTL)))
	}

	if opts.suggest {
		key := opts.apiKey
		if key == "" {
			key = os.Getenv("OPENAI_API_KEY")
		}
		if key == "" {
			return fmt.Errorf("OpenAI API key required for -suggest (--api-key or OPENAI_API_KEY env)")
		}

		suggester := provider.NewOpenAISuggester(provider.OpenAIConfig{
			APIKey: key,
			Model:  opts.model,
		})
		retryable := dansk.NewRetryableSuggester(suggester, dansk.DefaultRetryConfig())
		tOpts = append(tOpts, dansk.WithSuggester(retryable))
	}

	translator := dansk.NewTranslator(index, tOpts...)

	if !opts.quiet {
		fmt.Fprintf(stderr, "Translating %q...\n", sentence)
	}

	start := time.Now()
	result, err := translator.TranslateContext(context.Background(), sentence)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	elapsed := time.Since(start)

	if opts.jsonOut {
		out := struct {
			Sentence  string   `json:"sentence"`
			Text      string   `json:"text"`
			Source    string   `json:"source"`
			Unknown   []string `json:"unknown,omitempty"`
			ElapsedMs int64    `json:"elapsed_ms"`
		}{
			Sentence:  sentence,
			Text:      result.Text,
			Source:    string(result.Source),
			Unknown:   result.Unknown,
			ElapsedMs: elapsed.Milliseconds(),
		}

		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintln(stdout, result.Text)

	if !opts.quiet {
		fmt.Fprintf(stderr, "\nDone in %v (source: %s)\n", elapsed.Round(time.Millisecond), result.Source)
		if len(result.Unknown) > 0 {
			fmt.Fprintf(stderr, "  Unknown words: %s\n", strings.Join(result.Unknown, ", "))
		}
	}

	return nil
}

// runWords lists the vocabulary, optionally restricted to one level.
func runWords(index *dansk.Index, level string, stdout io.Writer, jsonOut bool) error {
	levels := index.Levels()
	if level != "" {
		levels = []string{level}
	}

	if jsonOut {
		out := make(map[string]map[dansk.Category]map[string]dansk.Entry, len(levels))
		for _, lvl := range levels {
			out[lvl] = index.WordsForLevel(lvl)
		}

		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, lvl := range levels {
		categories := index.WordsForLevel(lvl)
		fmt.Fprintf(stdout, "%s\n", dansk.LevelName(lvl))
		for _, category := range dansk.Categories {
			entries := categories[category]
			if len(entries) == 0 {
				continue
			}
			fmt.Fprintf(stdout, "  %s:\n", category)
			for root, entry := range entries {
				fmt.Fprintf(stdout, "    %-16s %s\n", root, entry.Gloss(""))
			}
		}
	}
	return nil
}

// runDiff compares the loaded vocabulary with a previous revision.
func runDiff(ds dansk.Dataset, oldPath string, stdout io.Writer, jsonOut bool) error {
	oldDs, err := vocab.LoadFile(oldPath)
	if err != nil {
		return fmt.Errorf("loading previous revision: %w", err)
	}

	diff := dansk.DiffDatasets(oldDs, ds)
	stats := diff.Stats()

	if jsonOut {
		out := struct {
			PreviousFile string `json:"previous_file"`
			Stats        struct {
				Added     int `json:"added"`
				Removed   int `json:"removed"`
				Modified  int `json:"modified"`
				Unchanged int `json:"unchanged"`
			} `json:"stats"`
			Added    []string `json:"added,omitempty"`
			Removed  []string `json:"removed,omitempty"`
			Modified []string `json:"modified,omitempty"`
		}{PreviousFile: filepath.Base(oldPath)}

		out.Stats.Added = stats.Added
		out.Stats.Removed = stats.Removed
		out.Stats.Modified = stats.Modified
		out.Stats.Unchanged = stats.Unchanged

		for _, e := range diff.Added {
			out.Added = append(out.Added, e.Root)
		}
		for _, e := range diff.Removed {
			out.Removed = append(out.Removed, e.Root)
		}
		for _, m := range diff.Modified {
			out.Modified = append(out.Modified, m.New.Root)
		}

		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(stdout, "Diff against %s\n\n", filepath.Base(oldPath))
	fmt.Fprintf(stdout, "Summary:\n")
	fmt.Fprintf(stdout, "  Unchanged: %d\n", stats.Unchanged)
	fmt.Fprintf(stdout, "  Added:     %d\n", stats.Added)
	fmt.Fprintf(stdout, "  Removed:   %d\n", stats.Removed)
	fmt.Fprintf(stdout, "  Modified:  %d\n", stats.Modified)
	fmt.Fprintf(stdout, "\n")

	if !diff.HasChanges() {
		fmt.Fprintf(stdout, "No changes detected.\n")
		return nil
	}

	if len(diff.Added) > 0 {
		fmt.Fprintf(stdout, "Added:\n")
		for _, e := range diff.Added {
			fmt.Fprintf(stdout, "  + %s/%s %q\n", e.Level, e.Category, e.Root)
		}
		fmt.Fprintf(stdout, "\n")
	}

	if len(diff.Modified) > 0 {
		fmt.Fprintf(stdout, "Modified:\n")
		for _, m := range diff.Modified {
			fmt.Fprintf(stdout, "  ~ %s/%s %q\n", m.New.Level, m.New.Category, m.New.Root)
		}
		fmt.Fprintf(stdout, "\n")
	}

	if len(diff.Removed) > 0 {
		fmt.Fprintf(stdout, "Removed:\n")
		for _, e := range diff.Removed {
			fmt.Fprintf(stdout, "  - %s/%s %q\n", e.Level, e.Category, e.Root)
		}
		fmt.Fprintf(stdout, "\n")
	}

	return nil
}
