package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testVocabJSON = `{
	"beginner": {
		"noun": {
			"æble": {
				"translations": ["apple"],
				"gender": "et",
				"example": "jeg spiser et æble",
				"exampleTranslation": "I am eating an apple."
			}
		},
		"verb": {
			"spise": {
				"translations": ["eat"],
				"conjugations": {"present": "spiser"}
			}
		},
		"other": {
			"jeg": {"translations": ["i"]},
			"et": {"translations": ["an"]}
		}
	}
}`

func writeVocabFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing vocab file: %v", err)
	}
	return path
}

func TestRun_Check(t *testing.T) {
	vocabPath := writeVocabFile(t, testVocabJSON)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-vocab", vocabPath, "jeg", "spiser", "et", "æble"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.Contains(stdout.String(), "Looks good!") {
		t.Errorf("Expected success message, got: %s", stdout.String())
	}
}

func TestRun_Check_ReportsProblems(t *testing.T) {
	vocabPath := writeVocabFile(t, testVocabJSON)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-vocab", vocabPath, "jeg", "et", "æble", "spiser"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.Contains(stdout.String(), "V2 rule") {
		t.Errorf("Expected word order diagnostic, got: %s", stdout.String())
	}
}

func TestRun_Check_JSONOutput(t *testing.T) {
	vocabPath := writeVocabFile(t, testVocabJSON)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-vocab", vocabPath, "-json", "jeg", "spiser", "et", "æble"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var out struct {
		Sentence    string   `json:"sentence"`
		Diagnostics []string `json:"diagnostics"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, stdout.String())
	}

	if out.Sentence != "jeg spiser et æble" {
		t.Errorf("Expected sentence in output, got %q", out.Sentence)
	}
	if len(out.Diagnostics) != 1 {
		t.Errorf("Expected 1 diagnostic, got %v", out.Diagnostics)
	}
}

func TestRun_Check_HTMLVocabulary(t *testing.T) {
	const page = `<html><body>
<table class="vocabulary" data-level="beginner" data-category="noun">
  <tr>
    <td class="word">æble</td>
    <td class="translations">apple</td>
    <td class="gender">et</td>
  </tr>
</table>
<table class="vocabulary" data-level="beginner" data-category="verb">
  <tr>
    <td class="word">spise</td>
    <td class="translations">eat</td>
    <td class="present">spiser</td>
  </tr>
</table>
<table class="vocabulary" data-level="beginner" data-category="other">
  <tr><td class="word">jeg</td><td class="translations">i</td></tr>
  <tr><td class="word">et</td><td class="translations">an</td></tr>
</table>
</body></html>`

	path := filepath.Join(t.TempDir(), "vocab.html")
	if err := os.WriteFile(path, []byte(page), 0o600); err != nil {
		t.Fatalf("writing vocab file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	err := run([]string{"-vocab", path, "jeg", "spiser", "et", "æble"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.Contains(stdout.String(), "Looks good!") {
		t.Errorf("Expected success message with HTML vocabulary, got: %s", stdout.String())
	}
}

func TestRun_Translate(t *testing.T) {
	vocabPath := writeVocabFile(t, testVocabJSON)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-vocab", vocabPath, "-translate", "-quiet", "jeg", "spiser", "et", "æble"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if strings.TrimSpace(stdout.String()) != "I am eating an apple." {
		t.Errorf("Expected example translation, got: %s", stdout.String())
	}
}

func TestRun_Translate_SuggestWithoutKey(t *testing.T) {
	vocabPath := writeVocabFile(t, testVocabJSON)
	t.Setenv("OPENAI_API_KEY", "")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-vocab", vocabPath, "-translate", "-suggest", "jeg", "spiser"}, &stdout, &stderr)
	if err == nil {
		t.Fatal("Expected error when -suggest is used without an API key")
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestRun_Words(t *testing.T) {
	vocabPath := writeVocabFile(t, testVocabJSON)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-vocab", vocabPath, "-words"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "Beginner") {
		t.Errorf("Expected level heading, got: %s", out)
	}
	if !strings.Contains(out, "æble") || !strings.Contains(out, "apple") {
		t.Errorf("Expected word listing, got: %s", out)
	}
}

func TestRun_Diff(t *testing.T) {
	oldVocab := writeVocabFile(t, `{
		"beginner": {
			"noun": {
				"æble": {"translations": ["apple"], "gender": "et"}
			}
		}
	}`)
	newVocab := writeVocabFile(t, testVocabJSON)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-vocab", newVocab, "-diff", oldVocab}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "Added:") {
		t.Errorf("Expected added section, got: %s", out)
	}
	if !strings.Contains(out, "spise") {
		t.Errorf("Expected new verb in diff, got: %s", out)
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-version"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.Contains(stdout.String(), "dansk") {
		t.Errorf("Expected version output, got: %s", stdout.String())
	}
}

func TestRun_MissingVocab(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"jeg", "spiser"}, &stdout, &stderr)
	if err == nil {
		t.Fatal("Expected error when -vocab is missing")
	}
}

func TestRun_VocabFileNotFound(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-vocab", "does-not-exist.json"}, &stdout, &stderr)
	if err == nil {
		t.Fatal("Expected error for a missing vocabulary file")
	}
}
