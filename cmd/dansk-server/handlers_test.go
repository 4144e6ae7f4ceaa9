package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dansk "github.com/itsmemarly/Danish-language-tool"
)

func testServer() *server {
	ds := dansk.Dataset{
		"beginner": {
			dansk.CategoryNoun: {
				"æble": {
					Word:               "æble",
					Translations:       []string{"apple"},
					Gender:             dansk.GenderNeuter,
					Example:            "jeg spiser et æble",
					ExampleTranslation: "I am eating an apple.",
				},
			},
			dansk.CategoryVerb: {
				"spise": {
					Word:         "spise",
					Translations: []string{"eat"},
					Conjugations: map[string]string{"present": "spiser"},
				},
			},
			dansk.CategoryOther: {
				"jeg": {Word: "jeg", Translations: []string{"i"}},
				"et":  {Word: "et", Translations: []string{"an"}},
			},
		},
	}

	index := dansk.NewIndex(ds)
	return newServer(index, dansk.NewTranslator(index))
}

func TestAnalyzeHandler(t *testing.T) {
	s := testServer()

	body := `{"sentence": "jeg spiser et æble"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.AnalyzeHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		Sentence    string   `json:"sentence"`
		Diagnostics []string `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "jeg spiser et æble", resp.Sentence)
	assert.Equal(t, []string{dansk.MsgAllGood}, resp.Diagnostics)
}

func TestAnalyzeHandler_ReportsDiagnostics(t *testing.T) {
	s := testServer()

	body := `{"sentence": "jeg et æble spiser"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.AnalyzeHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Diagnostics []string `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Diagnostics, 1)
	assert.Contains(t, resp.Diagnostics[0], "V2 rule")
}

func TestAnalyzeHandler_RejectsGet(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/analyze", nil)
	rec := httptest.NewRecorder()

	s.AnalyzeHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAnalyzeHandler_RejectsBadJSON(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	s.AnalyzeHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslateHandler(t *testing.T) {
	s := testServer()

	body := `{"sentence": "jeg spiser et æble"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/translate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.TranslateHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Text   string `json:"text"`
		Source string `json:"source"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "I am eating an apple.", resp.Text)
	assert.Equal(t, string(dansk.SourceHeuristic), resp.Source)
}

func TestWordsHandler(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/words", nil)
	rec := httptest.NewRecorder()

	s.WordsHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]map[string]map[string]dansk.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp, "beginner")
	assert.Contains(t, resp["beginner"]["noun"], "æble")
}

func TestWordsHandler_LevelFilter(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/words?level=advanced", nil)
	rec := httptest.NewRecorder()

	s.WordsHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]map[string]map[string]dansk.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp, "advanced")
	assert.Empty(t, resp["advanced"])
}

func TestWordsHandler_RejectsPost(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/words", nil)
	rec := httptest.NewRecorder()

	s.WordsHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.HealthHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, dansk.Name, resp["service"])
}
