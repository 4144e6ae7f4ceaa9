package provider

import "context"

// MockSuggester is a mock suggestion backend for testing.
type MockSuggester struct {
	Suggestions map[string]string // Map of Danish sentence to suggestion
	CallCount   int               // Number of times Suggest was called
	LastRequest *SuggestRequest   // Last request received
	Err         error             // Error to return, if any
}

// NewMockSuggester creates a new mock suggester with default suggestions.
func NewMockSuggester() *MockSuggester {
	return &MockSuggester{
		Suggestions: map[string]string{
			"jeg spiser et æble":   "I am eating an apple.",
			"hun drikker kaffe":    "She is drinking coffee.",
			"huset er stort":       "The house is big.",
			"han kan lide at læse": "He likes to read.",
		},
	}
}

// Suggest returns mock suggestions. Sentences with no configured suggestion
// fall back to the heuristic draft from the request.
func (m *MockSuggester) Suggest(ctx context.Context, req SuggestRequest) (string, error) {
	m.CallCount++
	m.LastRequest = &req

	if m.Err != nil {
		return "", m.Err
	}

	if suggestion, ok := m.Suggestions[req.Sentence]; ok {
		return suggestion, nil
	}
	return req.Draft, nil
}

// Reset resets the call count and last request.
func (m *MockSuggester) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockSuggester implements Suggester
var _ Suggester = (*MockSuggester)(nil)
