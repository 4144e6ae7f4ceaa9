// Package provider defines the suggestion backend interface and implementations.
package provider

import dansk "github.com/itsmemarly/Danish-language-tool"

// Suggester is the interface for AI suggestion backends.
// This is an alias to the main package interface for convenience.
type Suggester = dansk.Suggester

// SuggestRequest is an alias to the main package type.
type SuggestRequest = dansk.SuggestRequest
