package dansk

import "fmt"

// SuggestionError is the base error type for suggestion failures.
type SuggestionError struct {
	Message string
	Cause   error
}

func (e *SuggestionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SuggestionError) Unwrap() error {
	return e.Cause
}

// ProviderError indicates an AI suggester failure (API error, rate limit, etc.).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// DatasetError indicates a malformed vocabulary dataset.
type DatasetError struct {
	Message string
	Level   string   // level the offending entry lives in, if known
	Word    string   // offending root word, if known
	Cause   error
}

func (e *DatasetError) Error() string {
	where := ""
	if e.Level != "" || e.Word != "" {
		where = fmt.Sprintf(" (%s/%s)", e.Level, e.Word)
	}
	if e.Cause != nil {
		return fmt.Sprintf("dataset error%s: %s: %v", where, e.Message, e.Cause)
	}
	return fmt.Sprintf("dataset error%s: %s", where, e.Message)
}

func (e *DatasetError) Unwrap() error {
	return e.Cause
}
