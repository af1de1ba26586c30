package enhance

import "errors"

var (
	// ErrMissingAPIKey is returned when no API key is provided
	ErrMissingAPIKey = errors.New("missing groq api key")
	// ErrRequestFailed is returned when the completion request cannot be sent
	ErrRequestFailed = errors.New("completion request failed")
	// ErrUnexpectedStatus is returned when the API responds with a non-200 status
	ErrUnexpectedStatus = errors.New("unexpected completion response status")
	// ErrEmptyCompletion is returned when the API responds without any choices
	ErrEmptyCompletion = errors.New("completion response contained no choices")
)
