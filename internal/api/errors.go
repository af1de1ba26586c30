package api

import "errors"

var (
	// ErrInvalidRequestBody is returned when the request body cannot be decoded
	ErrInvalidRequestBody = errors.New("invalid request body")
	// ErrWebsiteRequired is returned when no website identifier is provided
	ErrWebsiteRequired = errors.New("website_url required")
	// ErrMultipleJSONObjects is returned when the request body contains more than one JSON object
	ErrMultipleJSONObjects = errors.New("request body must contain a single JSON object")
	// ErrPersistenceFailed is returned when a record cannot be stored or loaded
	ErrPersistenceFailed = errors.New("failed to access stored records")
)
