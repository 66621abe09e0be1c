// Package research holds the two-step shopping research pipeline:
// survey generation, intent analysis, category resolution, vector search,
// fusion ranking and batched explanation.
package research

import "errors"

var (
	// ErrSessionNotFound means the search id is unknown or expired. Answers
	// cannot be trusted against a survey that no longer exists, so the
	// request is rejected instead of defaulted.
	ErrSessionNotFound = errors.New("search session not found or expired")

	// ErrIntentUnavailable means the LLM could not produce a usable intent
	// even after a retry. There is no safe fallback intent.
	ErrIntentUnavailable = errors.New("search intent could not be extracted")

	// ErrMalformedResponse marks a collaborator reply that failed JSON or
	// schema validation.
	ErrMalformedResponse = errors.New("malformed collaborator response")

	// ErrCollaboratorUnavailable marks a transport-level failure of an
	// external service (LLM, embedding, vector index).
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
)
