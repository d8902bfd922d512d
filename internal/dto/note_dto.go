// Package dto defines the request and response shapes of the HTTP API.
package dto

// NoteGetResponse is the body of GET /note/:id. A missing note answers with
// empty content, never an error.
type NoteGetResponse struct {
	Content string `json:"content"`
}

// NoteSetRequest is the body of POST /note/:id. Content is optional; an
// absent field is treated as empty content.
type NoteSetRequest struct {
	Content string `json:"content"`
}

// NoteSetResponse acknowledges a note write.
type NoteSetResponse struct {
	Status string `json:"status"`
}
