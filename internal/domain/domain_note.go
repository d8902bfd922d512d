// Package domain holds the business entities and repository contracts.
package domain

// Note is a named text document identified by a client-chosen string key.
type Note struct {
	ID      string
	Content string
}
