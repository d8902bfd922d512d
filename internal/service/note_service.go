// Package service implements the business logic layer.
package service

import (
	"context"

	"github.com/notevault/note-storage-service/internal/domain"
	"github.com/notevault/note-storage-service/internal/dto"
)

// NoteService defines the note business operations.
type NoteService interface {
	// Get returns the note content for id. Absence is not an error: the
	// content degrades to the empty string.
	Get(ctx context.Context, id string) (*dto.NoteGetResponse, error)

	// Set writes content under id with replace-or-insert semantics.
	Set(ctx context.Context, id string, content string) error
}

type noteService struct {
	noteRepo domain.NoteRepository
}

func NewNoteService(noteRepo domain.NoteRepository) NoteService {
	return &noteService{noteRepo: noteRepo}
}

func (s *noteService) Get(ctx context.Context, id string) (*dto.NoteGetResponse, error) {
	note, err := s.noteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := &dto.NoteGetResponse{}
	if note != nil {
		resp.Content = note.Content
	}
	return resp, nil
}

func (s *noteService) Set(ctx context.Context, id string, content string) error {
	return s.noteRepo.Upsert(ctx, &domain.Note{ID: id, Content: content})
}
