package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dkoester/paideia/internal/domain"
	"github.com/dkoester/paideia/internal/repository"
)

type noteService struct {
	notes repository.NoteRepo
}

// NewNoteService builds the module-description store service.
func NewNoteService(notes repository.NoteRepo) NoteService {
	return &noteService{notes: notes}
}

func (s *noteService) Set(ctx context.Context, moduleCode, text string) error {
	moduleCode = strings.TrimSpace(moduleCode)
	if moduleCode == "" {
		return errors.New("module code is required")
	}
	return s.notes.Upsert(ctx, &domain.Note{
		ModuleCode: moduleCode,
		Text:       text,
		UpdatedAt:  time.Now().UTC(),
	})
}

func (s *noteService) Get(ctx context.Context, moduleCode string) (*domain.Note, error) {
	return s.notes.Get(ctx, strings.TrimSpace(moduleCode))
}

func (s *noteService) List(ctx context.Context) ([]*domain.Note, error) {
	return s.notes.List(ctx)
}

func (s *noteService) Remove(ctx context.Context, moduleCode string) error {
	return s.notes.Delete(ctx, strings.TrimSpace(moduleCode))
}
