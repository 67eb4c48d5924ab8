// Package memory provides an in-memory snapshot store with the same surface
// as the sqlite one. Useful for tests and for running without a storage file.
package memory

import (
	"context"

	"smartnus/internal/domain"
)

// Store keeps the last saved snapshot in process memory.
type Store struct {
	questions []domain.Question
}

func NewStore() *Store {
	return &Store{}
}

// Load rebuilds a question list from the last saved snapshot.
func (s *Store) Load(_ context.Context) (*domain.QuestionList, error) {
	list := domain.NewQuestionList()
	if err := list.SetAll(s.questions); err != nil {
		return nil, err
	}
	return list, nil
}

// Save replaces the held snapshot with the list's current contents.
func (s *Store) Save(_ context.Context, list *domain.QuestionList) error {
	s.questions = list.Questions()
	return nil
}
