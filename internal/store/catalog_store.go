package store

import (
	"context"
	"sync"

	"escala-equipe/internal/domain"
)

// CatalogStore is the registry of shift code definitions. Codes are never
// deleted and the code key itself is immutable once created; All preserves
// insertion order for legend and menu rendering.
type CatalogStore interface {
	Lookup(ctx context.Context, code string) (*domain.ShiftCode, error)
	All(ctx context.Context) ([]domain.ShiftCode, error)
	Update(ctx context.Context, code string, input domain.UpdateShiftCodeInput) (*domain.ShiftCode, error)
}

type catalogStore struct {
	mu    sync.RWMutex
	codes []domain.ShiftCode
	index map[string]int
}

func NewCatalogStore(codes []domain.ShiftCode) CatalogStore {
	s := &catalogStore{
		codes: make([]domain.ShiftCode, len(codes)),
		index: make(map[string]int, len(codes)),
	}
	copy(s.codes, codes)
	for i, c := range s.codes {
		s.index[c.Code] = i
	}
	return s
}

func (s *catalogStore) Lookup(ctx context.Context, code string) (*domain.ShiftCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[code]
	if !ok {
		return nil, nil
	}
	found := s.codes[i]
	return &found, nil
}

func (s *catalogStore) All(ctx context.Context) ([]domain.ShiftCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ShiftCode, len(s.codes))
	copy(out, s.codes)
	return out, nil
}

func (s *catalogStore) Update(ctx context.Context, code string, input domain.UpdateShiftCodeInput) (*domain.ShiftCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[code]
	if !ok {
		return nil, domain.ErrShiftCodeNotFound
	}

	updated := domain.ShiftCode{
		Code:      code,
		Name:      input.Name,
		StartTime: input.StartTime,
		BreakTime: input.BreakTime,
		EndTime:   input.EndTime,
		Color:     input.Color,
		Notes:     input.Notes,
		Category:  input.Category,
	}
	s.codes[i] = updated
	return &updated, nil
}
