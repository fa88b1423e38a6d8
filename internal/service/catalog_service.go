package service

import (
	"context"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/store"
)

// CatalogService exposes the shift catalog and validates edited
// definitions. Codes themselves are immutable; only the definition behind
// a code changes.
type CatalogService interface {
	List(ctx context.Context) ([]domain.ShiftCode, error)
	Lookup(ctx context.Context, code string) (*domain.ShiftCode, error)
	Update(ctx context.Context, code string, input domain.UpdateShiftCodeInput) (*domain.ShiftCode, error)
}

type catalogService struct {
	catalog store.CatalogStore
}

func NewCatalogService(catalog store.CatalogStore) CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) List(ctx context.Context) ([]domain.ShiftCode, error) {
	return s.catalog.All(ctx)
}

func (s *catalogService) Lookup(ctx context.Context, code string) (*domain.ShiftCode, error) {
	found, err := s.catalog.Lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, domain.ErrShiftCodeNotFound
	}
	return found, nil
}

func (s *catalogService) Update(ctx context.Context, code string, input domain.UpdateShiftCodeInput) (*domain.ShiftCode, error) {
	if !domain.ValidCategory(input.Category) {
		return nil, domain.ErrInvalidCategory
	}
	for _, clock := range []*string{input.StartTime, input.BreakTime, input.EndTime} {
		if clock == nil {
			continue
		}
		if _, err := domain.ParseClock(*clock); err != nil {
			return nil, domain.ErrInvalidClockValue
		}
	}
	return s.catalog.Update(ctx, code, input)
}
