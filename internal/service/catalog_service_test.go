package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/service"
)

func TestCatalogService_Update(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCatalogService(testCatalog())

	t.Run("Success", func(t *testing.T) {
		updated, err := svc.Update(ctx, "A", domain.UpdateShiftCodeInput{
			Name:      "Jornada A",
			StartTime: strPtr("09:00"),
			EndTime:   strPtr("18:00"),
			Color:     "shift-a",
			Category:  domain.CategoryWork,
		})
		require.NoError(t, err)
		assert.Equal(t, "A", updated.Code, "code is immutable")
		assert.Equal(t, "09:00", *updated.StartTime)

		// The replacement is visible on the next lookup.
		found, err := svc.Lookup(ctx, "A")
		require.NoError(t, err)
		assert.Equal(t, "09:00", *found.StartTime)
	})

	t.Run("Unknown Code", func(t *testing.T) {
		_, err := svc.Update(ctx, "Z", domain.UpdateShiftCodeInput{Name: "Z", Category: domain.CategoryOther})
		assert.ErrorIs(t, err, domain.ErrShiftCodeNotFound)
	})

	t.Run("Malformed Time", func(t *testing.T) {
		_, err := svc.Update(ctx, "A", domain.UpdateShiftCodeInput{
			Name:      "Jornada A",
			StartTime: strPtr("9am"),
			Category:  domain.CategoryWork,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidClockValue)
	})

	t.Run("Bad Category", func(t *testing.T) {
		_, err := svc.Update(ctx, "A", domain.UpdateShiftCodeInput{
			Name:     "Jornada A",
			Category: "WEEKEND",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	})
}

func TestCatalogService_ListPreservesOrder(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCatalogService(testCatalog())

	codes, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, codes, 3)
	assert.Equal(t, "A", codes[0].Code)
	assert.Equal(t, "DSR", codes[1].Code)
	assert.Equal(t, "V", codes[2].Code)
}
