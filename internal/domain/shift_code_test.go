package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escala-equipe/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestShiftCode_Span(t *testing.T) {
	t.Run("Working Code", func(t *testing.T) {
		code := domain.ShiftCode{Code: "A", StartTime: strPtr("08:15"), EndTime: strPtr("18:00")}
		span, ok := code.Span()
		assert.True(t, ok)
		assert.Equal(t, 9*time.Hour+45*time.Minute, span)
	})

	t.Run("Non Working Code", func(t *testing.T) {
		code := domain.ShiftCode{Code: "DSR"}
		_, ok := code.Span()
		assert.False(t, ok)
	})

	t.Run("End Before Start", func(t *testing.T) {
		code := domain.ShiftCode{Code: "N", StartTime: strPtr("22:00"), EndTime: strPtr("06:00")}
		_, ok := code.Span()
		assert.False(t, ok)
	})

	t.Run("Malformed Time", func(t *testing.T) {
		code := domain.ShiftCode{Code: "X", StartTime: strPtr("morning"), EndTime: strPtr("18:00")}
		_, ok := code.Span()
		assert.False(t, ok)
	})
}

func TestParseClock(t *testing.T) {
	d, err := domain.ParseClock("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7*time.Hour+45*time.Minute, d)

	_, err = domain.ParseClock("25:00")
	assert.Error(t, err)
	_, err = domain.ParseClock("nope")
	assert.Error(t, err)
}

func TestDate(t *testing.T) {
	date, err := domain.ParseDate("2024-12-08")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, date.Weekday())
	assert.Equal(t, "2024-12-08", date.String())
	assert.True(t, date.InMonth(time.December, 2024))
	assert.False(t, date.InMonth(time.January, 2025))

	_, err = domain.ParseDate("08/12/2024")
	assert.Error(t, err)

	t.Run("JSON Map Key", func(t *testing.T) {
		days := map[domain.Date]string{date: "DSR"}
		raw, err := json.Marshal(days)
		require.NoError(t, err)
		assert.JSONEq(t, `{"2024-12-08":"DSR"}`, string(raw))

		var decoded map[domain.Date]string
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, "DSR", decoded[date])
	})
}

func TestMonthDates(t *testing.T) {
	assert.Len(t, domain.MonthDates(time.December, 2024), 31)
	assert.Len(t, domain.MonthDates(time.February, 2024), 29)
	assert.Len(t, domain.MonthDates(time.February, 2025), 28)

	dates := domain.MonthDates(time.December, 2024)
	assert.Equal(t, 1, dates[0].Day)
	assert.Equal(t, 31, dates[30].Day)
}
