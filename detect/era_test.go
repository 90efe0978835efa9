package detect_test

import (
	"testing"
	"time"

	"github.com/is0692vs/ChronoClip-sub000/detect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertEraYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		era    string
		token  string
		want   int
		wantOK bool
	}{
		{"reiwa 6", "令和", "6", 2024, true},
		{"reiwa first year", "令和", "元", 2019, true},
		{"heisei first year", "平成", "元", 1989, true},
		{"heisei 31", "平成", "31", 2019, true},
		{"showa 64", "昭和", "64", 1989, true},
		{"taisho 1", "大正", "1", 1912, true},
		{"meiji 1", "明治", "1", 1868, true},
		{"unknown era", "架空", "3", 0, false},
		{"zero era year", "令和", "0", 0, false},
		{"garbage token", "令和", "abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := detect.ConvertEraYear(tt.era, tt.token)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveYearForMonthDay(t *testing.T) {
	t.Parallel()

	ref := time.Date(2025, 4, 1, 10, 30, 0, 0, time.UTC)

	t.Run("future month-day keeps current year", func(t *testing.T) {
		t.Parallel()

		got := detect.ResolveYearForMonthDay(5, 10, ref)
		assert.Equal(t, "2025-05-10", got.Format("2006-01-02"))
	})

	t.Run("past month-day advances one year", func(t *testing.T) {
		t.Parallel()

		got := detect.ResolveYearForMonthDay(3, 15, ref)
		assert.Equal(t, "2026-03-15", got.Format("2006-01-02"))
	})

	t.Run("month-day equal to today keeps current year", func(t *testing.T) {
		t.Parallel()

		got := detect.ResolveYearForMonthDay(4, 1, ref)
		assert.Equal(t, "2025-04-01", got.Format("2006-01-02"))
	})

	t.Run("never resolves before the reference day", func(t *testing.T) {
		t.Parallel()

		today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
		for month := 1; month <= 12; month++ {
			for _, day := range []int{1, 15, 28} {
				got := detect.ResolveYearForMonthDay(month, day, ref)
				require.False(t, got.Before(today),
					"%d月%d日 resolved to %s, before reference day", month, day, got)
			}
		}
	})
}
