package archive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid month",
			ref:       time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.September, 30, 23, 59, 59, 999999000, time.UTC),
		},
		{
			name:      "first of month",
			ref:       time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.October, 31, 23, 59, 59, 999999000, time.UTC),
		},
		{
			name:      "january rolls into previous year",
			ref:       time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.December, 31, 23, 59, 59, 999999000, time.UTC),
		},
		{
			name:      "march yields february in leap year",
			ref:       time.Date(2028, time.March, 31, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2028, time.February, 29, 23, 59, 59, 999999000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PreviousMonth(tt.ref)
			assert.True(t, start.Equal(tt.wantStart), "start = %v", start)
			assert.True(t, end.Equal(tt.wantEnd), "end = %v", end)
		})
	}
}

func TestPreviousMonthProperties(t *testing.T) {
	for _, ref := range []time.Time{
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 30, 12, 34, 56, 0, time.UTC),
		time.Date(2027, time.December, 25, 23, 0, 0, 0, time.Local),
	} {
		start, end := PreviousMonth(ref)

		assert.Equal(t, 1, start.Day())
		assert.Equal(t, start.Month(), end.Month())
		assert.Equal(t, start.Year(), end.Year())

		// end is the instant immediately preceding the current month's start.
		firstOfCurrent := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		assert.True(t, end.Add(time.Microsecond).Equal(firstOfCurrent))

		// bounds inherit the reference location.
		assert.Equal(t, ref.Location(), start.Location())
		assert.Equal(t, ref.Location(), end.Location())
	}
}

func TestRebase(t *testing.T) {
	ref := time.Date(2025, time.October, 15, 18, 30, 0, 0, time.Local)

	rebased := Rebase(ref, time.UTC)

	assert.Equal(t, 2025, rebased.Year())
	assert.Equal(t, time.October, rebased.Month())
	assert.Equal(t, 15, rebased.Day())
	assert.Zero(t, rebased.Hour())
	assert.Equal(t, time.UTC, rebased.Location())
}
