package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 5, day.Day())

	for _, bad := range []string{"", "05-03-2024", "2024/03/05", "2024-13-01"} {
		_, err := ParseDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestMonthBounds(t *testing.T) {
	day, err := ParseDay("2024-04-10")
	require.NoError(t, err)
	first, last := MonthBounds(day)
	assert.Equal(t, "2024-04-01", first)
	assert.Equal(t, "2024-04-30", last)

	feb, err := ParseDay("2024-02-14")
	require.NoError(t, err)
	first, last = MonthBounds(feb)
	assert.Equal(t, "2024-02-01", first)
	assert.Equal(t, "2024-02-29", last)
}

func TestDaysOfMonth(t *testing.T) {
	day, err := ParseDay("2023-02-10")
	require.NoError(t, err)
	days := DaysOfMonth(day)
	require.Len(t, days, 28)
	assert.Equal(t, "2023-02-01", days[0])
	assert.Equal(t, "2023-02-28", days[27])

	dec, err := ParseDay("2024-12-31")
	require.NoError(t, err)
	days = DaysOfMonth(dec)
	require.Len(t, days, 31)
	assert.Equal(t, "2024-12-31", days[30])
}

func TestParseMonth(t *testing.T) {
	month, err := ParseMonth("2024-04")
	require.NoError(t, err)
	assert.Equal(t, time.April, month.Month())

	_, err = ParseMonth("April 2024")
	assert.Error(t, err)
}
