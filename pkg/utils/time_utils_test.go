package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUnixSecondsIST(t *testing.T) {
	got := FromUnixSecondsIST(1771382400)
	_, offset := got.Zone()
	assert.Equal(t, 5*3600+1800, offset)

	assert.True(t, FromUnixSecondsIST(0).IsZero())
	assert.True(t, FromUnixSecondsIST(-5).IsZero())
}

func TestFormatRFC3339IST(t *testing.T) {
	d := time.Date(2026, time.March, 3, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-03T06:00:00+05:30", FormatRFC3339IST(d))
	assert.Equal(t, "", FormatRFC3339IST(time.Time{}))
}

func TestParseCalendarDate(t *testing.T) {
	d, err := ParseCalendarDate("2026-12-14")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.December, d.Month())
	assert.Equal(t, 14, d.Day())
	_, offset := d.Zone()
	assert.Equal(t, 5*3600+1800, offset)

	_, err = ParseCalendarDate("14-12-2026")
	assert.Error(t, err)
}
