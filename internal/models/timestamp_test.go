package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	whole := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-18T09:30:00+00:00", FormatTimestamp(whole))

	frac := time.Date(2026, 10, 18, 9, 30, 0, 123456789, time.UTC)
	assert.Equal(t, "2026-10-18T09:30:00.123456+00:00", FormatTimestamp(frac))

	dhaka := time.FixedZone("BST", 6*60*60)
	assert.Equal(t, "2026-10-18T15:30:00+06:00", FormatTimestamp(whole.In(dhaka)))
}

func TestParseTimestamp(t *testing.T) {
	at := time.Date(2026, 10, 18, 9, 30, 0, 123456000, time.UTC)

	got, err := ParseTimestamp(FormatTimestamp(at))
	require.NoError(t, err)
	assert.True(t, at.Equal(got))

	_, err = ParseTimestamp("18/10/2026")
	assert.Error(t, err)
}
