package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("  2024-06-01 ")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())

	_, err = ParseDate("06/01/2024")
	assert.Error(t, err)
	_, err = ParseDate("not a date")
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("350.50")
	require.NoError(t, err)
	assert.Equal(t, 350.50, a)

	_, err = ParseAmount("three hundred")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = ParseID("-1")
	assert.Error(t, err)
	_, err = ParseID("abc")
	assert.Error(t, err)
}
