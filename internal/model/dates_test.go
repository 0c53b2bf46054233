package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raincast/internal/types"
)

func TestParseDateValid(t *testing.T) {
	d, err := ParseDate("2023-01-01")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, time.UTC, d.Location())
}

func TestParseDateLeapDay(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(d))
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"2023/01/01",
		"01-01-2023",
		"2023-13-40",   // impossible calendar values
		"2023-02-30",   // day out of range for month
		"2023-1-1",     // not zero-padded
		"2023-01-01 ",  // trailing whitespace
		" 2023-01-01",  // leading whitespace
		"20230101",     // no separators
		"2023-01-01T00:00:00Z", // valid RFC3339, wrong shape
		"yesterday",
	}

	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			require.Error(t, err)

			var appErr *types.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, types.ErrCodeValidationInvalidDate, appErr.Code)
			assert.Equal(t, 400, appErr.HTTPStatus())
		})
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	d, err := ParseDate("1999-12-31")
	require.NoError(t, err)
	assert.Equal(t, "1999-12-31", FormatDate(d))
}
