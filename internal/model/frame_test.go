package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFrameSingleRow(t *testing.T) {
	base := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)

	frame := BuildFrame(base)

	require.Len(t, frame.Rows, 1)
	assert.Equal(t, base, frame.Rows[0].Date)
}

func TestBuildFrameNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+11", 11*60*60)
	base := time.Date(2023, time.June, 15, 18, 42, 7, 999, loc)

	frame := BuildFrame(base)

	require.Len(t, frame.Rows, 1)
	got := frame.Rows[0].Date
	assert.Equal(t, time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}
