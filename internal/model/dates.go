package model

import (
	"regexp"
	"time"

	"raincast/internal/types"
)

// DateLayout is the wire format for all calendar dates accepted and emitted
// by the API.
const DateLayout = "2006-01-02"

// datePattern enforces the exact YYYY-MM-DD shape. time.Parse alone accepts
// unpadded fields ("2023-1-1"), so the pattern guard must run first.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate validates that s matches YYYY-MM-DD exactly and returns the pure
// calendar date at midnight UTC. Any other representation, including textual
// near-misses and impossible calendar values like 2023-13-40, fails with a
// validation AppError (HTTP 400).
func ParseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, types.NewAppError(
			types.ErrCodeValidationInvalidDate,
			"invalid date format, expected YYYY-MM-DD",
			nil,
		)
	}

	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, types.NewAppError(
			types.ErrCodeValidationInvalidDate,
			"invalid date format, expected YYYY-MM-DD",
			err,
		)
	}
	return d, nil
}

// FormatDate renders a date in the YYYY-MM-DD wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
