package model

import "time"

// Row is a single observation handed to a Predictor. The calendar date is the
// only feature column; any richer feature engineering is assumed to be baked
// into the serialized model pipelines themselves.
type Row struct {
	Date time.Time
}

// Frame is the tabular input expected by both models. Handlers construct
// exactly one single-row frame per request and discard it after inference.
type Frame struct {
	Rows []Row
}

// BuildFrame converts a validated base date into the single-row frame both
// models consume. The date is normalized to midnight UTC so no time-of-day
// component ever reaches a model.
func BuildFrame(base time.Time) Frame {
	d := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, time.UTC)
	return Frame{Rows: []Row{{Date: d}}}
}
