// Package model implements the prediction domain: strict calendar-date
// parsing, single-column feature frames, and the loading and evaluation of
// the two pre-trained model artifacts served by the API.
//
// An artifact on disk is a zstd-compressed JSON weight document. The two
// concrete model types (binary rain classifier, scalar precipitation
// regressor) are interchangeable behind the one-method Predictor interface,
// so nothing outside this file depends on the serialization format.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/klauspost/compress/zstd"

	"raincast/internal/types"
)

// Predictor is the single capability a loaded model artifact exposes:
// single-row frame in, single value per row out. Implementations are
// immutable after load and safe for concurrent use.
type Predictor interface {
	// Predict evaluates the model against every row of the frame and returns
	// one output value per row. The classifier emits 0 or 1 per row; the
	// regressor emits the raw predicted amount.
	Predict(frame Frame) ([]float64, error)
}

// Model kind discriminators stored in the artifact document.
const (
	KindRainClassifier  = "rain_classifier"
	KindPrecipRegressor = "precip_regressor"
)

// Harmonic is one seasonal term of a weight document: a sine/cosine pair on
// the day-of-year axis with the given period.
type Harmonic struct {
	PeriodDays float64 `json:"period_days"`
	SinCoef    float64 `json:"sin"`
	CosCoef    float64 `json:"cos"`
}

// Document is the decoded artifact payload. Exported so the genmodel tool and
// tests can write artifacts through Encode.
type Document struct {
	Kind      string     `json:"kind"`
	Intercept float64    `json:"intercept"`
	Harmonics []Harmonic `json:"harmonics"`
	// Threshold is the classifier decision boundary on the sigmoid output.
	// Ignored by the regressor.
	Threshold float64 `json:"threshold,omitempty"`
}

// score evaluates the linear seasonal model for a single row.
func (d *Document) score(row Row) float64 {
	s := d.Intercept
	yd := float64(row.Date.YearDay())
	for _, h := range d.Harmonics {
		if h.PeriodDays == 0 {
			continue
		}
		phase := 2 * math.Pi * yd / h.PeriodDays
		s += h.SinCoef*math.Sin(phase) + h.CosCoef*math.Cos(phase)
	}
	return s
}

// Classifier is the binary rain-in-7-days model. Its outputs are 0 or 1.
type Classifier struct {
	doc Document
}

// Predict implements Predictor.
func (c *Classifier) Predict(frame Frame) ([]float64, error) {
	if len(frame.Rows) == 0 {
		return nil, fmt.Errorf("empty feature frame")
	}
	out := make([]float64, len(frame.Rows))
	for i, row := range frame.Rows {
		p := 1 / (1 + math.Exp(-c.doc.score(row)))
		if p >= c.doc.Threshold {
			out[i] = 1
		}
	}
	return out, nil
}

// Regressor is the cumulated-precipitation model. Its outputs are raw
// predicted millimeters.
type Regressor struct {
	doc Document
}

// Predict implements Predictor.
func (r *Regressor) Predict(frame Frame) ([]float64, error) {
	if len(frame.Rows) == 0 {
		return nil, fmt.Errorf("empty feature frame")
	}
	out := make([]float64, len(frame.Rows))
	for i, row := range frame.Rows {
		out[i] = r.doc.score(row)
	}
	return out, nil
}

// Load deserializes a model artifact from path. A path that does not
// reference an existing file fails with the model-not-found AppError; the
// artifact contents are otherwise trusted as an opaque pre-trained model.
func Load(path string) (Predictor, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, types.NewAppError(
			types.ErrCodeModelNotFound,
			fmt.Sprintf("model file not found: %s", path),
			err,
		)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, types.NewAppError(
			types.ErrCodeModelNotFound,
			fmt.Sprintf("model file not readable: %s", path),
			err,
		)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("opening zstd stream for %s: %w", path, err)
	}
	defer zr.Close()

	var doc Document
	if err := json.NewDecoder(zr).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding model document %s: %w", path, err)
	}

	switch doc.Kind {
	case KindRainClassifier:
		return &Classifier{doc: doc}, nil
	case KindPrecipRegressor:
		return &Regressor{doc: doc}, nil
	default:
		return nil, fmt.Errorf("unknown model kind %q in %s", doc.Kind, path)
	}
}

// Encode writes a model document to path in the on-disk artifact format
// (zstd-compressed JSON). Used by the genmodel tool and by tests.
func Encode(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating artifact %s: %w", path, err)
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("opening zstd writer for %s: %w", path, err)
	}
	if err := json.NewEncoder(zw).Encode(doc); err != nil {
		zw.Close()
		return fmt.Errorf("encoding model document %s: %w", path, err)
	}
	return zw.Close()
}
