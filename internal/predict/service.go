// Package predict implements the orchestration behind the two prediction
// endpoints: availability check, date parsing, feature-frame construction,
// model inference, and response shaping.
package predict

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"raincast/internal/model"
	"raincast/internal/types"
)

// Metric label values for the two models.
const (
	labelRainModel   = "rain"
	labelPrecipModel = "precipitation"
)

// PredictionRecorder records inference telemetry. Satisfied by
// observability.Metrics; nil disables recording.
type PredictionRecorder interface {
	RecordPrediction(model, outcome string, duration time.Duration)
}

// RainPrediction is the prediction block of a rain-in-7-days response.
type RainPrediction struct {
	Date     string `json:"date"`
	WillRain bool   `json:"will_rain"`
}

// RainResult is the full rain-in-7-days response body.
type RainResult struct {
	InputDate  string         `json:"input_date"`
	Prediction RainPrediction `json:"prediction"`
}

// PrecipPrediction is the prediction block of a precipitation-fall response.
// PrecipitationFall is a string with exactly one digit after the decimal
// point, per the API contract.
type PrecipPrediction struct {
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	PrecipitationFall string `json:"precipitation_fall"`
}

// PrecipResult is the full precipitation-fall response body.
type PrecipResult struct {
	InputDate  string           `json:"input_date"`
	Prediction PrecipPrediction `json:"prediction"`
}

// Service orchestrates both prediction operations over the immutable model
// set loaded at startup. It is stateless per request and safe for concurrent
// use.
type Service struct {
	models  *model.Models
	metrics PredictionRecorder
	logger  *slog.Logger
}

// NewService creates a prediction service. metrics may be nil.
func NewService(models *model.Models, metrics PredictionRecorder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		models:  models,
		metrics: metrics,
		logger:  logger,
	}
}

// RainIn7Days predicts whether it will rain exactly 7 days after the base
// date. The availability check runs before date parsing, so a degraded
// classifier yields a server error for every input, valid or not.
func (s *Service) RainIn7Days(ctx context.Context, dateStr string) (*RainResult, error) {
	if s.models.Rain == nil {
		return nil, s.unavailable("rain")
	}

	base, err := model.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	target := base.AddDate(0, 0, 7)

	// The frame derives from the base date, not the target date.
	out, err := s.infer(s.models.Rain, labelRainModel, base)
	if err != nil {
		return nil, types.NewAppError(
			types.ErrCodeInferenceFailure,
			fmt.Sprintf("inference error (rain): %v", err),
			err,
		)
	}

	return &RainResult{
		InputDate: model.FormatDate(base),
		Prediction: RainPrediction{
			Date:     model.FormatDate(target),
			WillRain: out != 0,
		},
	}, nil
}

// PrecipitationFall predicts the cumulated precipitation over the three days
// following the base date, formatted with exactly one fractional digit.
func (s *Service) PrecipitationFall(ctx context.Context, dateStr string) (*PrecipResult, error) {
	if s.models.Precip == nil {
		return nil, s.unavailable("precipitation")
	}

	base, err := model.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	start := base.AddDate(0, 0, 1)
	end := base.AddDate(0, 0, 3)

	out, err := s.infer(s.models.Precip, labelPrecipModel, base)
	if err != nil {
		return nil, types.NewAppError(
			types.ErrCodeInferenceFailure,
			fmt.Sprintf("inference error (precipitation): %v", err),
			err,
		)
	}

	return &PrecipResult{
		InputDate: model.FormatDate(base),
		Prediction: PrecipPrediction{
			StartDate:         model.FormatDate(start),
			EndDate:           model.FormatDate(end),
			PrecipitationFall: fmt.Sprintf("%.1f", out),
		},
	}, nil
}

// infer builds the single-row frame for the base date, runs the predictor,
// and returns the first (only) output value.
func (s *Service) infer(p model.Predictor, label string, base time.Time) (float64, error) {
	frame := model.BuildFrame(base)

	started := time.Now()
	out, err := p.Predict(frame)
	elapsed := time.Since(started)

	outcome := "success"
	if err == nil && len(out) == 0 {
		err = fmt.Errorf("model returned no output")
	}
	if err != nil {
		outcome = "error"
	}
	if s.metrics != nil {
		s.metrics.RecordPrediction(label, outcome, elapsed)
	}
	if err != nil {
		s.logger.Error("inference failed", "model", label, "error", err)
		return 0, err
	}
	return out[0], nil
}

// unavailable builds the server error for a model that failed to load,
// embedding the recorded startup error text.
func (s *Service) unavailable(name string) *types.AppError {
	msg := name + " model not loaded"
	if s.models.LoadErr != "" {
		msg += ": " + s.models.LoadErr
	}
	return types.NewAppError(types.ErrCodeModelUnavailable, msg, nil)
}
