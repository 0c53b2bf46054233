package model

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raincast/internal/types"
)

// writeArtifact encodes doc into a temp artifact file and returns its path.
func writeArtifact(t *testing.T, doc Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artifact.json.zst")
	require.NoError(t, Encode(path, doc))
	return path
}

func frameFor(date string) Frame {
	d, err := ParseDate(date)
	if err != nil {
		panic(err)
	}
	return BuildFrame(d)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json.zst"))
	require.Error(t, err)

	var appErr *types.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, types.ErrCodeModelNotFound, appErr.Code)
	assert.Contains(t, appErr.Message, "model file not found")
}

func TestLoadClassifierRoundTrip(t *testing.T) {
	path := writeArtifact(t, Document{
		Kind:      KindRainClassifier,
		Intercept: 2.0, // sigmoid(2.0) ~ 0.88, firmly above threshold
		Threshold: 0.5,
	})

	p, err := Load(path)
	require.NoError(t, err)
	require.IsType(t, &Classifier{}, p)

	out, err := p.Predict(frameFor("2023-01-01"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 1.0, out[0])
}

func TestClassifierBelowThreshold(t *testing.T) {
	path := writeArtifact(t, Document{
		Kind:      KindRainClassifier,
		Intercept: -3.0,
		Threshold: 0.5,
	})

	p, err := Load(path)
	require.NoError(t, err)

	out, err := p.Predict(frameFor("2023-07-15"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, out[0])
}

func TestLoadRegressorRoundTrip(t *testing.T) {
	path := writeArtifact(t, Document{
		Kind:      KindPrecipRegressor,
		Intercept: 28.16,
	})

	p, err := Load(path)
	require.NoError(t, err)
	require.IsType(t, &Regressor{}, p)

	out, err := p.Predict(frameFor("2023-01-01"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 28.16, out[0], 1e-9)
}

func TestHarmonicsVaryWithSeason(t *testing.T) {
	path := writeArtifact(t, Document{
		Kind:      KindPrecipRegressor,
		Intercept: 10.0,
		Harmonics: []Harmonic{{PeriodDays: 365.25, SinCoef: 4.0, CosCoef: 1.5}},
	})

	p, err := Load(path)
	require.NoError(t, err)

	winter, err := p.Predict(frameFor("2023-01-15"))
	require.NoError(t, err)
	summer, err := p.Predict(frameFor("2023-07-15"))
	require.NoError(t, err)

	assert.NotEqual(t, winter[0], summer[0])
}

func TestPredictEmptyFrame(t *testing.T) {
	path := writeArtifact(t, Document{Kind: KindPrecipRegressor})

	p, err := Load(path)
	require.NoError(t, err)

	_, err = p.Predict(Frame{})
	assert.Error(t, err)
}

func TestLoadUnknownKind(t *testing.T) {
	path := writeArtifact(t, Document{Kind: "gradient_boosted_turnip"})

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown model kind")
}

func TestClassifierOutputsMatchDateNotClock(t *testing.T) {
	// Predictions are a function of the frame date only; wall-clock "now"
	// must never influence them.
	path := writeArtifact(t, Document{
		Kind:      KindRainClassifier,
		Intercept: 0.0,
		Harmonics: []Harmonic{{PeriodDays: 365.25, SinCoef: 3.0}},
		Threshold: 0.5,
	})

	p, err := Load(path)
	require.NoError(t, err)

	first, err := p.Predict(frameFor("2023-04-01"))
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := p.Predict(frameFor("2023-04-01"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
