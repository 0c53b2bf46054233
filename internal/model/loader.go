package model

import (
	"errors"
	"log/slog"

	"raincast/internal/types"
)

// Models holds the two loaded predictors and the startup load status. It is
// constructed exactly once at process start and never mutated afterward, so
// concurrent request handlers may read it without locking. There is no retry
// or hot-reload path: a degraded process stays degraded until restart.
type Models struct {
	Rain   Predictor
	Precip Predictor

	// LoadErr is the human-readable cause of a startup load failure, empty
	// when both artifacts loaded.
	LoadErr string
}

// Ready reports whether both artifacts loaded successfully.
func (m *Models) Ready() bool {
	return m.Rain != nil && m.Precip != nil
}

// LoadModels attempts to load the classifier and then the regressor at
// process startup. A failure loading either artifact leaves BOTH predictors
// unset and records the first error encountered as the shared load status.
// The models are logically independent, so this coupling is a known defect
// carried over from the original service contract; see DESIGN.md.
//
// LoadModels never fails the process: the caller serves degraded prediction
// endpoints and reports LoadErr through the health endpoint.
func LoadModels(rainPath, precipPath string, logger *slog.Logger) *Models {
	rain, err := Load(rainPath)
	if err != nil {
		logger.Error("rain model load failed", "path", rainPath, "error", err)
		return &Models{LoadErr: loadErrText(err)}
	}

	precip, err := Load(precipPath)
	if err != nil {
		logger.Error("precipitation model load failed", "path", precipPath, "error", err)
		return &Models{LoadErr: loadErrText(err)}
	}

	logger.Info("models loaded", "rain_path", rainPath, "precip_path", precipPath)
	return &Models{Rain: rain, Precip: precip}
}

// loadErrText extracts the human-readable message from a load failure,
// preferring the AppError message over the code-prefixed Error() string.
func loadErrText(err error) string {
	var appErr *types.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
