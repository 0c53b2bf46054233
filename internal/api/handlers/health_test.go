package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"raincast/internal/model"
)

// noopPredictor satisfies model.Predictor for readiness tests.
type noopPredictor struct{}

func (noopPredictor) Predict(frame model.Frame) ([]float64, error) {
	return make([]float64, len(frame.Rows)), nil
}

func makeHealthRouter(models *model.Models) http.Handler {
	h := NewHealthHandler(models)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func healthBody(t *testing.T, models *model.Models) (int, string) {
	t.Helper()
	router := makeHealthRouter(models)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/", nil))

	var msg string
	if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
		t.Fatalf("health body is not a JSON string: %v", err)
	}
	return rec.Code, msg
}

func TestHealthReady(t *testing.T) {
	code, msg := healthBody(t, &model.Models{Rain: noopPredictor{}, Precip: noopPredictor{}})

	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if msg != "API is ready. Models loaded." {
		t.Errorf("unexpected ready message %q", msg)
	}
}

func TestHealthDegradedStillAnswers200(t *testing.T) {
	code, msg := healthBody(t, &model.Models{
		LoadErr: "model file not found: /models/rain_or_not/classifier.json.zst",
	})

	if code != http.StatusOK {
		t.Fatalf("load failure must not change the status code, got %d", code)
	}
	want := "Startup warning: model file not found: /models/rain_or_not/classifier.json.zst"
	if msg != want {
		t.Errorf("degraded message mismatch:\n got %q\nwant %q", msg, want)
	}
}
