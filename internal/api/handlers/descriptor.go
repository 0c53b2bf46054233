package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"raincast/internal/config"
	"raincast/internal/core"
)

// EndpointDoc describes one endpoint in the service descriptor document.
type EndpointDoc struct {
	Path          string            `json:"path"`
	Method        string            `json:"method"`
	Description   string            `json:"description,omitempty"`
	QueryParams   map[string]string `json:"query_params,omitempty"`
	OutputExample any               `json:"output_example,omitempty"`
}

// Descriptor is the fixed self-description document served at the root.
type Descriptor struct {
	Project                 string            `json:"project"`
	Version                 string            `json:"version"`
	Objectives              []string          `json:"objectives"`
	Endpoints               []EndpointDoc     `json:"endpoints"`
	ExpectedInputParameters map[string]string `json:"expected_input_parameters"`
	OutputFormatNotes       map[string]any    `json:"output_format_notes"`
	GithubRepo              string            `json:"github_repo"`
}

// DescriptorHandler serves the static self-description document. It has no
// model dependency; the document is assembled once at construction.
type DescriptorHandler struct {
	doc Descriptor
}

// NewDescriptorHandler builds the descriptor from configuration (repository
// URL, build version).
func NewDescriptorHandler(cfg *config.Config) *DescriptorHandler {
	return &DescriptorHandler{doc: buildDescriptor(cfg)}
}

// RegisterRoutes mounts the descriptor endpoint onto the router.
func (h *DescriptorHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleRoot)
}

// HandleRoot handles GET /.
func (h *DescriptorHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, r, http.StatusOK, h.doc)
}

func buildDescriptor(cfg *config.Config) Descriptor {
	return Descriptor{
		Project: "Raincast - Weather Prediction API",
		Version: cfg.Build.Version,
		Objectives: []string{
			"Predict if it will rain exactly 7 days after the given date.",
			"Predict the cumulated precipitation (mm) for the next 3 days after the given date.",
		},
		Endpoints: []EndpointDoc{
			{
				Path:        "/",
				Method:      http.MethodGet,
				Description: "Brief description, endpoints, inputs/outputs, repo link.",
			},
			{
				Path:        "/health/",
				Method:      http.MethodGet,
				Description: "Health check (returns 200 and a readiness message).",
			},
			{
				Path:        "/predict/rain/",
				Method:      http.MethodGet,
				QueryParams: map[string]string{"date": "YYYY-MM-DD"},
				OutputExample: map[string]any{
					"input_date": "2023-01-01",
					"prediction": map[string]any{
						"date":      "2023-01-08",
						"will_rain": true,
					},
				},
			},
			{
				Path:        "/predict/precipitation/fall/",
				Method:      http.MethodGet,
				QueryParams: map[string]string{"date": "YYYY-MM-DD"},
				OutputExample: map[string]any{
					"input_date": "2023-01-01",
					"prediction": map[string]any{
						"start_date":         "2023-01-02",
						"end_date":           "2023-01-04",
						"precipitation_fall": "28.2",
					},
				},
			},
		},
		ExpectedInputParameters: map[string]string{
			"date": "string formatted YYYY-MM-DD",
		},
		OutputFormatNotes: map[string]any{
			"/predict/rain/": map[string]any{
				"fields": []string{"input_date", "prediction.date", "prediction.will_rain (bool)"},
			},
			"/predict/precipitation/fall/": map[string]any{
				"fields": []string{"input_date", "prediction.start_date", "prediction.end_date", "prediction.precipitation_fall (string)"},
			},
		},
		GithubRepo: cfg.Project.RepoURL,
	}
}
