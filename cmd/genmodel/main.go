// Command genmodel writes sample classifier and regressor artifacts in the
// on-disk format the API loads at startup. It uses the actual model package
// encoder so the generated files match real loader behavior, which makes it
// useful for local runs and smoke tests.
//
// Usage:
//
//	go run ./cmd/genmodel -out models
//	RAIN_MODEL_PATH=models/rain_or_not/classifier.json.zst go run ./cmd/api
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"raincast/internal/model"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "models", "base directory to write artifacts into")
	flag.Parse()

	artifacts := []struct {
		relPath string
		doc     model.Document
	}{
		{
			relPath: filepath.Join("rain_or_not", "classifier.json.zst"),
			doc: model.Document{
				Kind:      model.KindRainClassifier,
				Intercept: -0.3,
				Harmonics: []model.Harmonic{
					{PeriodDays: 365.25, SinCoef: 1.1, CosCoef: 0.8},
					{PeriodDays: 182.625, SinCoef: 0.25, CosCoef: -0.15},
				},
				Threshold: 0.5,
			},
		},
		{
			relPath: filepath.Join("precipitation_fall", "regressor.json.zst"),
			doc: model.Document{
				Kind:      model.KindPrecipRegressor,
				Intercept: 12.4,
				Harmonics: []model.Harmonic{
					{PeriodDays: 365.25, SinCoef: 6.2, CosCoef: 4.9},
				},
			},
		},
	}

	for _, a := range artifacts {
		path := filepath.Join(*out, a.relPath)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := model.Encode(path, a.doc); err != nil {
			return err
		}
		log.Printf("wrote %s (%s)", path, a.doc.Kind)
	}

	return nil
}
