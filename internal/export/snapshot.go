// Package export writes one-shot snapshot artifacts: the raw normalized
// data as JSON and a solar wind speed chart as PNG.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"spacewx/internal/logger"
	"spacewx/internal/models"
)

const dirStampLayout = "2006-01-02_15-04-05"

// WriteSnapshot writes the snapshot into a timestamped subdirectory of dir
// and returns that directory's path. The JSON dump always succeeds or
// fails the call; a chart rendering failure is only logged, since the data
// is already on disk.
func WriteSnapshot(dir string, snap models.Snapshot) (string, error) {
	stamp := snap.FetchedAt
	if stamp.IsZero() {
		stamp = time.Now().UTC()
	}

	outDir := filepath.Join(dir, stamp.Format(dirStampLayout))
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "snapshot.json"), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	// A continuous series needs at least two points.
	if snap.Wind.Available() && len(snap.Wind.Records) >= 2 {
		chartPath := filepath.Join(outDir, "wind_speed.png")
		if err := writeWindChart(chartPath, snap.Wind.Records); err != nil {
			logger.Warnf("failed to render wind speed chart: %v", err)
		}
	}

	return outDir, nil
}

// writeWindChart renders solar wind speed over the sample window.
func writeWindChart(path string, samples []models.WindSample) error {
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(i)
		ys[i] = s.Speed
	}

	graph := chart.Chart{
		Title: "Solar Wind Speed",
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  900,
		Height: 400,
		YAxis: chart.YAxis{
			Name: "km/s",
			NameStyle: chart.Style{
				FontSize: 12,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "speed",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
