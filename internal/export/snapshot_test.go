package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"spacewx/internal/models"
)

func testSnapshot() models.Snapshot {
	return models.Snapshot{
		FetchedAt: time.Date(2025, 8, 22, 10, 30, 0, 0, time.UTC),
		Wind: models.OK([]models.WindSample{
			{TimeTag: "2025-08-22 10:00:00", Speed: 400, Density: 4},
			{TimeTag: "2025-08-22 10:01:00", Speed: 410, Density: 4.1},
			{TimeTag: "2025-08-22 10:02:00", Speed: 405, Density: 3.9},
		}),
		KIndex: models.OK([]models.KIndexSample{{TimeTag: "2025-08-22 10:00:00", KIndex: 2.67}}),
	}
}

func TestWriteSnapshot(t *testing.T) {
	dir := t.TempDir()

	outDir, err := WriteSnapshot(dir, testSnapshot())
	if err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}

	if filepath.Base(outDir) != "2025-08-22_10-30-00" {
		t.Errorf("Expected timestamped directory name, got %q", filepath.Base(outDir))
	}

	data, err := os.ReadFile(filepath.Join(outDir, "snapshot.json"))
	if err != nil {
		t.Fatalf("snapshot.json not written: %v", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("snapshot.json is not valid JSON: %v", err)
	}
	if len(snap.Wind.Records) != 3 {
		t.Errorf("Expected 3 wind samples in the dump, got %d", len(snap.Wind.Records))
	}

	if _, err := os.Stat(filepath.Join(outDir, "wind_speed.png")); err != nil {
		t.Errorf("Expected wind chart to be written: %v", err)
	}
}

func TestWriteSnapshotSkipsChartWithoutWindData(t *testing.T) {
	dir := t.TempDir()

	snap := testSnapshot()
	snap.Wind = models.NoData[models.WindSample]()

	outDir, err := WriteSnapshot(dir, snap)
	if err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "snapshot.json")); err != nil {
		t.Errorf("Expected JSON dump regardless of wind data: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "wind_speed.png")); !os.IsNotExist(err) {
		t.Error("Expected no chart when wind data is unavailable")
	}
}

func TestWriteSnapshotZeroTimestamp(t *testing.T) {
	dir := t.TempDir()

	snap := testSnapshot()
	snap.FetchedAt = time.Time{}

	outDir, err := WriteSnapshot(dir, snap)
	if err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}
	if outDir == filepath.Join(dir, "0001-01-01_00-00-00") {
		t.Error("Expected a current-time directory for a zero timestamp")
	}
}
