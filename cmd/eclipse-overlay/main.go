// eclipse-overlay reads an EclipseRecord from a JSON file and prints the
// ground-track tracer's visibility envelope and central band, demonstrating
// the overlay package end to end.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/stellarpath/eclipsecore/model"
	"github.com/stellarpath/eclipsecore/overlay"
)

func main() {
	recordPath := flag.String("record", "testdata/synthetic_total_eclipse.json", "path to an EclipseRecord JSON file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	record, err := loadRecord(*recordPath)
	if err != nil {
		sugar.Fatalw("failed to load eclipse record", "path", *recordPath, "error", err)
	}

	cfg := overlay.DefaultConfig()

	start := time.Now()
	overlays := overlay.Build(record, cfg)
	elapsed := time.Since(start)

	sugar.Infow("traced eclipse ground track",
		"recordID", record.ID,
		"visiblePolygons", len(overlays.Visible),
		"centralPolygons", len(overlays.Central),
		"elapsed", elapsed,
	)

	printPolygons("visible (penumbra)", overlays.Visible)
	printPolygons("central (umbra/antumbra)", overlays.Central)
}

func loadRecord(path string) (model.EclipseRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.EclipseRecord{}, err
	}
	var record model.EclipseRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.EclipseRecord{}, err
	}
	return record, nil
}

func printPolygons(label string, polys []model.Polygon) {
	fmt.Printf("%s: %d polygon(s)\n", label, len(polys))
	for i, poly := range polys {
		fmt.Printf("  [%d] %d points\n", i, len(poly))
		for _, p := range poly {
			fmt.Printf("      %.4f, %.4f\n", p.LatDeg, p.LonDeg)
		}
	}
}
