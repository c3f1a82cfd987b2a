// eclipse-circumstances reads an EclipseRecord from a JSON file and prints
// the local circumstances for a fixed observer, demonstrating the solver
// package end to end.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/stellarpath/eclipsecore/model"
	"github.com/stellarpath/eclipsecore/solver"
)

func main() {
	recordPath := flag.String("record", "testdata/synthetic_total_eclipse.json", "path to an EclipseRecord JSON file")
	lat := flag.Float64("lat", 21.7, "observer latitude, degrees")
	lon := flag.Float64("lon", 0.0, "observer longitude, degrees east-positive")
	elev := flag.Float64("elev", 0.0, "observer elevation, meters")
	debug := flag.Bool("debug", false, "include root/bracket diagnostics in the output")
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

	observer := model.Observer{LatDeg: *lat, LonDeg: *lon, ElevM: *elev}
	cfg := solver.DefaultConfig()
	cfg.Debug = *debug

	start := time.Now()
	circumstances, err := solver.ComputeUTC(record, observer, cfg)
	elapsed := time.Since(start)

	if err != nil {
		sugar.Errorw("solver rejected record", "recordID", record.ID, "error", err)
		os.Exit(1)
	}

	sugar.Infow("computed eclipse circumstances",
		"recordID", record.ID,
		"observer", observer,
		"visible", circumstances.Visible,
		"kindAtLocation", circumstances.KindAtLocation,
		"elapsed", elapsed,
	)

	printCircumstances(record, circumstances)
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

func printCircumstances(record model.EclipseRecord, c model.Circumstances) {
	fmt.Printf("Eclipse %q\n", c.EclipseID)
	fmt.Printf("  visible:         %v\n", c.Visible)
	fmt.Printf("  kindAtLocation:  %v\n", c.KindAtLocation)
	printOptionalTime("  C1:              ", c.C1Utc)
	printOptionalTime("  C2:              ", c.C2Utc)
	printOptionalTime("  max:             ", c.MaxUtc)
	printOptionalTime("  C3:              ", c.C3Utc)
	printOptionalTime("  C4:              ", c.C4Utc)
	if c.Magnitude != nil {
		fmt.Printf("  magnitude:       %.4f\n", *c.Magnitude)
	}
	if c.DurationSeconds != nil {
		fmt.Printf("  duration:        %.3f s\n", *c.DurationSeconds)
	}

	// Metadata passthrough (record-level, not computed by the solver): a
	// convenience cross-check against the solver's own maxUtc/location.
	if record.GreatestEclipseUtc != nil {
		fmt.Printf("  record greatestEclipseUtc: %s\n", *record.GreatestEclipseUtc)
	}
	if record.GreatestEclipseLatDeg != nil && record.GreatestEclipseLonDeg != nil {
		fmt.Printf("  record greatestEclipse lat/lon: %.4f, %.4f\n", *record.GreatestEclipseLatDeg, *record.GreatestEclipseLonDeg)
	}
}

func printOptionalTime(label string, v *string) {
	if v == nil {
		fmt.Printf("%s(absent)\n", label)
		return
	}
	fmt.Printf("%s%s\n", label, *v)
}
