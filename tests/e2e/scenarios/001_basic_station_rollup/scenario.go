package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"one-billion-row/internal/app"
	"one-billion-row/internal/shared/configs"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	rounds       = 1050 // multiple of deltaCycle, so every station's deltas cancel out
	deltaCycle   = 21   // deltas run from -1.0 to +1.0 in steps of 0.1
	linesPerKey  = 4    // lines per station per round
	totalEntries = rounds * linesPerKey * 16
)

// stations and their mean temperature in tenths of a degree.
var stations = []struct {
	name      string
	meanTenth int
}{
	{"Abha", 180}, {"Abidjan", 260}, {"Abéché", 294}, {"Accra", 264},
	{"Addis Ababa", 160}, {"Adelaide", 173}, {"Aden", 291}, {"Ahvaz", 254},
	{"Albuquerque", 140}, {"Alexandra", 110}, {"Alexandria", 200}, {"Algiers", 182},
	{"Alice Springs", 210}, {"Almaty", 100}, {"Amsterdam", 102}, {"Anadyr", -69},
}

// ### End - fixed configs

// main runs the e2e scenario: 001_basic_station_rollup
//
// It writes a deterministic measurements file, aggregates it with several
// worker counts and both acquisition modes, and checks every run prints the
// same summary line.
//
// Expected results:
//   - 16 stations, 4200 records each
//   - every station has min = mean - 1.0, max = mean + 1.0 and the listed mean
//   - the summary is identical for 1, 2, 3 and 8 workers, mmap and read
func main() {
	// these configs can be changed to run the scenario
	workDir := ".tmp/e2e"             // Directory for the generated input, relative to project root
	workerCounts := []int{1, 2, 3, 8} // Worker counts to run with
	modes := []string{"mmap", "read"} // Acquisition modes to run with

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	dir := filepath.Join(projectRoot, workDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create work directory: %v\n", err)
		os.Exit(1)
	}

	inputPath := filepath.Join(dir, "measurements.txt")
	fmt.Println("Starting e2e scenario: 001_basic_station_rollup")
	fmt.Printf("INPUT: %s\n", inputPath)
	fmt.Printf("TOTAL_ENTRIES: %d\n", totalEntries)
	fmt.Println()

	if err := writeMeasurements(inputPath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write measurements: %v\n", err)
		os.Exit(1)
	}

	expected := expectedSummary() + "\n\n"
	failures := 0
	for _, mode := range modes {
		for _, workers := range workerCounts {
			got, err := aggregate(inputPath, mode, workers)
			switch {
			case err != nil:
				failures++
				fmt.Fprintf(os.Stderr, "ERROR: mode=%s workers=%d: %v\n", mode, workers, err)
			case got != expected:
				failures++
				fmt.Fprintf(os.Stderr, "ERROR: mode=%s workers=%d: summary mismatch\n  got:  %q\n  want: %q\n", mode, workers, got, expected)
			default:
				fmt.Printf("mode=%s workers=%d: ok\n", mode, workers)
			}
		}
	}

	fmt.Println()
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d runs failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod; run from inside the project")
		}
		dir = parent
	}
}

// writeMeasurements emits round-major lines: every round visits each station
// linesPerKey times with the same delta.
func writeMeasurements(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for round := 0; round < rounds; round++ {
		delta := round%deltaCycle - deltaCycle/2
		for bucket := 0; bucket < linesPerKey*len(stations); bucket++ {
			station := stations[bucket/linesPerKey]
			fmt.Fprintf(w, "%s;%s\n", station.name, formatTenths(station.meanTenth+delta))
		}
	}
	return w.Flush()
}

func expectedSummary() string {
	half := deltaCycle / 2
	parts := make([]string, 0, len(stations))
	for _, s := range stations {
		parts = append(parts, fmt.Sprintf("%s=%s/%s/%s",
			s.name, formatTenths(s.meanTenth-half), formatTenths(s.meanTenth), formatTenths(s.meanTenth+half)))
	}
	// stations are listed in byte-wise order already
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatTenths(tenths int) string {
	sign := ""
	if tenths < 0 {
		sign = "-"
		tenths = -tenths
	}
	return fmt.Sprintf("%s%d.%d", sign, tenths/10, tenths%10)
}

func aggregate(path, mode string, workers int) (string, error) {
	cfg := &configs.Config{
		Log:   configs.LogConfig{Level: "warn"},
		Input: configs.InputConfig{Path: path, Mode: mode, Compression: "none"},
		Aggregation: configs.AggregationConfig{
			Workers:     workers,
			PageAlign:   true,
			MaxKeyBytes: 100,
		},
	}

	var out bytes.Buffer
	application, err := app.New(cfg, &out, io.Discard)
	if err != nil {
		return "", err
	}
	if err := application.Run(context.Background()); err != nil {
		return "", err
	}
	return out.String(), nil
}
