package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/gust/config"
)

// csvSink appends gocsv rows to a writer, emitting the header once.
type csvSink struct {
	w             io.Writer
	headerWritten bool
}

func (s *csvSink) write(rows any) error {
	if !s.headerWritten {
		if err := gocsv.Marshal(rows, s.w); err != nil {
			return err
		}
		s.headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(rows, s.w)
}

// OutputManager writes run output (stats.csv, perf.csv, config.yaml) into a
// directory. A nil *OutputManager is valid and discards everything.
type OutputManager struct {
	dir       string
	statsFile *os.File
	perfFile  *os.File
	stats     csvSink
	perf      csvSink
}

// NewOutputManager creates dir and opens the CSV files inside it.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	statsFile, err := os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	perfFile, err := os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		statsFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}

	return &OutputManager{
		dir:       dir,
		statsFile: statsFile,
		perfFile:  perfFile,
		stats:     csvSink{w: statsFile},
		perf:      csvSink{w: perfFile},
	}, nil
}

// WriteConfig saves cfg as config.yaml next to the CSV output.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteStats appends a window row to stats.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := om.stats.write([]WindowStats{stats}); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// WritePerf appends a perf row to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	if err := om.perf.write([]PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes the output files, returning the first error.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	for _, f := range []*os.File{om.statsFile, om.perfFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// SampleWriter streams per-tick FieldSamples as CSV, for headless baselines.
type SampleWriter struct {
	sink csvSink
}

// NewSampleWriter writes samples to w.
func NewSampleWriter(w io.Writer) *SampleWriter {
	return &SampleWriter{sink: csvSink{w: w}}
}

// Write appends one sample row.
func (sw *SampleWriter) Write(s FieldSample) error {
	if err := sw.sink.write([]FieldSample{s}); err != nil {
		return fmt.Errorf("writing sample: %w", err)
	}
	return nil
}
