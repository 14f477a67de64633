// Package workload reads and writes process sets for the schedulers.
package workload

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"cpusched/internal/sched"
)

var (
	// ErrInvalidProcess marks a process set the schedulers should not be given.
	ErrInvalidProcess = errors.New("invalid process")

	// ErrUnsupportedFormat is returned for file types other than YAML and CSV.
	ErrUnsupportedFormat = errors.New("unsupported workload format")
)

// Format names an on-disk workload encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "yaml", "yml" and "csv" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// file mirrors a YAML workload:
//
//	processes:
//	  - name: P1
//	    arrival: 0
//	    burst: 3
//	    priority: 1
type file struct {
	Processes []sched.Process `yaml:"processes"`
}

// Load reads a workload file, picking the decoder from its extension.
func Load(path string) ([]sched.Process, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	procs, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return procs, nil
}

// Parse decodes and validates a workload.
func Parse(r io.Reader, format Format) ([]sched.Process, error) {
	var (
		procs []sched.Process
		err   error
	)
	switch format {
	case FormatYAML:
		procs, err = parseYAML(r)
	case FormatCSV:
		procs, err = parseCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if err := Validate(procs); err != nil {
		return nil, err
	}
	return procs, nil
}

func parseYAML(r io.Reader) ([]sched.Process, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return f.Processes, nil
}

// parseCSV reads rows of name,burst,arrival[,priority]. Lines starting with
// '#' and a leading header row are skipped.
func parseCSV(r io.Reader) ([]sched.Process, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 && strings.EqualFold(rows[0][0], "name") {
		rows = rows[1:]
	}

	procs := make([]sched.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) != 3 && len(row) != 4 {
			return nil, fmt.Errorf("csv row %d: want 3 or 4 fields, got %d", i+1, len(row))
		}
		p := sched.Process{Name: strings.TrimSpace(row[0])}
		fields := []*int{&p.Burst, &p.Arrival, &p.Priority}
		for j, raw := range row[1:] {
			v, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("csv row %d field %d: %w", i+1, j+2, err)
			}
			*fields[j] = v
		}
		procs = append(procs, p)
	}
	return procs, nil
}

// Validate checks for a non-empty set of uniquely named processes with
// positive bursts and non-negative arrivals. All problems are reported.
func Validate(procs []sched.Process) error {
	if len(procs) == 0 {
		return fmt.Errorf("%w: workload has no processes", ErrInvalidProcess)
	}

	var errs []error
	seen := make(map[string]bool, len(procs))
	for i, p := range procs {
		switch {
		case p.Name == "":
			errs = append(errs, fmt.Errorf("%w: process %d has no name", ErrInvalidProcess, i+1))
		case seen[p.Name]:
			errs = append(errs, fmt.Errorf("%w: duplicate name %q", ErrInvalidProcess, p.Name))
		}
		seen[p.Name] = true
		if p.Burst <= 0 {
			errs = append(errs, fmt.Errorf("%w: %q has burst %d", ErrInvalidProcess, p.Name, p.Burst))
		}
		if p.Arrival < 0 {
			errs = append(errs, fmt.Errorf("%w: %q arrives at %d", ErrInvalidProcess, p.Name, p.Arrival))
		}
	}
	return errors.Join(errs...)
}

// Write encodes procs in the given format.
func Write(w io.Writer, procs []sched.Process, format Format) error {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(file{Processes: procs})
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = io.Copy(w, bytes.NewReader(data))
		return err
	case FormatCSV:
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"name", "burst", "arrival", "priority"})
		for _, p := range procs {
			_ = cw.Write([]string{
				p.Name,
				strconv.Itoa(p.Burst),
				strconv.Itoa(p.Arrival),
				strconv.Itoa(p.Priority),
			})
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
