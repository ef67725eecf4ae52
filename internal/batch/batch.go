// Package batch provides functionality for processing every table file of a
// directory into a chart output file.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fjacquet/chart-csv/internal/logging"
)

// DefaultExtensions are the input file extensions picked up when none are given.
var DefaultExtensions = []string{".csv", ".txt"}

// Job pairs an input file with the output file it produces.
type Job struct {
	Input  string
	Output string
}

// Result is the outcome of one job.
type Result struct {
	Job Job
	Err error
}

// Summary collects the results of a run.
type Summary struct {
	Results []Result
}

// Succeeded returns the number of jobs that completed.
func (s Summary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the jobs that returned an error.
func (s Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Processor discovers input files and runs a job function over each of them.
type Processor struct {
	logger     logging.Logger
	extensions []string
}

// NewProcessor creates a Processor accepting files with the given
// extensions, or DefaultExtensions when none are given.
func NewProcessor(logger logging.Logger, extensions ...string) *Processor {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	normalized := make([]string, len(extensions))
	for i, ext := range extensions {
		normalized[i] = strings.ToLower(ext)
	}
	return &Processor{
		logger:     logging.OrDefault(logger),
		extensions: normalized,
	}
}

// Discover lists the accepted files of inputDir, sorted by name, and maps
// each to a file of the same base name with outputExt in outputDir.
// Subdirectories are not descended into.
func (p *Processor) Discover(inputDir, outputDir, outputExt string) ([]Job, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var jobs []Job
	for _, entry := range entries {
		if entry.IsDir() || !p.accepts(entry.Name()) {
			continue
		}
		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		jobs = append(jobs, Job{
			Input:  filepath.Join(inputDir, entry.Name()),
			Output: filepath.Join(outputDir, base+outputExt),
		})
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Input < jobs[j].Input })

	p.logger.Info("Found files for processing",
		logging.Field{Key: logging.FieldCount, Value: len(jobs)})
	return jobs, nil
}

// Run calls fn for every job. A failing job is logged and recorded; the
// remaining jobs still run.
func (p *Processor) Run(jobs []Job, fn func(Job) error) Summary {
	summary := Summary{Results: make([]Result, 0, len(jobs))}
	for _, job := range jobs {
		err := fn(job)
		if err != nil {
			p.logger.WithError(err).Warn("Failed to process file",
				logging.Field{Key: logging.FieldInputFile, Value: filepath.Base(job.Input)})
		} else {
			p.logger.Debug("Processed file",
				logging.Field{Key: logging.FieldInputFile, Value: filepath.Base(job.Input)})
		}
		summary.Results = append(summary.Results, Result{Job: job, Err: err})
	}
	return summary
}

func (p *Processor) accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range p.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
