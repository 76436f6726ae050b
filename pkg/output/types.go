// Package output provides formatting and output generation for run results.
package output

import (
	"time"

	"github.com/datelinehq/dateline/pkg/pipeline"
)

// Report is the complete output of a pipeline run.
type Report struct {
	// Lines are the transformed output lines, in order.
	Lines []string `json:"lines"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate counts for a run.
type Summary struct {
	// Input is the number of lines fed into the pipeline.
	Input int `json:"input"`

	// Emitted is the number of lines that survived every stage.
	Emitted int `json:"emitted"`

	// Dropped is Input minus Emitted.
	Dropped int `json:"dropped"`

	// Stages holds per-stage record counts, in stage order.
	Stages []StageCount `json:"stages,omitempty"`
}

// StageCount reports the record counts around one pipeline stage.
type StageCount struct {
	Stage string `json:"stage"`
	In    int    `json:"in"`
	Out   int    `json:"out"`
}

// Metadata provides context about the run.
type Metadata struct {
	// ConfigFile is the path to the configuration file used, if any.
	ConfigFile string `json:"config_file,omitempty"`

	// Sources lists the inputs that were read.
	Sources []string `json:"sources"`

	// InputLayout is the layout the run parsed dates with.
	InputLayout string `json:"input_layout"`

	// OutputLayout is the layout the run rendered dates with.
	OutputLayout string `json:"output_layout"`

	// RanAt is when the run was performed.
	RanAt time.Time `json:"ran_at"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration"`
}

// NewReport assembles a Report from the lines a run emitted and its
// per-stage stats.
func NewReport(lines []string, stats []pipeline.StageStat, meta Metadata) *Report {
	input := len(lines)
	if len(stats) > 0 {
		input = stats[0].In
	}

	summary := Summary{
		Input:   input,
		Emitted: len(lines),
		Dropped: input - len(lines),
		Stages:  make([]StageCount, 0, len(stats)),
	}
	for _, s := range stats {
		summary.Stages = append(summary.Stages, StageCount{Stage: s.Stage, In: s.In, Out: s.Out})
	}

	return &Report{
		Lines:    lines,
		Summary:  summary,
		Metadata: meta,
	}
}

// HasDrops returns true if any input line was dropped during the run.
func (r *Report) HasDrops() bool {
	return r.Summary.Dropped > 0
}
