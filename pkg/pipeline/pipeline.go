package pipeline

import (
	"context"

	"go.uber.org/zap"
)

// Pipeline applies an ordered list of processors to a batch of records,
// feeding each stage's output to the next. A pipeline holds no mutable
// state after construction, so a single instance is safe for concurrent
// runs.
type Pipeline struct {
	stages []Processor
	logger *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger attaches a logger for per-stage debug counts. The default
// logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a pipeline over the given stages, applied in slice order.
// A pipeline with no stages returns its input unchanged.
func New(stages []Processor, opts ...Option) *Pipeline {
	p := &Pipeline{
		stages: stages,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// StageStat records the record counts around one stage of a run.
type StageStat struct {
	Stage string
	In    int
	Out   int
}

// Name implements Processor, so pipelines nest as stages of other
// pipelines.
func (p *Pipeline) Name() string { return "pipeline" }

// Process threads records through each stage in order and returns the
// final sequence. Cancellation is honored between stages: the records
// produced so far are returned.
func (p *Pipeline) Process(ctx context.Context, records []Record) []Record {
	records, _ = p.ProcessWithStats(ctx, records)
	return records
}

// ProcessWithStats is Process plus per-stage input/output counts, in stage
// order. A run cut short by cancellation reports only the stages that ran.
func (p *Pipeline) ProcessWithStats(ctx context.Context, records []Record) ([]Record, []StageStat) {
	stats := make([]StageStat, 0, len(p.stages))
	for _, stage := range p.stages {
		if ctx.Err() != nil {
			break
		}

		in := len(records)
		records = stage.Process(ctx, records)
		stats = append(stats, StageStat{Stage: stage.Name(), In: in, Out: len(records)})

		p.logger.Debug("stage complete",
			zap.String("stage", stage.Name()),
			zap.Int("in", in),
			zap.Int("out", len(records)))
	}
	return records, stats
}

// Run is the string-level convenience: raw lines in, surviving lines out.
func (p *Pipeline) Run(ctx context.Context, lines []string) []string {
	return UnwrapRecords(p.Process(ctx, WrapLines(lines)))
}
