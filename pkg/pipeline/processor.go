package pipeline

import "context"

// Processor transforms an ordered sequence of records into another.
// Stages are pure functions of their input and their own construction-time
// configuration; they hold no state between calls and perform no I/O.
type Processor interface {
	// Name returns a short identifier for the stage, used in logs.
	Name() string

	// Process transforms records. Implementations must drop records they
	// cannot interpret rather than fail, must preserve the relative order
	// of surviving records, and must never emit more than one output
	// record per input record.
	Process(ctx context.Context, records []Record) []Record
}
