// Package pipeline chains tree repair, capacity consolidation and
// validation into a single run over one wind-farm instance.
//
// A Pipeline is configured once with functional options and is safe for
// concurrent use. Run processes one instance; RunBatch runs independent
// jobs on a bounded worker pool; Merge recombines per-batch layouts into one
// certified solution.
//
//	p, err := pipeline.New(pipeline.WithLogger(log), pipeline.WithWorkers(8))
//	res, err := p.Run(ctx, inst, flows)
//	if res.Feasible() { ... }
//
// Every run gets a random RunID that tags its log entries. Precondition
// failures abort the run and are returned as errors; infeasibility is
// reported in Result.Violations.
package pipeline
