// Package pipeline is a small staged-execution framework: a Pipeline runs
// a fixed sequence of Processors over a shared PipelineContext, continuing
// past a stage that reports diagnostics rather than aborting, so a caller
// sees every problem a source file has, not just the first.
package pipeline

import (
	"curse/internal/diag"

	"github.com/google/uuid"
)

// PipelineContext carries one run through every stage of a Pipeline. Data
// is the inter-stage payload: a stage reads what an earlier stage left
// there under an agreed key and may add its own, but stages never delete
// another stage's entry. Diagnostics accumulates across every stage that
// runs, regardless of which stage reported them.
type PipelineContext struct {
	SessionID   uuid.UUID
	Diagnostics []*diag.Diagnostic
	Data        map[string]any
}

// NewContext starts a fresh run with its own session id, suitable for
// correlating a run's diagnostics across a log aggregator or an LSP
// client's multiple in-flight requests.
func NewContext() *PipelineContext {
	return &PipelineContext{Data: make(map[string]any), SessionID: uuid.New()}
}

// Report appends a diagnostic without halting the run.
func (c *PipelineContext) Report(d *diag.Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// HadErrors reports whether any stage run so far has reported a diagnostic.
func (c *PipelineContext) HadErrors() bool {
	return len(c.Diagnostics) > 0
}

// Processor is one stage of a Pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a plain function to the Processor interface.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext { return f(ctx) }

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors to collect diagnostics from all stages
		// (e.g. LSP needs both parse and semantic errors).
	}
	return ctx
}
