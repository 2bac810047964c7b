// Package compiler wires parsing, semantic lowering, and exhaustiveness
// checking into one staged pipeline.Pipeline run, the way a driver (an
// LSP server, a CLI, a test harness) is expected to invoke the compiler
// as a whole rather than calling each package directly.
package compiler

import (
	"curse/internal/ast"
	"curse/internal/diag"
	"curse/internal/hir"
	"curse/internal/parser"
	"curse/internal/pipeline"
	"curse/internal/sema"
	"curse/internal/usefulness"
)

const (
	keySource = "compiler.source"
	keyAST    = "compiler.ast"
	keyHIR    = "compiler.hir"
)

// Result is the outcome of compiling one source file.
type Result struct {
	// SessionID identifies this run, for correlating its diagnostics in a
	// log aggregator or an LSP client juggling several in-flight requests.
	SessionID string
	// Program is the fully lowered program, or nil if parsing failed
	// badly enough that no AST was produced at all.
	Program     *hir.Program
	Diagnostics []*diag.Diagnostic
}

// HadErrors reports whether compilation produced any diagnostic.
func (r Result) HadErrors() bool { return len(r.Diagnostics) > 0 }

// Compile runs source through every stage of the compiler, accumulating
// diagnostics from all of them. It does not stop at the first failing
// stage: a parse error still lets lowering run over whatever the parser
// recovered. Exhaustiveness checking runs only when neither parsing nor
// lowering reported a diagnostic (see usefulnessStage).
func Compile(source string) Result {
	ctx := pipeline.NewContext()
	ctx.Data[keySource] = source

	run := pipeline.New(
		pipeline.ProcessorFunc(parseStage),
		pipeline.ProcessorFunc(lowerStage),
		pipeline.ProcessorFunc(usefulnessStage),
	)
	ctx = run.Run(ctx)

	result := Result{SessionID: ctx.SessionID.String(), Diagnostics: ctx.Diagnostics}
	if prog, ok := ctx.Data[keyHIR].(*hir.Program); ok {
		result.Program = prog
	}
	return result
}

func parseStage(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	source, _ := ctx.Data[keySource].(string)
	prog, errs := parser.Parse(source)
	for _, e := range errs {
		ctx.Report(diag.SyntaxError(e.Span, e.Message))
	}
	ctx.Data[keyAST] = prog
	return ctx
}

func lowerStage(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	prog, ok := ctx.Data[keyAST].(*ast.Program)
	if !ok || prog == nil {
		return ctx
	}
	sctx := sema.NewContext()
	out := sema.Lower(sctx, prog)
	for _, d := range sctx.Diagnostics {
		ctx.Report(d)
	}
	ctx.Data[keyHIR] = out
	return ctx
}

// usefulnessStage skips exhaustiveness checking entirely once lowering
// has reported any diagnostic: a partially-typed program can leave
// closures with unresolved arities or mismatched arms, and running
// usefulness analysis over those produces spurious NonExhaustive or
// RedundantArm noise on top of the real lowering error.
func usefulnessStage(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if len(ctx.Diagnostics) > 0 {
		return ctx
	}
	out, ok := ctx.Data[keyHIR].(*hir.Program)
	if !ok || out == nil {
		return ctx
	}
	for _, d := range usefulness.Check(out) {
		ctx.Report(d)
	}
	return ctx
}
