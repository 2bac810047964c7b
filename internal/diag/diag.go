// Package diag defines the diagnostic taxonomy produced by internal/sema
// and internal/usefulness, and a terminal-aware text renderer for it.
// Its error-code-plus-phase shape follows the sibling diagnostics package
// found elsewhere in the pack this compiler was built from, rather than
// ad hoc fmt.Errorf strings.
package diag

import (
	"fmt"

	"curse/internal/token"
)

// Phase identifies which stage of the compiler produced a Diagnostic.
type Phase string

const (
	PhaseParse      Phase = "parse"
	PhaseLower      Phase = "lower"
	PhaseUsefulness Phase = "usefulness"
)

// Code is a stable identifier for one class of diagnostic, suitable for
// golden-test comparison and for a future LSP front end to key off of.
type Code string

const (
	CodeSyntaxError      Code = "P001"
	CodeUnify            Code = "L001"
	CodeCyclicType       Code = "L002"
	CodeIdentNotFound    Code = "L003"
	CodeParseInt         Code = "L004"
	CodeArityMismatch    Code = "L005"
	CodeUnimplementedSym Code = "L006"
	CodeUnknownVariant   Code = "L007"
	CodeNonExhaustive    Code = "U001"
	CodeRedundantArm     Code = "U002"
)

// Diagnostic is one reported problem, always carrying enough information
// to render a source-anchored message.
type Diagnostic struct {
	Code    Code
	Phase   Phase
	Span    token.Span
	Message string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Phase, d.Span.Line, d.Span.Column, d.Code, d.Message)
}

func New(code Code, phase Phase, span token.Span, format string, args ...any) *Diagnostic {
	return &Diagnostic{Code: code, Phase: phase, Span: span, Message: fmt.Sprintf(format, args...)}
}

func SyntaxError(span token.Span, message string) *Diagnostic {
	return New(CodeSyntaxError, PhaseParse, span, "%s", message)
}

func UnifyError(span token.Span, want, got string) *Diagnostic {
	return New(CodeUnify, PhaseLower, span, "type mismatch: expected %s, found %s", want, got)
}

func CyclicType(span token.Span) *Diagnostic {
	return New(CodeCyclicType, PhaseLower, span, "cyclic type: a type variable occurs within its own binding")
}

func IdentNotFound(span token.Span, name string) *Diagnostic {
	return New(CodeIdentNotFound, PhaseLower, span, "identifier not found in this scope: %q", name)
}

func ParseIntError(span token.Span, text string) *Diagnostic {
	return New(CodeParseInt, PhaseLower, span, "invalid integer literal: %q does not fit in a 32-bit signed integer", text)
}

func ArityMismatch(span token.Span, want, got int) *Diagnostic {
	return New(CodeArityMismatch, PhaseLower, span, "closure arm has %d parameter(s), expected %d to match the other arms", got, want)
}

func UnimplementedSymbol(span token.Span, symbol string) *Diagnostic {
	return New(CodeUnimplementedSym, PhaseLower, span, "%q is reserved but not yet implemented", symbol)
}

func UnknownVariant(span token.Span, path string) *Diagnostic {
	return New(CodeUnknownVariant, PhaseLower, span, "no choice variant found for path %q", path)
}

func NonExhaustive(span token.Span, witness string) *Diagnostic {
	return New(CodeNonExhaustive, PhaseUsefulness, span, "match is not exhaustive: %s is not covered", witness)
}

func RedundantArm(span token.Span) *Diagnostic {
	return New(CodeRedundantArm, PhaseUsefulness, span, "unreachable match arm: an earlier arm already covers every value this one would")
}
