package usefulness

import (
	"fmt"
	"strings"

	"curse/internal/diag"
	"curse/internal/hir"
	"curse/internal/types"
)

// signature describes the complete set of constructors a scrutinee's type
// can take, as seen by this pass: booleans and choice variants are
// closed (every possibility is enumerable), a tuple or record has exactly
// one constructor and so is complete too, and integers are open (only a
// wildcard, never an enumeration of every literal, can cover them).
type signature struct {
	complete bool
	ctors    []ctor
}

// Checker answers usefulness and exhaustiveness queries against the
// choice definitions of one lowered program, so a constructor pattern's
// sibling variants can be enumerated without re-deriving them from types.
type Checker struct {
	// variantOwner maps a variant name to its owning choice's variant
	// list, mirroring internal/sema's own variantOwner table.
	variantOwner map[string][]hir.VariantDef
}

// NewChecker builds a Checker from every choice definition in prog.
func NewChecker(prog *hir.Program) *Checker {
	c := &Checker{variantOwner: make(map[string][]hir.VariantDef)}
	for _, choice := range prog.Choices {
		for _, v := range choice.Variants {
			c.variantOwner[v.Name] = choice.Variants
		}
	}
	return c
}

func (c *Checker) signatureFor(head ctor) signature {
	switch head.kind {
	case ctorBool:
		return signature{complete: true, ctors: []ctor{{kind: ctorBool, boolValue: true}, {kind: ctorBool, boolValue: false}}}
	case ctorVariant:
		variants, ok := c.variantOwner[head.variant]
		if !ok {
			return signature{complete: false}
		}
		ctors := make([]ctor, len(variants))
		for i, v := range variants {
			ctors[i] = ctor{kind: ctorVariant, variant: v.Name, arity: payloadArity(v.Type)}
		}
		return signature{complete: true, ctors: ctors}
	case ctorTuple, ctorRecord:
		// A tuple/record type has exactly one shape, so the single
		// constructor seen is already the whole signature.
		return signature{complete: true, ctors: []ctor{head}}
	default:
		return signature{complete: false}
	}
}

// CheckArms runs Maranget's usefulness algorithm over one closure's arms,
// reporting a non-exhaustiveness diagnostic (once, with a witness
// pattern) if some value is matched by none of them, and a redundancy
// diagnostic for every arm that is useless given the arms before it.
func (c *Checker) CheckArms(arity int, arms []hir.Arm, report func(*diag.Diagnostic)) {
	var m []row
	for i, arm := range arms {
		pats := make([]*hir.Pat, len(arm.Params))
		for j, p := range arm.Params {
			pats[j] = p.Pat
		}
		if len(pats) != arity {
			continue
		}
		if !c.isUseful(m, pats) {
			report(diag.RedundantArm(arm.Span))
		}
		m = append(m, row{pats: pats, armIdx: i})
	}
	if len(arms) == 0 {
		return
	}

	wildcardRow := wildcardFields(arity)
	if c.isUseful(m, wildcardRow) {
		w := c.witness(m, wildcardRow)
		report(diag.NonExhaustive(arms[len(arms)-1].Span, w))
	}
}

// isUseful reports whether pats is useful relative to matrix m: whether
// there exists a value matched by pats but by no row of m.
func (c *Checker) isUseful(m []row, pats []*hir.Pat) bool {
	if len(pats) == 0 {
		return len(m) == 0
	}
	head := pats[0]
	rest := pats[1:]

	if hc, ok := ctorOf(head); ok {
		return c.isUseful(specialize(m, hc), append(append([]*hir.Pat{}, subPatterns(head, hc)...), rest...))
	}

	sig := signature{}
	if heads := headCtors(m); len(heads) > 0 {
		sig = c.signatureFor(heads[0])
	}

	if sig.complete && len(sig.ctors) > 0 {
		for _, hc := range sig.ctors {
			args := append(append([]*hir.Pat{}, wildcardFields(ctorArity(hc, m))...), rest...)
			if c.isUseful(specialize(m, hc), args) {
				return true
			}
		}
		return false
	}

	return c.isUseful(defaultMatrix(m), rest)
}

// payloadArity reports whether a variant carries a payload slot at all:
// a unit payload (nullary variant) contributes none, anything else
// contributes exactly one slot, whatever shape it has internally.
func payloadArity(t types.Type) int {
	if t.Kind == types.KUnit {
		return 0
	}
	return 1
}

func ctorArity(c ctor, m []row) int {
	if c.kind == ctorVariant {
		return c.arity
	}
	for _, r := range m {
		if hc, ok := ctorOf(r.pats[0]); ok && hc.equal(c) {
			return len(subPatterns(r.pats[0], hc))
		}
	}
	return c.arity
}

// witness constructs one concrete pattern tuple not covered by m,
// descending the same decision procedure as isUseful but assembling the
// constructor it finds useful at each column into a displayable string.
// Only the leading column's label is reported to the caller.
func (c *Checker) witness(m []row, pats []*hir.Pat) string {
	if len(pats) == 0 {
		return ""
	}
	head := pats[0]
	rest := pats[1:]

	if hc, ok := ctorOf(head); ok {
		args := append(append([]*hir.Pat{}, subPatterns(head, hc)...), rest...)
		sub := c.witness(specialize(m, hc), args)
		return ctorLabel(hc, sub, len(subPatterns(head, hc)))
	}

	sig := signature{}
	if heads := headCtors(m); len(heads) > 0 {
		sig = c.signatureFor(heads[0])
	}

	if sig.complete && len(sig.ctors) > 0 {
		for _, hc := range sig.ctors {
			arity := ctorArity(hc, m)
			args := append(append([]*hir.Pat{}, wildcardFields(arity)...), rest...)
			if c.isUseful(specialize(m, hc), args) {
				sub := c.witness(specialize(m, hc), args)
				return ctorLabel(hc, sub, arity)
			}
		}
		return "_"
	}

	return "_"
}

func ctorLabel(c ctor, subFields string, arity int) string {
	switch c.kind {
	case ctorInt:
		return c.intText
	case ctorBool:
		if c.boolValue {
			return "True"
		}
		return "False"
	case ctorVariant:
		if arity == 0 || subFields == "" {
			return c.variant
		}
		return fmt.Sprintf("%s %s", c.variant, subFields)
	case ctorTuple:
		parts := make([]string, c.arity)
		for i := range parts {
			parts[i] = "_"
		}
		return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
	case ctorRecord:
		return "{..}"
	default:
		return "_"
	}
}
