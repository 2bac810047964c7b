// Package usefulness implements Maranget's pattern-matrix algorithm for
// match usefulness and exhaustiveness, operating over lowered
// internal/hir patterns. It runs as a pass after internal/sema: every
// arm has already been type-checked, so this package reasons about
// pattern shape. The only type information it reads is each choice
// variant's declared payload type, to tell a nullary variant from one
// that carries a payload.
package usefulness

import "curse/internal/hir"

// ctor identifies one constructor a pattern can match: an integer or
// boolean literal, a tuple/record of a given arity, or a named choice
// variant. The wildcard itself has no ctor and is handled separately.
type ctor struct {
	kind      ctorKind
	intText   string
	boolValue bool
	arity     int
	variant   string
}

type ctorKind int

const (
	ctorInt ctorKind = iota
	ctorBool
	ctorTuple
	ctorRecord
	ctorVariant
)

func ctorOf(p *hir.Pat) (ctor, bool) {
	switch p.Kind {
	case hir.PatInt:
		return ctor{kind: ctorInt, intText: p.IntText}, true
	case hir.PatBool:
		return ctor{kind: ctorBool, boolValue: p.Bool}, true
	case hir.PatTuple:
		return ctor{kind: ctorTuple, arity: len(p.Elements)}, true
	case hir.PatRecord:
		return ctor{kind: ctorRecord, arity: len(p.Fields)}, true
	case hir.PatConstructor:
		// A nullary variant's pattern holds only the unit pattern lowering
		// synthesizes for it, and has no payload slot.
		arity := 1
		if p.Inner == nil || (p.Inner.Kind == hir.PatTuple && len(p.Inner.Elements) == 0) {
			arity = 0
		}
		return ctor{kind: ctorVariant, variant: p.Path[len(p.Path)-1], arity: arity}, true
	default:
		return ctor{}, false
	}
}

func (c ctor) equal(other ctor) bool {
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case ctorInt:
		return c.intText == other.intText
	case ctorBool:
		return c.boolValue == other.boolValue
	case ctorTuple, ctorRecord:
		return c.arity == other.arity
	case ctorVariant:
		return c.variant == other.variant
	default:
		return true
	}
}

// subPatterns returns the fields a pattern built from ctor c would
// destructure into, for specialization. A wildcard/binding contributes
// one wildcard field per arity.
func subPatterns(p *hir.Pat, c ctor) []*hir.Pat {
	switch p.Kind {
	case hir.PatTuple:
		return p.Elements
	case hir.PatRecord:
		fields := make([]*hir.Pat, len(p.Fields))
		for i, f := range p.Fields {
			fields[i] = f.Pat
		}
		return fields
	case hir.PatConstructor:
		// A variant carries one payload slot, or none when c is nullary
		// (arity 0), matching payloadArity; the unit Inner lowering
		// synthesizes for a nullary pattern is then dropped, so every row
		// agrees with c on the column count. Tuple-shaped payloads are
		// specialized further at the next column, not flattened here.
		if c.arity == 0 {
			return nil
		}
		return []*hir.Pat{p.Inner}
	default:
		return wildcardFields(c.arity)
	}
}

func wildcardFields(n int) []*hir.Pat {
	fields := make([]*hir.Pat, n)
	for i := range fields {
		fields[i] = &hir.Pat{Kind: hir.PatWildcard}
	}
	return fields
}

func isWildcardLike(p *hir.Pat) bool {
	return p.Kind == hir.PatWildcard || p.Kind == hir.PatBind || p.Kind == hir.PatError
}

// row is one pattern row of a usefulness matrix: the column patterns for
// one arm, plus which original arm index it came from.
type row struct {
	pats    []*hir.Pat
	armIdx  int
}

// specialize returns the rows of m whose first column matches ctor c,
// with that column expanded into c's sub-patterns, dropping rows whose
// first column is a different concrete constructor.
func specialize(m []row, c ctor) []row {
	var out []row
	for _, r := range m {
		head := r.pats[0]
		rest := r.pats[1:]
		if isWildcardLike(head) {
			newRow := row{armIdx: r.armIdx}
			newRow.pats = append(append([]*hir.Pat{}, wildcardFields(c.arity)...), rest...)
			out = append(out, newRow)
			continue
		}
		hc, ok := ctorOf(head)
		if !ok || !hc.equal(c) {
			continue
		}
		sub := subPatterns(head, c)
		newRow := row{armIdx: r.armIdx}
		newRow.pats = append(append([]*hir.Pat{}, sub...), rest...)
		out = append(out, newRow)
	}
	return out
}

// defaultMatrix returns the rows of m relevant when the value being
// matched is some constructor not already covered by m's first column,
// i.e. every row whose first column is a wildcard, with that column
// dropped.
func defaultMatrix(m []row) []row {
	var out []row
	for _, r := range m {
		if isWildcardLike(r.pats[0]) {
			out = append(out, row{pats: r.pats[1:], armIdx: r.armIdx})
		}
	}
	return out
}

// headCtors collects the distinct constructors appearing in m's first
// column, in first-seen order.
func headCtors(m []row) []ctor {
	var out []ctor
	for _, r := range m {
		c, ok := ctorOf(r.pats[0])
		if !ok {
			continue
		}
		found := false
		for _, seen := range out {
			if seen.equal(c) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, c)
		}
	}
	return out
}
