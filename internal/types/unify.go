package types

// Unify attempts to make a and b equal, recording its reasoning as nodes
// and edges in graph and any new bindings in table. It returns the graph
// node for the top-level conclusion and whether unification succeeded;
// a failed conclusion is a NotEquiv node (or Occurs, for an occurs-check
// failure).
//
// Neither side is resolved before dispatch: a type variable that is
// already bound unifies through its binding rather than being flattened
// away first, recording an EdgeTransitivity edge back to the Binding
// node that justifies it.
//
// Structural mismatches always attempt every child position before
// reporting failure (e.g. a Function/Function mismatch still unifies
// lhs, rhs, and output so all three diagnostics are available), matching
// the lowering engine's "never abort on first error" propagation policy.
func Unify(table *Table, graph *Graph, a, b Type) (NodeID, bool) {
	if a.Kind == KVar {
		return unifyVar(table, graph, a.Var, b)
	}
	if b.Kind == KVar {
		return unifyVar(table, graph, b.Var, a)
	}

	if a.Kind != b.Kind {
		return graph.AddNode(NotEquiv), false
	}

	switch a.Kind {
	case KInt, KBool, KUnit:
		return graph.AddNode(Equiv), true

	case KNamed:
		if a.Name != b.Name || len(a.Args) != len(b.Args) {
			return graph.AddNode(NotEquiv), false
		}
		node := graph.AddNode(Equiv)
		ok := true
		for i := range a.Args {
			childID, childOK := Unify(table, graph, a.Args[i], b.Args[i])
			graph.AddTupleEdge(node, childID, i)
			ok = ok && childOK
		}
		if !ok {
			graph.nodes[node].Kind = NotEquiv
			return node, false
		}
		return node, true

	case KTuple:
		if len(a.Elements) != len(b.Elements) {
			return graph.AddNode(NotEquiv), false
		}
		node := graph.AddNode(Equiv)
		ok := true
		for i := range a.Elements {
			childID, childOK := Unify(table, graph, a.Elements[i], b.Elements[i])
			graph.AddTupleEdge(node, childID, i)
			ok = ok && childOK
		}
		if !ok {
			graph.nodes[node].Kind = NotEquiv
			return node, false
		}
		return node, true

	case KFunction:
		node := graph.AddNode(Equiv)
		ok := true

		lhsID, lhsOK := Unify(table, graph, *a.Lhs, *b.Lhs)
		graph.AddEdge(node, lhsID, EdgeFunctionLhs)
		ok = ok && lhsOK

		rhsID, rhsOK := Unify(table, graph, *a.Rhs, *b.Rhs)
		graph.AddEdge(node, rhsID, EdgeFunctionRhs)
		ok = ok && rhsOK

		outID, outOK := Unify(table, graph, *a.Out, *b.Out)
		graph.AddEdge(node, outID, EdgeFunctionOutput)
		ok = ok && outOK

		if !ok {
			graph.nodes[node].Kind = NotEquiv
			return node, false
		}
		return node, true

	case KRecord:
		return unifyRecords(table, graph, a, b)

	default:
		return graph.AddNode(NotEquiv), false
	}
}

// unifyRecords unifies two record types field-by-field by name. A field
// present in one record and absent in the other is a mismatch: curse has
// no row polymorphism (an explicit Non-goal), so records are unified
// structurally and exactly.
func unifyRecords(table *Table, graph *Graph, a, b Type) (NodeID, bool) {
	if len(a.Fields) != len(b.Fields) {
		return graph.AddNode(NotEquiv), false
	}
	byName := make(map[string]Type, len(b.Fields))
	for _, f := range b.Fields {
		byName[f.Name] = f.Type
	}
	node := graph.AddNode(Equiv)
	ok := true
	for i, f := range a.Fields {
		other, present := byName[f.Name]
		if !present {
			ok = false
			continue
		}
		childID, childOK := Unify(table, graph, f.Type, other)
		graph.AddTupleEdge(node, childID, i)
		ok = ok && childOK
	}
	if !ok {
		graph.nodes[node].Kind = NotEquiv
		return node, false
	}
	return node, true
}

// unifyVar unifies the type variable varID against other. If varID is
// already bound, it unifies other against the bound type and records an
// EdgeTransitivity edge back to both the proof just built and the
// original Binding node, so a later Equiv conclusion reached only
// because a variable had previously been bound still has incoming edges
// to the proofs that justify it. If other already resolves to varID
// itself, both sides are the same variable and unify without a binding.
// Otherwise it binds varID directly.
func unifyVar(table *Table, graph *Graph, varID int, other Type) (NodeID, bool) {
	if boundTo, bindingNode, bound := table.LookupVar(varID); bound {
		proofID, ok := Unify(table, graph, boundTo, other)
		var node NodeID
		if ok {
			node = graph.AddNode(Equiv)
		} else {
			node = graph.AddNode(NotEquiv)
		}
		graph.AddEdge(node, proofID, EdgeTransitivity)
		graph.AddEdge(node, bindingNode, EdgeTransitivity)
		return node, ok
	}

	if r := table.Resolve(other); r.Kind == KVar && r.Var == varID {
		return graph.AddNode(Equiv), true
	}

	return bindVar(table, graph, varID, other)
}

// bindVar binds the type variable varID to ty after checking that ty
// does not itself mention varID (which would create an infinite type).
// An occurs-check failure is recorded as a distinguished Occurs node
// rather than a generic NotEquiv, so the lowering engine can tell a
// cyclic-type failure apart from an ordinary structural mismatch.
func bindVar(table *Table, graph *Graph, varID int, ty Type) (NodeID, bool) {
	if table.OccursCheck(varID, ty) {
		return graph.AddNode(Occurs), false
	}
	node := graph.AddNode(Binding)
	table.Bind(varID, ty, node)
	return node, true
}
