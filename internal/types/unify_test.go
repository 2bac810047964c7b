package types

import "testing"

func TestUnifyPrimitives(t *testing.T) {
	table := NewTable()
	graph := NewGraph()

	if _, ok := Unify(table, graph, Int(), Int()); !ok {
		t.Errorf("Int/Int should unify")
	}
	if _, ok := Unify(table, graph, Int(), Bool()); ok {
		t.Errorf("Int/Bool should not unify")
	}
}

func TestUnifyBindsVar(t *testing.T) {
	table := NewTable()
	graph := NewGraph()

	v := table.Fresh()
	if _, ok := Unify(table, graph, v, Int()); !ok {
		t.Fatalf("var/Int should unify")
	}
	resolved := table.Resolve(v)
	if resolved.Kind != KInt {
		t.Fatalf("resolved = %v, want Int", resolved)
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	table := NewTable()
	graph := NewGraph()

	v := table.Fresh()
	cyclic := Tuple(v, Int())
	if _, ok := Unify(table, graph, v, cyclic); ok {
		t.Fatalf("binding a var to a type containing itself should fail the occurs check")
	}
}

func TestUnifyTupleArityMismatch(t *testing.T) {
	table := NewTable()
	graph := NewGraph()

	a := Tuple(Int(), Int())
	b := Tuple(Int(), Int(), Int())
	if _, ok := Unify(table, graph, a, b); ok {
		t.Fatalf("tuples of different arity should not unify")
	}
}

func TestUnifyBoundVarRecordsTransitivityEdge(t *testing.T) {
	table := NewTable()
	graph := NewGraph()

	v := table.Fresh()
	if _, ok := Unify(table, graph, v, Int()); !ok {
		t.Fatalf("var/Int should unify")
	}

	// v is now bound; unifying it again should go through the binding
	// rather than being resolved away before Unify ever sees it.
	node, ok := Unify(table, graph, v, Int())
	if !ok {
		t.Fatalf("already-bound var/Int should still unify")
	}

	edges := graph.EdgesFrom(node)
	if len(edges) != 2 {
		t.Fatalf("got %d edges from the conclusion, want 2 (proof + binding)", len(edges))
	}
	for _, e := range edges {
		if e.Kind != EdgeTransitivity {
			t.Errorf("edge kind = %v, want EdgeTransitivity", e.Kind)
		}
	}
}

func TestUnifyBoundVarMismatchIsNotEquivButStillLinked(t *testing.T) {
	table := NewTable()
	graph := NewGraph()

	v := table.Fresh()
	if _, ok := Unify(table, graph, v, Int()); !ok {
		t.Fatalf("var/Int should unify")
	}

	node, ok := Unify(table, graph, v, Bool())
	if ok {
		t.Fatalf("a var already bound to Int should not also unify with Bool")
	}
	if graph.Node(node).Kind != NotEquiv {
		t.Errorf("conclusion kind = %v, want NotEquiv", graph.Node(node).Kind)
	}
	if len(graph.EdgesFrom(node)) != 2 {
		t.Errorf("expected the failed transitive unification to still record both edges")
	}
}

func TestUnifyOccursCheckIsDistinguishedFromStructuralMismatch(t *testing.T) {
	table := NewTable()
	graph := NewGraph()

	v := table.Fresh()
	cyclic := Tuple(v, Int())
	node, ok := Unify(table, graph, v, cyclic)
	if ok {
		t.Fatalf("binding a var to a type containing itself should fail the occurs check")
	}
	if graph.Node(node).Kind != Occurs {
		t.Errorf("conclusion kind = %v, want Occurs", graph.Node(node).Kind)
	}

	table2 := NewTable()
	graph2 := NewGraph()
	node2, ok2 := Unify(table2, graph2, Int(), Bool())
	if ok2 {
		t.Fatalf("Int/Bool should not unify")
	}
	if graph2.Node(node2).Kind != NotEquiv {
		t.Errorf("conclusion kind = %v, want NotEquiv for a plain structural mismatch", graph2.Node(node2).Kind)
	}
}

func TestUnifyFunctionAttemptsAllChildren(t *testing.T) {
	table := NewTable()
	graph := NewGraph()

	fn1 := Function(Int(), Int(), Int())
	fn2 := Function(Bool(), Int(), Int()) // lhs mismatches, rhs/out match

	node, ok := Unify(table, graph, fn1, fn2)
	if ok {
		t.Fatalf("mismatched lhs should fail overall unification")
	}

	edges := graph.EdgesFrom(node)
	if len(edges) != 3 {
		t.Fatalf("got %d child edges, want 3 (lhs, rhs, output all attempted)", len(edges))
	}
}
