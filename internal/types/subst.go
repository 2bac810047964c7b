package types

// Cell is one entry of a Table: a type variable that is either still
// unbound or has been bound to a concrete Type. Cells are only ever
// appended and bound, never rewritten or removed, which keeps every
// NodeID recorded at bind time valid for the lifetime of the Table.
type Cell struct {
	Bound bool
	Type  Type
	Node  NodeID
}

// Table is the substitution store for one compilation: an append-only
// list of type variable cells, indexed by the variable's integer id. It
// deliberately does not path-compress on Resolve (unlike a classic
// union-find), matching the teacher's never-destructively-read
// substitution style: every lookup walks the chain fresh, so a Table can
// be inspected mid-inference without invalidating anything.
type Table struct {
	cells []Cell
}

func NewTable() *Table {
	return &Table{}
}

// Fresh allocates a new, unbound type variable.
func (t *Table) Fresh() Type {
	id := len(t.cells)
	t.cells = append(t.cells, Cell{})
	return Var(id)
}

// Resolve follows a chain of bound type variables until it reaches either
// an unbound variable or a non-variable type.
func (t *Table) Resolve(ty Type) Type {
	for ty.Kind == KVar {
		cell := t.cells[ty.Var]
		if !cell.Bound {
			return ty
		}
		ty = cell.Type
	}
	return ty
}

// Bind records that the variable with id var is equal to ty, recording
// node as the graph node that justifies the binding. Bind does not itself
// occurs-check; callers must call OccursCheck first.
func (t *Table) Bind(varID int, ty Type, node NodeID) {
	t.cells[varID] = Cell{Bound: true, Type: ty, Node: node}
}

// BindingNode returns the graph node recorded when varID was bound, or
// false if it is still unbound.
func (t *Table) BindingNode(varID int) (NodeID, bool) {
	cell := t.cells[varID]
	return cell.Node, cell.Bound
}

// LookupVar returns the type varID is directly bound to (one step, not
// further resolved) along with the node that justified the binding, or
// false if varID is still unbound.
func (t *Table) LookupVar(varID int) (Type, NodeID, bool) {
	cell := t.cells[varID]
	return cell.Type, cell.Node, cell.Bound
}

// OccursCheck reports whether the type variable varID appears anywhere
// inside ty (after resolving bound variables), which would otherwise let
// Bind construct an infinite type.
func (t *Table) OccursCheck(varID int, ty Type) bool {
	ty = t.Resolve(ty)
	switch ty.Kind {
	case KVar:
		return ty.Var == varID
	case KTuple:
		for _, e := range ty.Elements {
			if t.OccursCheck(varID, e) {
				return true
			}
		}
		return false
	case KFunction:
		if t.OccursCheck(varID, *ty.Lhs) {
			return true
		}
		if t.OccursCheck(varID, *ty.Rhs) {
			return true
		}
		return t.OccursCheck(varID, *ty.Out)
	case KNamed:
		for _, a := range ty.Args {
			if t.OccursCheck(varID, a) {
				return true
			}
		}
		return false
	case KRecord:
		for _, f := range ty.Fields {
			if t.OccursCheck(varID, f.Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// NumVars returns the number of type variables allocated so far, mostly
// useful for tests asserting that generalization consumed exactly the
// variables it introduced.
func (t *Table) NumVars() int {
	return len(t.cells)
}

// Unbound reports whether varID has not been given a binding.
func (t *Table) Unbound(varID int) bool {
	return !t.cells[varID].Bound
}
