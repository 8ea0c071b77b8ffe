package absinthe

// State is the traversal bookkeeping threaded through a reduction: the
// schema used to resolve children, the ancestor path, and the set of
// node identities already visited.
//
// State is a value type updated by substitution: MarkSeen, PushPath and
// WithSchema return new values rather than mutating the receiver's
// exported fields, so sibling branches never observe each other's path.
// The seen set is the exception by design — it is shared across the
// whole run, because cycle and shared-subtree detection must see every
// mark globally, not per branch.
type State struct {
	// Schema is the opaque context handed to Node.Children. The engine
	// passes it through unchanged unless an evaluator instruction
	// supplies a replacement state.
	Schema any

	// Path holds the ancestors of the nodes currently being resolved,
	// root first. When Node.Children is invoked, the receiver node is
	// the last element.
	Path []Node

	seen map[any]struct{}
}

// NewState constructs a fresh state with an empty seen set, an empty
// path, and the given schema. One is created per Reduce call.
func NewState(schema any) State {
	return State{
		Schema: schema,
		seen:   make(map[any]struct{}),
	}
}

// Seen reports whether n's identity has been visited during this run.
func (st State) Seen(n Node) bool {
	_, ok := st.seen[n.NodeKey()]
	return ok
}

// MarkSeen records n's identity as visited and returns the state for
// threading. Marking an already-seen node is a no-op. The mark is
// visible to every branch of the run sharing this state's lineage.
func (st State) MarkSeen(n Node) State {
	st.seen[n.NodeKey()] = struct{}{}
	return st
}

// PushPath returns a state with n appended to the ancestor path. The
// path slice is copied, so the returned state's path cannot alias a
// sibling branch's.
func (st State) PushPath(n Node) State {
	path := make([]Node, len(st.Path), len(st.Path)+1)
	copy(path, st.Path)
	st.Path = append(path, n)
	return st
}

// WithSchema returns a state carrying a replacement schema. Used by
// evaluators that swap the resolution context for a subtree.
func (st State) WithSchema(schema any) State {
	st.Schema = schema
	return st
}

// withPath restores a previously captured path, keeping the threaded
// seen set and schema. Used by the engine to pop the path on return
// from a node without losing marks made below it.
func (st State) withPath(path []Node) State {
	st.Path = path
	return st
}
