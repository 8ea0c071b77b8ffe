package absinthe

// Node is the capability a value must provide to participate in a
// traversal. The engine never inspects node contents itself; children
// resolution is the sole extension point.
//
// Implementations must return a stable, deterministic child ordering
// for a given (node, schema, state) — the engine folds children
// strictly left to right in the order returned. A children list that
// grows without ever revisiting a marked node will not terminate;
// that is a contract violation by the implementation, not something
// the engine guards against.
type Node interface {
	// NodeKey reports the node's identity for cycle detection. It must
	// be comparable and stable for the lifetime of a traversal run.
	// Pointer-shaped nodes typically return the pointer itself; named
	// schema types return their name.
	NodeKey() any

	// Children returns the node's children for this traversal. The
	// state carries the schema and the ancestor path (with this node
	// already pushed), so children can be derived context-sensitively,
	// e.g. resolving a type reference through the schema or refusing
	// to re-expand a type already on the path.
	Children(st State) []Node
}
