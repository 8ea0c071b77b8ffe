// Package absinthe provides a cycle-safe depth-first reduction over
// heterogeneous graph and tree nodes. Nodes expose their children
// through the Node capability rather than a concrete type; a
// caller-supplied evaluator decides per node whether to descend, stop
// with a value, or abort. Every reachable node is folded at most once
// per run, so cyclic graphs and diamond-shared subtrees are safe by
// construction.
package absinthe

// Reduce folds an accumulator over every node reachable from root,
// depth-first and pre-order, visiting each distinct node identity at
// most once. The schema is opaque to the engine: it seeds the initial
// state and is handed to Node.Children unchanged unless an evaluator
// instruction swaps it.
//
// The evaluator controls the walk per node: Continue folds the node's
// children left to right, threading the accumulator and state through
// each; Prune keeps the node's value and skips its children; Fail
// aborts immediately, and Reduce returns the evaluator's error
// unchanged with the zero accumulator. A node already in the seen set
// is skipped entirely, subtree included, keeping the accumulator as-is
// — this one check handles both cycles and nodes shared via multiple
// paths.
//
// The traversal is single-threaded and synchronous; it touches no
// external resources.
func Reduce[T any](root Node, schema any, init T, eval Evaluator[T]) (T, error) {
	value, _, err := reduceNode(root, NewState(schema), init, eval)
	if err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// reduceNode visits a single node and, on Continue, its subtree. It
// returns the accumulator and state to thread into the next sibling.
func reduceNode[T any](node Node, st State, acc T, eval Evaluator[T]) (T, State, error) {
	if st.Seen(node) {
		return acc, st, nil
	}

	ins := eval(node, st, acc)
	switch ins.kind {
	case instPrune:
		return ins.value, ins.state.MarkSeen(node), nil

	case instFail:
		var zero T
		return zero, st, ins.err

	default: // instContinue
		next := ins.state.MarkSeen(node)
		childState := next.PushPath(node)
		value := ins.value
		for _, child := range node.Children(childState) {
			var err error
			value, childState, err = reduceNode(child, childState, value, eval)
			if err != nil {
				return value, childState, err
			}
		}
		// Pop the path on the way out; seen marks and any schema swap
		// made below stay threaded.
		return value, childState.withPath(next.Path), nil
	}
}
