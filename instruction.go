package absinthe

type instructionKind int

const (
	instContinue instructionKind = iota
	instPrune
	instFail
)

// Instruction is an evaluator's per-node decision: continue into the
// node's children, prune (keep the value, skip the children), or fail
// (abort the whole traversal). Construct one with Continue, Prune or
// Fail.
type Instruction[T any] struct {
	kind  instructionKind
	value T
	state State
	err   error
}

// Continue records value as the node's contribution and instructs the
// engine to descend into the node's children, resuming with st. Pass
// the state the evaluator received unless it needs to swap the schema.
func Continue[T any](value T, st State) Instruction[T] {
	return Instruction[T]{kind: instContinue, value: value, state: st}
}

// Prune records value as the node's contribution and stops descent:
// the node's children are not visited.
func Prune[T any](value T, st State) Instruction[T] {
	return Instruction[T]{kind: instPrune, value: value, state: st}
}

// Fail aborts the traversal immediately. No further nodes are
// evaluated and err is returned unchanged from Reduce.
func Fail[T any](err error) Instruction[T] {
	return Instruction[T]{kind: instFail, err: err}
}

// Evaluator decides the contribution and continuation policy for each
// node. It must be free of engine-visible side effects; the engine
// threads all traversal state explicitly.
type Evaluator[T any] func(node Node, st State, acc T) Instruction[T]
