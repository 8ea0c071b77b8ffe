package schema

import (
	"fmt"

	"github.com/mechabyte/absinthe"
)

// Schema is a registry of named types plus the root operation type
// names. It is the opaque schema value handed to the traversal engine,
// and is itself a traversal node whose children are the root types, so
// a whole type graph can be folded with a single Reduce call.
type Schema struct {
	QueryType        string
	MutationType     string
	SubscriptionType string

	types map[string]Type
	order []string
}

// New returns a schema with the built-in scalars pre-registered.
func New() *Schema {
	s := &Schema{types: make(map[string]Type)}
	for _, name := range []string{"Int", "Float", "String", "Boolean", "ID"} {
		s.types[name] = &Scalar{Name: name}
		s.order = append(s.order, name)
	}
	return s
}

// RegisterType adds a type definition. Registering a second type under
// an existing name is an error, built-in scalars included.
func (s *Schema) RegisterType(t Type) error {
	name := t.TypeName()
	if name == "" {
		return fmt.Errorf("cannot register a type without a name")
	}
	if _, exists := s.types[name]; exists {
		return fmt.Errorf("type %q already registered", name)
	}
	s.types[name] = t
	s.order = append(s.order, name)
	return nil
}

// Lookup returns the type registered under name.
func (s *Schema) Lookup(name string) (Type, bool) {
	t, ok := s.types[name]
	return t, ok
}

// TypeNames returns all registered type names in registration order,
// built-in scalars first.
func (s *Schema) TypeNames() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// roots returns the root operation types that are defined, in
// query/mutation/subscription order.
func (s *Schema) roots() []Type {
	var roots []Type
	for _, name := range []string{s.QueryType, s.MutationType, s.SubscriptionType} {
		if name == "" {
			continue
		}
		if t, ok := s.Lookup(name); ok {
			roots = append(roots, t)
		}
	}
	return roots
}

// NodeKey identifies the schema node itself; a schema appears at most
// once per traversal, as the root.
func (s *Schema) NodeKey() any { return s }

// Children returns the schema's root operation types.
func (s *Schema) Children(st absinthe.State) []absinthe.Node {
	roots := s.roots()
	children := make([]absinthe.Node, len(roots))
	for i, r := range roots {
		children[i] = r
	}
	return children
}

// CollectTypes walks the type graph from the root operation types and
// returns every reachable named type exactly once, in depth-first
// pre-order. Recursive and mutually recursive definitions are safe;
// the seen set cuts the cycles. Types registered but unreachable from
// the roots are not included.
func CollectTypes(s *Schema) ([]Type, error) {
	var init []Type
	return absinthe.Reduce(s, s, init,
		func(node absinthe.Node, st absinthe.State, acc []Type) absinthe.Instruction[[]Type] {
			if t, ok := node.(Type); ok {
				acc = append(acc, t)
			}
			return absinthe.Continue(acc, st)
		})
}
