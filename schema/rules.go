package schema

import (
	"fmt"
	"regexp"

	"github.com/mechabyte/absinthe"
)

// Validation walks the type graph with the same traversal the type-map
// collection uses; each rule is checked when its node is visited, and
// the first violation aborts the walk. The engine stays a pure
// control-flow skeleton — every judgement here lives in the evaluator.

// UndefinedTypeError reports a reference to a type name that is not
// registered on the schema.
type UndefinedTypeError struct {
	Name     string // the missing type
	Referrer string // the field or argument that referenced it
}

func (e *UndefinedTypeError) Error() string {
	return fmt.Sprintf("type %q referenced by %s is not defined", e.Name, e.Referrer)
}

var nameRE = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// Validate checks every type reachable from the schema's roots:
//
//   - type, field and argument names match [_A-Za-z][_0-9A-Za-z]*
//   - every referenced type name is defined
//   - object and interface fields have output types (not input objects)
//   - input object fields have input types (not objects, interfaces or
//     unions)
//   - unions have at least one member, enums at least one value
//
// The first violation is returned; nil means the reachable graph is
// well-formed.
func Validate(s *Schema) error {
	if s.QueryType == "" {
		return fmt.Errorf("schema has no query root type")
	}
	if _, ok := s.Lookup(s.QueryType); !ok {
		return &UndefinedTypeError{Name: s.QueryType, Referrer: "schema query root"}
	}
	for _, root := range []string{s.MutationType, s.SubscriptionType} {
		if root == "" {
			continue
		}
		if _, ok := s.Lookup(root); !ok {
			return &UndefinedTypeError{Name: root, Referrer: "schema root"}
		}
	}

	_, err := absinthe.Reduce(s, s, struct{}{},
		func(node absinthe.Node, st absinthe.State, acc struct{}) absinthe.Instruction[struct{}] {
			if err := checkNode(s, node, st); err != nil {
				return absinthe.Fail[struct{}](err)
			}
			return absinthe.Continue(acc, st)
		})
	return err
}

func checkNode(s *Schema, node absinthe.Node, st absinthe.State) error {
	switch n := node.(type) {
	case *Field:
		return checkField(s, n, st)
	case *Argument:
		return checkArgument(s, n, st)
	case Type:
		return checkType(s, n)
	default:
		return nil
	}
}

func checkType(s *Schema, t Type) error {
	if !nameRE.MatchString(t.TypeName()) {
		return fmt.Errorf("invalid type name %q", t.TypeName())
	}
	switch n := t.(type) {
	case *Union:
		if len(n.Types) == 0 {
			return fmt.Errorf("union %s has no member types", n.Name)
		}
		for _, member := range n.Types {
			target, ok := s.Lookup(member)
			if !ok {
				return &UndefinedTypeError{Name: member, Referrer: "union " + n.Name}
			}
			if target.TypeKind() != KindObject {
				return fmt.Errorf("union %s member %s is not an object type",
					n.Name, member)
			}
		}
	case *Enum:
		if len(n.Values) == 0 {
			return fmt.Errorf("enum %s has no values", n.Name)
		}
	case *Object:
		for _, iface := range n.Interfaces {
			target, ok := s.Lookup(iface)
			if !ok {
				return &UndefinedTypeError{Name: iface, Referrer: "object " + n.Name}
			}
			if target.TypeKind() != KindInterface {
				return fmt.Errorf("object %s declares non-interface %s in implements list",
					n.Name, iface)
			}
		}
	}
	return nil
}

func checkField(s *Schema, f *Field, st absinthe.State) error {
	owner := fieldOwner(st)
	where := fieldRef(owner, f.Name)

	if !nameRE.MatchString(f.Name) {
		return fmt.Errorf("invalid field name %q on %s", f.Name, kindOf(owner))
	}
	if f.Type == nil {
		return fmt.Errorf("field %s has no type", where)
	}
	target, ok := s.Lookup(f.Type.NamedType())
	if !ok {
		return &UndefinedTypeError{Name: f.Type.NamedType(), Referrer: "field " + where}
	}

	// Placement: the owning type is the nearest ancestor on the path.
	switch owner.(type) {
	case *Object, *Interface:
		if target.TypeKind() == KindInputObject {
			return fmt.Errorf("field %s uses input object %s as an output type",
				where, target.TypeName())
		}
	case *InputObject:
		switch target.TypeKind() {
		case KindObject, KindInterface, KindUnion:
			return fmt.Errorf("field %s uses %s in input position",
				where, kindOf(target))
		}
	}
	return nil
}

func checkArgument(s *Schema, a *Argument, st absinthe.State) error {
	if !nameRE.MatchString(a.Name) {
		return fmt.Errorf("invalid argument name %q", a.Name)
	}
	if a.Type == nil {
		return fmt.Errorf("argument %s has no type", a.Name)
	}
	target, ok := s.Lookup(a.Type.NamedType())
	if !ok {
		return &UndefinedTypeError{Name: a.Type.NamedType(), Referrer: "argument " + a.Name}
	}
	// Arguments are always input positions.
	switch target.TypeKind() {
	case KindObject, KindInterface, KindUnion:
		return fmt.Errorf("argument %s uses %s in input position",
			a.Name, kindOf(target))
	}
	return nil
}

// fieldOwner returns the nearest named type on the ancestor path.
func fieldOwner(st absinthe.State) Type {
	for i := len(st.Path) - 1; i >= 0; i-- {
		if t, ok := st.Path[i].(Type); ok {
			return t
		}
	}
	return nil
}

func fieldRef(owner Type, field string) string {
	if owner == nil {
		return field
	}
	return owner.TypeName() + "." + field
}
