package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testSchema builds a small social-graph schema with recursive and
// mutually recursive types:
//
//	Query.user: User
//	User.friends: [User!]   (self-recursive)
//	User.posts: [Post]
//	Post.author: User!      (mutual recursion)
//	User.status: Status
func testSchema(t *testing.T) *Schema {
	t.Helper()

	s := New()
	s.QueryType = "Query"

	types := []Type{
		&Object{Name: "Query", Fields: []*Field{
			{Name: "user", Type: Named("User"), Args: []*Argument{
				{Name: "id", Type: NonNull(Named("ID"))},
			}},
		}},
		&Object{Name: "User", Fields: []*Field{
			{Name: "id", Type: NonNull(Named("ID"))},
			{Name: "name", Type: Named("String")},
			{Name: "friends", Type: ListOf(NonNull(Named("User")))},
			{Name: "posts", Type: ListOf(Named("Post"))},
			{Name: "status", Type: Named("Status")},
		}},
		&Object{Name: "Post", Fields: []*Field{
			{Name: "title", Type: NonNull(Named("String"))},
			{Name: "author", Type: NonNull(Named("User"))},
		}},
		&Enum{Name: "Status", Values: []*EnumValue{
			{Name: "ACTIVE"}, {Name: "SUSPENDED"},
		}},
	}
	for _, typ := range types {
		if err := s.RegisterType(typ); err != nil {
			t.Fatalf("RegisterType(%s): %v", typ.TypeName(), err)
		}
	}
	return s
}

func typeNames(types []Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.TypeName()
	}
	return names
}

func TestCollectTypesRecursiveSchema(t *testing.T) {
	s := testSchema(t)

	types, err := CollectTypes(s)
	if err != nil {
		t.Fatalf("CollectTypes failed: %v", err)
	}

	// Depth-first pre-order from Query; User appears once despite
	// being reachable through friends, posts.author and Query.user.
	want := []string{"Query", "ID", "User", "String", "Post", "Status"}
	if diff := cmp.Diff(want, typeNames(types)); diff != "" {
		t.Errorf("collected types mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectTypesSkipsUnreachable(t *testing.T) {
	s := testSchema(t)
	if err := s.RegisterType(&Scalar{Name: "Orphan"}); err != nil {
		t.Fatalf("RegisterType: %v", err)
	}

	types, err := CollectTypes(s)
	if err != nil {
		t.Fatalf("CollectTypes failed: %v", err)
	}
	for _, typ := range types {
		if typ.TypeName() == "Orphan" {
			t.Error("unreachable type Orphan was collected")
		}
	}
}

func TestCollectTypesDeterministic(t *testing.T) {
	s := testSchema(t)

	first, err := CollectTypes(s)
	if err != nil {
		t.Fatalf("CollectTypes failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := CollectTypes(s)
		if err != nil {
			t.Fatalf("CollectTypes failed on run %d: %v", i, err)
		}
		if diff := cmp.Diff(typeNames(first), typeNames(again)); diff != "" {
			t.Fatalf("run %d order differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestRegisterTypeDuplicate(t *testing.T) {
	s := New()
	if err := s.RegisterType(&Scalar{Name: "Date"}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := s.RegisterType(&Object{Name: "Date"}); err == nil {
		t.Error("duplicate registration succeeded, want error")
	}
	// Built-in scalars are reserved too.
	if err := s.RegisterType(&Scalar{Name: "String"}); err == nil {
		t.Error("shadowing built-in String succeeded, want error")
	}
}

func TestLookupBuiltins(t *testing.T) {
	s := New()
	for _, name := range []string{"Int", "Float", "String", "Boolean", "ID"} {
		typ, ok := s.Lookup(name)
		if !ok {
			t.Errorf("built-in %s not registered", name)
			continue
		}
		if typ.TypeKind() != KindScalar {
			t.Errorf("built-in %s has kind %s, want scalar", name, typ.TypeKind())
		}
	}
}

func TestTypeRefRendering(t *testing.T) {
	tests := []struct {
		ref  TypeRef
		want string
	}{
		{Named("User"), "User"},
		{NonNull(Named("ID")), "ID!"},
		{ListOf(Named("User")), "[User]"},
		{NonNull(ListOf(NonNull(Named("User")))), "[User!]!"},
	}
	for _, tt := range tests {
		if got := tt.ref.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if tt.ref.NamedType() != "User" && tt.ref.NamedType() != "ID" {
			t.Errorf("NamedType() = %q", tt.ref.NamedType())
		}
	}
}
