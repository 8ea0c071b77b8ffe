package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
schema:
  query: Query
  mutation: Mutation
types:
  - name: Query
    kind: object
    fields:
      - name: user
        type: User
        args:
          - name: id
            type: ID!
  - name: Mutation
    kind: object
    fields:
      - name: setStatus
        type: User
        args:
          - name: status
            type: Status!
  - name: User
    kind: object
    description: A registered account.
    fields:
      - name: id
        type: ID!
      - name: friends
        type: "[User!]"
      - name: status
        type: Status
  - name: Status
    kind: enum
    values: [ACTIVE, SUSPENDED]
`

func TestLoadSampleDocument(t *testing.T) {
	s, err := Load([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Query", s.QueryType)
	assert.Equal(t, "Mutation", s.MutationType)
	assert.Empty(t, s.SubscriptionType)

	user, ok := s.Lookup("User")
	require.True(t, ok, "User not registered")
	obj, ok := user.(*Object)
	require.True(t, ok, "User is %T, want *Object", user)
	assert.Equal(t, "A registered account.", obj.Description)

	friends := obj.Field("friends")
	require.NotNil(t, friends)
	assert.Equal(t, "[User!]", friends.Type.String())

	require.NoError(t, Validate(s))
}

func TestLoadJSONDocument(t *testing.T) {
	// JSON is a YAML subset, so definition files may be JSON too.
	doc := `{
		"schema": {"query": "Query"},
		"types": [
			{"name": "Query", "kind": "object",
			 "fields": [{"name": "ok", "type": "Boolean!"}]}
		]
	}`
	s, err := Load([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, Validate(s))
}

func TestLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	_, ok := s.Lookup("Status")
	assert.True(t, ok)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", ":\n  - ["},
		{"unknown kind", `
types:
  - name: Weird
    kind: tuple
`},
		{"missing type name", `
types:
  - kind: object
`},
		{"duplicate type", `
types:
  - name: User
    kind: object
  - name: User
    kind: scalar
`},
		{"bad type expression", `
types:
  - name: Query
    kind: object
    fields:
      - name: broken
        type: "[User"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseTypeRef(t *testing.T) {
	good := []struct {
		expr string
		want string
	}{
		{"User", "User"},
		{"User!", "User!"},
		{"[User]", "[User]"},
		{"[User!]!", "[User!]!"},
		{"[[Int!]]", "[[Int!]]"},
		{"  String ", "String"},
	}
	for _, tt := range good {
		ref, err := ParseTypeRef(tt.expr)
		require.NoError(t, err, "expr %q", tt.expr)
		assert.Equal(t, tt.want, ref.String(), "expr %q", tt.expr)
	}

	bad := []string{"", "!", "[]", "[User", "User!!", "Us er"}
	for _, expr := range bad {
		_, err := ParseTypeRef(expr)
		assert.Error(t, err, "expr %q", expr)
	}
}
