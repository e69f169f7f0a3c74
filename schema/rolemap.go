package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// RoleMap is an ordered mapping from a role name (e.g. "MODEL", "YEAR") to a
// concept ID. The dimensions and attributes sections of a document are both
// RoleMaps; declaration order is preserved so that serialization round-trips
// and dimension order stays deterministic.
type RoleMap struct {
	roles []string
	refs  map[string]string
}

// NewRoleMap builds a RoleMap from role/concept pairs in the given order.
func NewRoleMap(pairs ...[2]string) RoleMap {
	var m RoleMap
	for _, p := range pairs {
		m.Set(p[0], p[1])
	}
	return m
}

// Set adds or replaces a role mapping. A new role is appended after the
// existing ones.
func (m *RoleMap) Set(role, conceptID string) {
	if m.refs == nil {
		m.refs = make(map[string]string)
	}
	if _, exists := m.refs[role]; !exists {
		m.roles = append(m.roles, role)
	}
	m.refs[role] = conceptID
}

// Get returns the concept ID mapped to a role.
func (m *RoleMap) Get(role string) (string, bool) {
	id, ok := m.refs[role]
	return id, ok
}

// Roles returns the role names in declaration order.
func (m *RoleMap) Roles() []string {
	out := make([]string, len(m.roles))
	copy(out, m.roles)
	return out
}

// Len returns the number of roles.
func (m *RoleMap) Len() int {
	return len(m.roles)
}

// defined reports whether the section was present in the source document.
func (m *RoleMap) defined() bool {
	return m.refs != nil
}

// UnmarshalYAML decodes a YAML mapping, preserving key order and rejecting
// non-mapping nodes and non-scalar values.
func (m *RoleMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping of role name to concept ID, got %s", nodeKind(node.Kind))
	}

	m.roles = make([]string, 0, len(node.Content)/2)
	m.refs = make(map[string]string, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var role string
		if err := keyNode.Decode(&role); err != nil {
			return fmt.Errorf("role name: %w", err)
		}

		var conceptID string
		if err := valNode.Decode(&conceptID); err != nil {
			return fmt.Errorf("role %q: %w", role, err)
		}

		if _, dup := m.refs[role]; dup {
			return fmt.Errorf("role %q declared twice", role)
		}

		m.roles = append(m.roles, role)
		m.refs[role] = conceptID
	}

	return nil
}

// MarshalYAML encodes the mapping with roles in declaration order.
func (m RoleMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, role := range m.roles {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: role},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.refs[role]},
		)
	}
	return node, nil
}

// MarshalJSON encodes the mapping as a JSON object with roles in declaration
// order.
func (m RoleMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, role := range m.roles {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(role)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.refs[role])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving key order.
func (m *RoleMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("expected an object of role name to concept ID, got %v", tok)
	}

	m.roles = nil
	m.refs = make(map[string]string)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		role, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected role name, got %v", keyTok)
		}

		var conceptID string
		if err := dec.Decode(&conceptID); err != nil {
			return fmt.Errorf("role %q: %w", role, err)
		}

		if _, dup := m.refs[role]; dup {
			return fmt.Errorf("role %q declared twice", role)
		}

		m.roles = append(m.roles, role)
		m.refs[role] = conceptID
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// nodeKind names a yaml.Kind for error messages.
func nodeKind(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
