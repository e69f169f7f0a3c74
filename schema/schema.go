package schema

// Concept is a named, described entity referenced by dimensions and
// attributes. Concepts form a flat set with no hierarchy and no
// cross-references between them.
type Concept struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Document is the in-memory form of an IAMC schema document.
type Document struct {
	Concepts   []Concept `yaml:"concepts" json:"concepts"`
	Dimensions RoleMap   `yaml:"dimensions" json:"dimensions"`
	Attributes RoleMap   `yaml:"attributes" json:"attributes"`
	Variables  []string  `yaml:"variables" json:"variables"`
}

// Concept returns the concept with the given ID, if declared.
func (d *Document) Concept(id string) (Concept, bool) {
	for _, c := range d.Concepts {
		if c.ID == id {
			return c, true
		}
	}
	return Concept{}, false
}

// HasConcept reports whether a concept with the given ID is declared.
func (d *Document) HasConcept(id string) bool {
	_, ok := d.Concept(id)
	return ok
}

// ConceptIDs returns the declared concept IDs in declaration order.
func (d *Document) ConceptIDs() []string {
	ids := make([]string, len(d.Concepts))
	for i, c := range d.Concepts {
		ids[i] = c.ID
	}
	return ids
}
