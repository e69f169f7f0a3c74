package structure

import (
	"github.com/khaeru/iamc-sdmx-demo/codelist"
	"github.com/khaeru/iamc-sdmx-demo/errors"
	"github.com/khaeru/iamc-sdmx-demo/schema"
)

// VariableDimension is the dimension role enumerated by the variable code
// list in IAMC data structures.
const VariableDimension = "VARIABLE"

// Dimension is a named axis used to index observations, backed by a concept.
type Dimension struct {
	ID      string         `json:"id"`
	Concept schema.Concept `json:"concept"`
}

// DataAttribute is a named metadata field attached to observations, backed
// by a concept but not used for indexing.
type DataAttribute struct {
	ID      string         `json:"id"`
	Concept schema.Concept `json:"concept"`
}

// DataStructureDefinition binds the roles of a schema document to its
// concepts. Dimensions and attributes keep the declaration order of the
// document.
type DataStructureDefinition struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Dimensions []Dimension        `json:"dimensions"`
	Attributes []DataAttribute    `json:"attributes"`
	Variables  *codelist.Codelist `json:"-"`
}

// New builds a DataStructureDefinition from a document. The document is
// validated first; a document with unresolved references or duplicate
// variables cannot yield a usable structure, so every violation is returned
// as one semantic error.
func New(id, name string, doc *schema.Document) (*DataStructureDefinition, error) {
	if result := doc.Validate(); !result.OK() {
		return nil, result.Err()
	}

	dsd := &DataStructureDefinition{ID: id, Name: name}

	for _, role := range doc.Dimensions.Roles() {
		conceptID, _ := doc.Dimensions.Get(role)
		concept, _ := doc.Concept(conceptID)
		dsd.Dimensions = append(dsd.Dimensions, Dimension{ID: role, Concept: concept})
	}

	for _, role := range doc.Attributes.Roles() {
		conceptID, _ := doc.Attributes.Get(role)
		concept, _ := doc.Concept(conceptID)
		dsd.Attributes = append(dsd.Attributes, DataAttribute{ID: role, Concept: concept})
	}

	variables, err := codelist.Build(VariableDimension, doc.Variables)
	if err != nil {
		return nil, errors.Wrap(err, "DataStructureDefinition", "New", "build variable code list")
	}
	dsd.Variables = variables

	return dsd, nil
}

// Dimension returns the dimension with the given role.
func (dsd *DataStructureDefinition) Dimension(id string) (Dimension, bool) {
	for _, d := range dsd.Dimensions {
		if d.ID == id {
			return d, true
		}
	}
	return Dimension{}, false
}

// Attribute returns the attribute with the given role.
func (dsd *DataStructureDefinition) Attribute(id string) (DataAttribute, bool) {
	for _, a := range dsd.Attributes {
		if a.ID == id {
			return a, true
		}
	}
	return DataAttribute{}, false
}

// DimensionIDs returns the dimension roles in declaration order.
func (dsd *DataStructureDefinition) DimensionIDs() []string {
	ids := make([]string, len(dsd.Dimensions))
	for i, d := range dsd.Dimensions {
		ids[i] = d.ID
	}
	return ids
}
