package schema

import (
	stderrors "errors"
	"fmt"

	"github.com/khaeru/iamc-sdmx-demo/errors"
)

// ViolationKind distinguishes the semantic rules a document can break.
type ViolationKind string

const (
	// ViolationUnresolvedReference marks a dimension or attribute whose
	// concept ID is not declared in the concept set.
	ViolationUnresolvedReference ViolationKind = "unresolved-reference"
	// ViolationDuplicateVariable marks a variable label that appears more
	// than once in the vocabulary.
	ViolationDuplicateVariable ViolationKind = "duplicate-variable"
	// ViolationDuplicateConcept marks a concept ID declared more than once.
	ViolationDuplicateConcept ViolationKind = "duplicate-concept"
)

// Violation describes one semantic rule broken by a document.
type Violation struct {
	Kind      ViolationKind `json:"kind"`
	Section   string        `json:"section,omitempty"`
	Role      string        `json:"role,omitempty"`
	ConceptID string        `json:"concept_id,omitempty"`
	Label     string        `json:"label,omitempty"`
	Message   string        `json:"message"`
}

// Err returns the violation as an error wrapping the matching sentinel, so
// callers can test with errors.Is.
func (v Violation) Err() error {
	switch v.Kind {
	case ViolationUnresolvedReference:
		return fmt.Errorf("%w: %s", errors.ErrUnresolvedReference, v.Message)
	case ViolationDuplicateVariable:
		return fmt.Errorf("%w: %s", errors.ErrDuplicateVariable, v.Message)
	case ViolationDuplicateConcept:
		return fmt.Errorf("%w: %s", errors.ErrDuplicateConcept, v.Message)
	default:
		return stderrors.New(v.Message)
	}
}

// ValidationResult collects every violation found in a single pass over the
// document.
type ValidationResult struct {
	Violations []Violation `json:"violations"`
}

// OK reports whether the document passed validation.
func (r *ValidationResult) OK() bool {
	return len(r.Violations) == 0
}

// Err returns nil when the document is valid, otherwise a semantic error
// joining all violations.
func (r *ValidationResult) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Violations))
	for i, v := range r.Violations {
		errs[i] = v.Err()
	}
	return errors.WrapSemantic(stderrors.Join(errs...), "Document", "Validate", "check semantic rules")
}

// Validate checks the semantic rules of the document and reports every
// violation found, never stopping at the first:
//
//   - every dimension value references a declared concept ID
//   - every attribute value references a declared concept ID
//   - variable labels are unique within the vocabulary
//   - concept IDs are unique within the concept set
//
// The pipe-hierarchy implied by variable naming is a convention, not a rule;
// it is not checked here. See the codelist package for hierarchy handling.
func (d *Document) Validate() *ValidationResult {
	result := &ValidationResult{}

	declared := make(map[string]bool, len(d.Concepts))
	for i, c := range d.Concepts {
		if declared[c.ID] {
			result.Violations = append(result.Violations, Violation{
				Kind:      ViolationDuplicateConcept,
				ConceptID: c.ID,
				Message:   fmt.Sprintf("concepts[%d] duplicates concept ID %q", i, c.ID),
			})
			continue
		}
		declared[c.ID] = true
	}

	checkRefs := func(section string, m *RoleMap) {
		for _, role := range m.Roles() {
			conceptID, _ := m.Get(role)
			if !declared[conceptID] {
				result.Violations = append(result.Violations, Violation{
					Kind:      ViolationUnresolvedReference,
					Section:   section,
					Role:      role,
					ConceptID: conceptID,
					Message:   fmt.Sprintf("%s.%s references undeclared concept %q", section, role, conceptID),
				})
			}
		}
	}
	checkRefs("dimensions", &d.Dimensions)
	checkRefs("attributes", &d.Attributes)

	seen := make(map[string]bool, len(d.Variables))
	for i, label := range d.Variables {
		if seen[label] {
			result.Violations = append(result.Violations, Violation{
				Kind:    ViolationDuplicateVariable,
				Label:   label,
				Message: fmt.Sprintf("variables[%d] duplicates label %q", i, label),
			})
			continue
		}
		seen[label] = true
	}

	return result
}
