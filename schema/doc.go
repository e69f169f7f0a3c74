// Package schema defines the IAMC schema document and its loader/validator.
//
// A document has four top-level sections:
//
//   - concepts: a flat, unordered set of named concepts with unique IDs
//   - dimensions: role name -> concept ID, the axes that index observations
//   - attributes: role name -> concept ID, metadata attached to observations
//   - variables: an ordered sequence of unique, pipe-delimited labels
//
// Load parses a YAML document into a Document and fails on structural
// problems (missing sections, wrong value types). Validate checks the
// semantic rules — every dimension and attribute reference resolves to a
// declared concept, and variable labels are unique — and reports all
// violations found rather than stopping at the first.
//
// A Document is immutable once loaded. Marshal round-trips: serializing a
// loaded document and reloading it yields an identical in-memory structure,
// including the declaration order of dimension and attribute roles.
package schema
