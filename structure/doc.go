// Package structure builds an SDMX-style DataStructureDefinition from a
// validated schema document.
//
// The SDMX information model abstracts the idea of a Concept: across data
// structures the same concept may appear as a dimension or as an attribute.
// A DataStructureDefinition binds each dimension and attribute role of the
// document to its concept, and enumerates the VARIABLE dimension with the
// code list derived from the variable vocabulary.
package structure
