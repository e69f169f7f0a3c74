// Package errors provides standardized error handling for the IAMC/SDMX
// toolkit. It includes error classification, standard error variables, and
// helper functions for consistent error wrapping across the module.
//
// Errors fall into two broad classes that callers care about:
//
//   - Malformed: the document (or data file) could not be parsed into the
//     expected shape at all.
//   - Semantic: the document parsed, but violates a referential or
//     uniqueness rule (an unresolved concept reference, a duplicate
//     variable, an unknown or misplaced code).
//
// Everything else is Internal. Wrapping helpers follow the pattern
// "component.method: action failed: <cause>" so log lines and error chains
// read consistently across packages.
package errors
