// Package codelist builds the hierarchical code list implied by the
// pipe-delimited variable vocabulary.
//
// A label like "Primary Energy|Coal|w/ CCS" names a code ("w/ CCS") nested
// under "Coal", itself nested under the top-level "Primary Energy". Build
// walks every label pairwise and registers each segment once, so repeated
// prefixes share a single code. Resolve walks a label back down the
// hierarchy and rejects segments that are unknown or attached to a
// different parent.
//
// The hierarchy is derived from naming, not declared: a vocabulary may list
// "Primary Energy|Coal|w/ CCS" without listing "Primary Energy|Coal" as a
// variable of its own, and Build still creates the intermediate code.
package codelist
