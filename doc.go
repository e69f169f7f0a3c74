// Package iamcsdmx describes the IAMC data template using the SDMX
// information model and provides the tooling around that description.
//
// The IAMC template (https://data.ene.iiasa.ac.at/database/) is a wide
// spreadsheet format: observations appear in rows keyed by Model, Scenario,
// Region, and Variable, with Unit as row-level metadata and years pivoted
// into columns. Mapped onto the SDMX-IM:
//
//   - Model, Scenario, Region, and Variable are dimensions appearing in
//     single columns.
//   - Year is a dimension not named in the file; its values are column
//     titles.
//   - Unit is an attribute carrying extra information associated with
//     observations.
//
// The repository centres on a single declarative document, iamc.yaml, with
// four sections: concepts, dimensions, attributes, and variables. The
// packages here load that document, validate it, and put it to work:
//
//   - schema: document types, YAML loading, and semantic validation
//   - codelist: the hierarchical code list implied by the pipe-delimited
//     variable names
//   - structure: DataStructureDefinition construction binding dimensions
//     and attributes to concepts
//   - dataset: wide IAMC CSV ingestion, long-form conversion, filtering
//   - server: a read-only HTTP registry for the loaded schema
//   - errors, config, metric, health: shared infrastructure
//
// The document is immutable once loaded; nothing in this module mutates a
// schema at runtime.
package iamcsdmx
