// Package dataset reads wide IAMC data files into SDMX-style series and
// observations.
//
// The IAMC format is 'wide': a header row of model, scenario, region,
// variable, unit and any number of year columns, then one row per series.
// Each row becomes a SeriesKey carrying the MODEL, SCENARIO, REGION, and
// VARIABLE dimension values plus the UNIT attribute; each non-empty year
// cell becomes one Observation. The VARIABLE cell is resolved through the
// structure's code list, so a label with an undefined code, or with codes
// out of their hierarchy, is rejected.
//
// A DataSet converts to long form (one row per observation) and supports
// filtering by dimension value. Filtering returns a new DataSet; the source
// is never mutated.
package dataset
