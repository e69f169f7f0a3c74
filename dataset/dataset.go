package dataset

import (
	"github.com/khaeru/iamc-sdmx-demo/structure"
)

// Dimension and attribute roles of the IAMC data structure.
const (
	DimModel    = "MODEL"
	DimScenario = "SCENARIO"
	DimRegion   = "REGION"
	DimVariable = structure.VariableDimension
	DimYear     = "YEAR"
	AttrUnit    = "UNIT"
)

// SeriesKey identifies one series of observations: the dimension values
// shared by every observation in a row of the wide format, plus any
// series-level attribute values.
type SeriesKey struct {
	Values map[string]string `json:"values"`
	Attrib map[string]string `json:"attrib,omitempty"`
}

// Get returns the value of a dimension role, or "" when absent.
func (k SeriesKey) Get(role string) string {
	return k.Values[role]
}

// Observation is a single value. Dimension holds the value of the
// observation-level dimension (YEAR in IAMC data); the other dimensions are
// given by the series key.
type Observation struct {
	Dimension string  `json:"dimension"`
	Value     float64 `json:"value"`
}

// Series pairs a key with its observations in column order.
type Series struct {
	Key          SeriesKey     `json:"key"`
	Observations []Observation `json:"observations"`
}

// DataSet holds the series read from one data file, structured by a
// DataStructureDefinition.
type DataSet struct {
	Structure *structure.DataStructureDefinition `json:"-"`
	Series    []Series                           `json:"series"`
}

// Len returns the total number of observations across all series.
func (ds *DataSet) Len() int {
	n := 0
	for _, s := range ds.Series {
		n += len(s.Observations)
	}
	return n
}

// Record is one row of the long form: every dimension value spelled out,
// one observation per record.
type Record struct {
	Model    string  `json:"model"`
	Scenario string  `json:"scenario"`
	Region   string  `json:"region"`
	Variable string  `json:"variable"`
	Unit     string  `json:"unit"`
	Year     string  `json:"year"`
	Value    float64 `json:"value"`
}

// Records converts the dataset to long form, preserving series order and
// observation order within each series.
func (ds *DataSet) Records() []Record {
	records := make([]Record, 0, ds.Len())
	for _, s := range ds.Series {
		for _, o := range s.Observations {
			records = append(records, Record{
				Model:    s.Key.Get(DimModel),
				Scenario: s.Key.Get(DimScenario),
				Region:   s.Key.Get(DimRegion),
				Variable: s.Key.Get(DimVariable),
				Unit:     s.Key.Attrib[AttrUnit],
				Year:     o.Dimension,
				Value:    o.Value,
			})
		}
	}
	return records
}

// Filter returns a new dataset restricted to series whose value for the
// given dimension role is one of values. Filtering on YEAR instead
// restricts the observations within each series, dropping series left
// empty. The receiver is not modified.
func (ds *DataSet) Filter(role string, values ...string) *DataSet {
	want := make(map[string]bool, len(values))
	for _, v := range values {
		want[v] = true
	}

	out := &DataSet{Structure: ds.Structure}

	if role == DimYear {
		for _, s := range ds.Series {
			var kept []Observation
			for _, o := range s.Observations {
				if want[o.Dimension] {
					kept = append(kept, o)
				}
			}
			if len(kept) > 0 {
				out.Series = append(out.Series, Series{Key: s.Key, Observations: kept})
			}
		}
		return out
	}

	for _, s := range ds.Series {
		if want[s.Key.Get(role)] {
			out.Series = append(out.Series, s)
		}
	}
	return out
}
