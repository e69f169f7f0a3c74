package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaeru/iamc-sdmx-demo/errors"
	"github.com/khaeru/iamc-sdmx-demo/schema"
	"github.com/khaeru/iamc-sdmx-demo/structure"
)

const testDoc = `
concepts:
  - id: MODEL
    name: Model
  - id: SCENARIO
    name: Scenario
  - id: REGION
    name: Region
  - id: VARIABLE
    name: Variable
  - id: TIME_PERIOD
    name: Time period
  - id: UNIT_MEASURE
    name: Unit of measure
dimensions:
  MODEL: MODEL
  SCENARIO: SCENARIO
  REGION: REGION
  VARIABLE: VARIABLE
  YEAR: TIME_PERIOD
attributes:
  UNIT: UNIT_MEASURE
variables:
  - Primary Energy
  - Primary Energy|Coal
  - Primary Energy|Coal|w/ CCS
`

func buildDSD(t *testing.T) *structure.DataStructureDefinition {
	t.Helper()
	doc, err := schema.Load(strings.NewReader(testDoc))
	require.NoError(t, err)
	dsd, err := structure.New("IAMC", "IAMC data structure", doc)
	require.NoError(t, err)
	return dsd
}

func TestReadCSVFile(t *testing.T) {
	ds, err := ReadCSVFile("testdata/plot_data.csv", buildDSD(t))
	require.NoError(t, err)

	require.Len(t, ds.Series, 3)
	assert.Equal(t, 9, ds.Len())

	first := ds.Series[0]
	assert.Equal(t, "test_model1", first.Key.Get(DimModel))
	assert.Equal(t, "test_scenario1", first.Key.Get(DimScenario))
	assert.Equal(t, "World", first.Key.Get(DimRegion))
	assert.Equal(t, "Primary Energy", first.Key.Get(DimVariable))
	assert.Equal(t, "EJ/y", first.Key.Attrib[AttrUnit])

	require.Len(t, first.Observations, 3)
	assert.Equal(t, Observation{Dimension: "2005", Value: 1}, first.Observations[0])
	assert.Equal(t, Observation{Dimension: "2015", Value: 10}, first.Observations[2])

	// The UNIT attribute is retained per series key.
	for _, s := range ds.Series {
		assert.Equal(t, "EJ/y", s.Key.Attrib[AttrUnit])
	}
}

func TestReadCSVSkipsEmptyCells(t *testing.T) {
	input := `model,scenario,region,variable,unit,2005,2010
m,s,World,Primary Energy,EJ/y,,4.5
`
	ds, err := ReadCSV(strings.NewReader(input), buildDSD(t))
	require.NoError(t, err)

	require.Len(t, ds.Series, 1)
	require.Len(t, ds.Series[0].Observations, 1)
	assert.Equal(t, Observation{Dimension: "2010", Value: 4.5}, ds.Series[0].Observations[0])
}

func TestReadCSVHeaderCaseInsensitive(t *testing.T) {
	input := `Model,Scenario,Region,Variable,Unit,2005
m,s,World,Primary Energy,EJ/y,1
`
	ds, err := ReadCSV(strings.NewReader(input), buildDSD(t))
	require.NoError(t, err)
	require.Len(t, ds.Series, 1)
}

func TestReadCSVRejectsStrayColumn(t *testing.T) {
	input := `model,scenario,region,variable,unit,notes,2005
m,s,World,Primary Energy,EJ/y,checked,1
`
	ds, err := ReadCSV(strings.NewReader(input), buildDSD(t))
	require.Error(t, err)
	assert.Nil(t, ds)
	assert.True(t, errors.IsMalformed(err))
	assert.Contains(t, err.Error(), `"notes"`)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   error
		malformed bool
	}{
		{
			name:      "empty input",
			input:     "",
			wantErr:   errors.ErrEmptyData,
			malformed: true,
		},
		{
			name:      "missing unit column",
			input:     "model,scenario,region,variable,2005\nm,s,World,Primary Energy,1\n",
			wantErr:   errors.ErrMissingColumn,
			malformed: true,
		},
		{
			name:    "undefined variable code",
			input:   "model,scenario,region,variable,unit,2005\nm,s,World,Hydrogen,EJ/y,1\n",
			wantErr: errors.ErrUnknownCode,
		},
		{
			name:    "variable out of hierarchy",
			input:   "model,scenario,region,variable,unit,2005\nm,s,World,Coal,EJ/y,1\n",
			wantErr: errors.ErrHierarchyViolation,
		},
		{
			name:      "non-numeric observation",
			input:     "model,scenario,region,variable,unit,2005\nm,s,World,Primary Energy,EJ/y,lots\n",
			wantErr:   errors.ErrInvalidValue,
			malformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := ReadCSV(strings.NewReader(tt.input), buildDSD(t))
			require.Error(t, err)
			assert.Nil(t, ds)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.malformed, errors.IsMalformed(err))
		})
	}
}

func TestWriteLongCSV(t *testing.T) {
	input := `model,scenario,region,variable,unit,2005,2010
m,s,World,Primary Energy|Coal,EJ/y,0.5,3
`
	ds, err := ReadCSV(strings.NewReader(input), buildDSD(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ds.WriteLongCSV(&buf))

	assert.Equal(t, `model,scenario,region,variable,unit,year,value
m,s,World,Primary Energy|Coal,EJ/y,2005,0.5
m,s,World,Primary Energy|Coal,EJ/y,2010,3
`, buf.String())
}
