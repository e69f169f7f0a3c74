package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestData(t *testing.T) *DataSet {
	t.Helper()
	ds, err := ReadCSVFile("testdata/plot_data.csv", buildDSD(t))
	require.NoError(t, err)
	return ds
}

func TestRecordsLongForm(t *testing.T) {
	ds := loadTestData(t)

	records := ds.Records()
	require.Len(t, records, 9)

	assert.Equal(t, Record{
		Model:    "test_model1",
		Scenario: "test_scenario1",
		Region:   "World",
		Variable: "Primary Energy",
		Unit:     "EJ/y",
		Year:     "2005",
		Value:    1,
	}, records[0])

	// Series order then observation order within each series.
	assert.Equal(t, "Primary Energy|Coal", records[3].Variable)
	assert.Equal(t, "test_model2", records[6].Model)
	assert.Equal(t, "2015", records[8].Year)
}

func TestFilterByModel(t *testing.T) {
	ds := loadTestData(t)

	filtered := ds.Filter(DimModel, "test_model1")
	require.Len(t, filtered.Series, 2)
	for _, s := range filtered.Series {
		assert.Equal(t, "test_model1", s.Key.Get(DimModel))
	}

	// Source unchanged.
	assert.Len(t, ds.Series, 3)
}

func TestFilterByVariable(t *testing.T) {
	ds := loadTestData(t)

	filtered := ds.Filter(DimVariable, "Primary Energy|Coal")
	require.Len(t, filtered.Series, 1)
	assert.Equal(t, "Primary Energy|Coal", filtered.Series[0].Key.Get(DimVariable))
}

func TestFilterByYearRestrictsObservations(t *testing.T) {
	ds := loadTestData(t)

	filtered := ds.Filter(DimYear, "2010")
	require.Len(t, filtered.Series, 3)
	assert.Equal(t, 3, filtered.Len())
	for _, s := range filtered.Series {
		require.Len(t, s.Observations, 1)
		assert.Equal(t, "2010", s.Observations[0].Dimension)
	}
}

func TestFilterNoMatches(t *testing.T) {
	ds := loadTestData(t)

	filtered := ds.Filter(DimRegion, "Mars")
	assert.Empty(t, filtered.Series)
	assert.Equal(t, 0, filtered.Len())
}

func TestFilterMultipleValues(t *testing.T) {
	ds := loadTestData(t)

	filtered := ds.Filter(DimModel, "test_model1", "test_model2")
	assert.Len(t, filtered.Series, 3)
}
